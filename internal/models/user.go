package models

import "time"

// User mirrors the platform's public user profile. Name may be empty; display
// fallbacks ("Champion" for drivers, "Rider" for riders) are applied where
// participant lists are built, not here.
type User struct {
	ID        string    `gorm:"primaryKey;size:40" json:"id"`
	Name      string    `gorm:"size:120" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
