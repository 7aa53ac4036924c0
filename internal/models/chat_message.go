package models

import "time"

// ChatMessage is the one table this service owns. Messages are immutable once
// created and are read back in creation order (created_at, then id to break
// ties between inserts that share a timestamp).
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RideID    string    `gorm:"size:40;not null;index" json:"ride_id"`
	SenderID  string    `gorm:"size:40;not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
