package models

import "time"

type RideStatus string

const (
	RideStatusPending   RideStatus = "Pending"
	RideStatusConfirmed RideStatus = "Confirmed"
	RideStatusStarted   RideStatus = "Started"
	RideStatusCompleted RideStatus = "Completed"
	RideStatusCancelled RideStatus = "Cancelled"
)

// Ride mirrors the platform's ride record. The chat service never creates or
// mutates rides; rows arrive through the platform sync consumer.
type Ride struct {
	ID        string     `gorm:"primaryKey;size:40" json:"id"`
	DriverID  string     `gorm:"size:40;not null;index" json:"driver_id"`
	Status    RideStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Driver   *User     `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Bookings []Booking `gorm:"foreignKey:RideID" json:"bookings,omitempty"`
}
