package models

import "time"

type BookingStatus string

const (
	BookingStatusPending         BookingStatus = "Pending"
	BookingStatusConfirmed       BookingStatus = "Confirmed"
	BookingStatusCancelledDriver BookingStatus = "CancelledDriver"
	BookingStatusCancelledUser   BookingStatus = "CancelledUser"
)

// Cancelled reports whether the booking was cancelled by either side.
func (s BookingStatus) Cancelled() bool {
	return s == BookingStatusCancelledDriver || s == BookingStatusCancelledUser
}

// Booking mirrors a rider's reservation on a ride. A booking belongs to
// exactly one ride and one user; its status is independent of the ride's.
type Booking struct {
	ID        string        `gorm:"primaryKey;size:40" json:"id"`
	RideID    string        `gorm:"size:40;not null;index" json:"ride_id"`
	UserID    string        `gorm:"size:40;not null;index" json:"user_id"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
