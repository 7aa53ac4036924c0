package repository

import (
	"context"

	"github.com/copool/chat-service/internal/models"
	"gorm.io/gorm"
)

type RideRepository interface {
	FindByID(ctx context.Context, id string) (*models.Ride, error)
	FindWithUserBookings(ctx context.Context, rideID, userID string) (*models.Ride, error)
	FindWithParticipants(ctx context.Context, rideID string) (*models.Ride, error)
}

type rideRepository struct {
	db *gorm.DB
}

func NewRideRepository(db *gorm.DB) RideRepository {
	return &rideRepository{db: db}
}

func (r *rideRepository) FindByID(ctx context.Context, id string) (*models.Ride, error) {
	var ride models.Ride
	if err := r.db.WithContext(ctx).First(&ride, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

// FindWithUserBookings fetches the ride together with the given user's
// bookings only, earliest first. This is the single read the chat gate runs
// on; the gate judges the first booking, so the order must not depend on row
// placement.
func (r *rideRepository) FindWithUserBookings(ctx context.Context, rideID, userID string) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.WithContext(ctx).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", userID).Order("bookings.created_at ASC")
		}).
		First(&ride, "id = ?", rideID).Error
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

// FindWithParticipants fetches the ride with its driver profile and every
// booking (any status) with the booked user's profile, bookings in store order.
func (r *rideRepository) FindWithParticipants(ctx context.Context, rideID string) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("bookings.created_at ASC")
		}).
		Preload("Bookings.User").
		First(&ride, "id = ?", rideID).Error
	if err != nil {
		return nil, err
	}
	return &ride, nil
}
