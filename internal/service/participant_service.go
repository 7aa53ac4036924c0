package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/copool/chat-service/internal/repository"
	"gorm.io/gorm"
)

// Display names used when a profile has not synced a name yet.
const (
	driverFallbackName = "Champion"
	riderFallbackName  = "Rider"
)

// Participant is one entry of a ride's roster: the driver or a booked rider.
type Participant struct {
	ID       string
	Name     string
	Email    string
	IsDriver bool
}

type ParticipantService interface {
	GetRideParticipants(ctx context.Context, rideID string) ([]Participant, error)
}

type participantService struct {
	rideRepo repository.RideRepository
}

func NewParticipantService(rideRepo repository.RideRepository) ParticipantService {
	return &participantService{rideRepo: rideRepo}
}

// GetRideParticipants returns the driver first, then every booked rider in
// booking order. Cancelled bookings keep their roster spot; only the chat
// gate interprets cancellation.
func (s *participantService) GetRideParticipants(ctx context.Context, rideID string) ([]Participant, error) {
	ride, err := s.rideRepo.FindWithParticipants(ctx, rideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, fmt.Errorf("fetch ride participants: %w", err)
	}

	participants := make([]Participant, 0, len(ride.Bookings)+1)

	driver := Participant{ID: ride.DriverID, Name: driverFallbackName, IsDriver: true}
	if ride.Driver != nil {
		driver.Name = displayName(ride.Driver.Name, driverFallbackName)
		driver.Email = ride.Driver.Email
	}
	participants = append(participants, driver)

	for _, b := range ride.Bookings {
		p := Participant{ID: b.UserID, Name: riderFallbackName}
		if b.User != nil {
			p.Name = displayName(b.User.Name, riderFallbackName)
			p.Email = b.User.Email
		}
		participants = append(participants, p)
	}
	return participants, nil
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
