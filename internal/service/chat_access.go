package service

import (
	"context"
	"errors"
	"log"

	"github.com/copool/chat-service/internal/models"
	"github.com/copool/chat-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRideNotFound     = errors.New("ride not found")
	ErrChatClosed       = errors.New("chat for this ride is closed")
	ErrChatUnauthorized = errors.New("user is not a participant of this ride")
	ErrRideLookup       = errors.New("could not verify ride access")
)

// Verdict is the outcome of the chat access rule.
type Verdict int

const (
	VerdictAuthorized Verdict = iota
	VerdictNotFound
	VerdictChatClosed
	VerdictUnauthorized
)

// EvaluateChatAccess decides whether userID may act in the ride's chat. The
// ride must be loaded with that user's bookings only, earliest first (see
// RideRepository.FindWithUserBookings). The rule:
//
//  1. no ride -> NotFound
//  2. ride cancelled -> ChatClosed
//  3. user is neither the driver nor booked -> Unauthorized
//  4. the user's earliest booking was cancelled -> ChatClosed, even when the
//     user is also the driver (booking cancellation overrides granted access)
func EvaluateChatAccess(ride *models.Ride, userID string) Verdict {
	if ride == nil {
		return VerdictNotFound
	}
	if ride.Status == models.RideStatusCancelled {
		return VerdictChatClosed
	}

	isDriver := ride.DriverID == userID
	if !isDriver && len(ride.Bookings) == 0 {
		return VerdictUnauthorized
	}

	if len(ride.Bookings) > 0 && ride.Bookings[0].Status.Cancelled() {
		return VerdictChatClosed
	}

	return VerdictAuthorized
}

type ChatAccessService interface {
	Authorize(ctx context.Context, rideID, userID string) error
}

type chatAccessService struct {
	rideRepo repository.RideRepository
}

func NewChatAccessService(rideRepo repository.RideRepository) ChatAccessService {
	return &chatAccessService{rideRepo: rideRepo}
}

// Authorize runs the chat gate for (rideID, userID) against the store. It is a
// pure gate: nil means the user may act in the ride's chat, and callers fetch
// whatever data they need themselves.
func (s *chatAccessService) Authorize(ctx context.Context, rideID, userID string) error {
	ride, err := s.rideRepo.FindWithUserBookings(ctx, rideID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRideNotFound
		}
		log.Printf("[ChatAccess] ride lookup failed for ride %s: %v", rideID, err)
		return ErrRideLookup
	}

	switch EvaluateChatAccess(ride, userID) {
	case VerdictNotFound:
		return ErrRideNotFound
	case VerdictChatClosed:
		return ErrChatClosed
	case VerdictUnauthorized:
		return ErrChatUnauthorized
	}
	return nil
}
