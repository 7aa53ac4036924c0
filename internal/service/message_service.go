package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/copool/chat-service/internal/models"
	"github.com/copool/chat-service/internal/repository"
	"github.com/copool/chat-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

// RideMessage is a chat message annotated with the sender's role on the ride.
type RideMessage struct {
	Message  models.ChatMessage
	IsDriver bool
}

type MessageService interface {
	PostMessage(ctx context.Context, rideID, senderID, content string) (*models.ChatMessage, error)
	ListRideMessages(ctx context.Context, userID, rideID string) ([]RideMessage, error)
}

type messageService struct {
	access    ChatAccessService
	rideRepo  repository.RideRepository
	msgRepo   repository.ChatMessageRepository
	publisher *rabbitmq.Publisher
}

func NewMessageService(access ChatAccessService, rideRepo repository.RideRepository, msgRepo repository.ChatMessageRepository, publisher *rabbitmq.Publisher) MessageService {
	return &messageService{
		access:    access,
		rideRepo:  rideRepo,
		msgRepo:   msgRepo,
		publisher: publisher,
	}
}

// PostMessage stores a message in the ride's chat after the sender passes the
// access gate. Delivery collaborators are notified over the broker; failures
// there never fail the write.
func (s *messageService) PostMessage(ctx context.Context, rideID, senderID, content string) (*models.ChatMessage, error) {
	if err := s.access.Authorize(ctx, rideID, senderID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		RideID:   rideID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		log.Printf("[MessageService] insert failed for ride %s: %v", rideID, err)
		return nil, fmt.Errorf("insert message: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "chat.message.created", msg); err != nil {
			log.Printf("[MessageService] publish failed for message %d: %v", msg.ID, err)
		}
	}
	return msg, nil
}

// ListRideMessages returns the ride's full history in send order, each entry
// flagged with whether its sender is the ride's driver.
func (s *messageService) ListRideMessages(ctx context.Context, userID, rideID string) ([]RideMessage, error) {
	if err := s.access.Authorize(ctx, rideID, userID); err != nil {
		return nil, err
	}

	// The gate and this read are separate queries; the ride can vanish
	// in between.
	ride, err := s.rideRepo.FindByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, fmt.Errorf("fetch ride: %w", err)
	}

	msgs, err := s.msgRepo.ListByRide(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]RideMessage, len(msgs))
	for i, m := range msgs {
		out[i] = RideMessage{Message: m, IsDriver: m.SenderID == ride.DriverID}
	}
	return out, nil
}
