package repository

import (
	"context"

	"github.com/copool/chat-service/internal/models"
	"gorm.io/gorm"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListByRide(ctx context.Context, rideID string) ([]models.ChatMessage, error)
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListByRide returns the ride's messages oldest first, with sender profiles
// loaded. The id tiebreak keeps messages sharing a timestamp in insert order.
func (r *chatMessageRepository) ListByRide(ctx context.Context, rideID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("ride_id = ?", rideID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
