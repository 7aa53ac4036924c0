package dto

import (
	"time"

	"github.com/copool/chat-service/internal/models"
)

type MessageUserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsDriver bool   `json:"is_driver"`
}

type MessageResponse struct {
	ID        uint                 `json:"id"`
	RideID    string               `json:"ride_id"`
	SenderID  string               `json:"sender_id"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"created_at"`
	User      *MessageUserResponse `json:"user,omitempty"`
}

type ParticipantResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsDriver bool   `json:"is_driver"`
}

type SignInResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type SessionResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToMessageResponse(m *models.ChatMessage) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		RideID:    m.RideID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ToRideMessageResponse renders a history entry. The sender profile is
// attached when it has synced; is_driver reports the sender's role on the
// ride the message belongs to.
func ToRideMessageResponse(m models.ChatMessage, isDriver bool) MessageResponse {
	resp := ToMessageResponse(&m)
	if m.Sender != nil {
		resp.User = &MessageUserResponse{
			ID:       m.Sender.ID,
			Name:     m.Sender.Name,
			Email:    m.Sender.Email,
			IsDriver: isDriver,
		}
	}
	return resp
}
