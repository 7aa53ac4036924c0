package dto

type PostMessageRequest struct {
	SenderID string `json:"sender_id" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type SignInRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}
