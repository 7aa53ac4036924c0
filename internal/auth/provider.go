package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("sign-in token is invalid or expired")
	ErrUnknownUser  = errors.New("no account exists for this email")
)

// SignInResult is what a provider hands back after accepting a sign-in
// request. RedirectURL is where the client sends the user next.
type SignInResult struct {
	Email       string
	RedirectURL string
}

// Session is an authenticated user session.
type Session struct {
	Token  string
	UserID string
	Email  string
}

// Provider runs a sign-in flow. SignIn accepts an email and starts the flow;
// Verify exchanges the flow's callback token for a session.
type Provider interface {
	SignIn(ctx context.Context, email string) (*SignInResult, error)
	Verify(ctx context.Context, token string) (*Session, error)
}
