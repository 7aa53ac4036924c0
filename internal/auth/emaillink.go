package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/copool/chat-service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailLinkProvider signs users in with a one-time emailed link. SignIn
// accepts any address without revealing whether an account exists; the link
// carries a short-lived single-use token, and Verify exchanges it for a
// session once the account is confirmed to exist.
type EmailLinkProvider struct {
	users   repository.UserRepository
	tokens  TokenStore
	mailer  Mailer
	jwt     *JWTService
	baseURL string
	ttl     time.Duration
}

func NewEmailLinkProvider(users repository.UserRepository, tokens TokenStore, mailer Mailer, jwt *JWTService, baseURL string, ttl time.Duration) *EmailLinkProvider {
	return &EmailLinkProvider{
		users:   users,
		tokens:  tokens,
		mailer:  mailer,
		jwt:     jwt,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
	}
}

func (p *EmailLinkProvider) SignIn(ctx context.Context, email string) (*SignInResult, error) {
	token := uuid.NewString()
	if err := p.tokens.Save(ctx, token, email, p.ttl); err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/api/v1/auth/callback?token=%s", p.baseURL, token)
	if err := p.mailer.SendSignInLink(email, link); err != nil {
		return nil, fmt.Errorf("send sign-in link: %w", err)
	}
	return &SignInResult{Email: email, RedirectURL: link}, nil
}

func (p *EmailLinkProvider) Verify(ctx context.Context, token string) (*Session, error) {
	email, err := p.tokens.Consume(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	sessionToken, err := p.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &Session{Token: sessionToken, UserID: user.ID, Email: user.Email}, nil
}
