package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/copool/chat-service/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	findByIDFn    func(ctx context.Context, id string) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}

// --- Mock TokenStore ---

type mockTokenStore struct {
	saveFn    func(ctx context.Context, token, email string, ttl time.Duration) error
	consumeFn func(ctx context.Context, token string) (string, error)
}

func (m *mockTokenStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	return m.saveFn(ctx, token, email, ttl)
}
func (m *mockTokenStore) Consume(ctx context.Context, token string) (string, error) {
	return m.consumeFn(ctx, token)
}

// --- Mock Mailer ---

type mockMailer struct {
	sendFn func(email, link string) error
}

func (m *mockMailer) SendSignInLink(email, link string) error {
	return m.sendFn(email, link)
}

func okMailer() *mockMailer {
	return &mockMailer{sendFn: func(email, link string) error { return nil }}
}

// memoryTokenStore behaves like the redis store: save, then consume exactly
// once. When lastToken is non-nil it captures the most recently saved token.
func memoryTokenStore(lastToken *string) *mockTokenStore {
	tokens := map[string]string{}
	return &mockTokenStore{
		saveFn: func(ctx context.Context, token, email string, ttl time.Duration) error {
			tokens[token] = email
			if lastToken != nil {
				*lastToken = token
			}
			return nil
		},
		consumeFn: func(ctx context.Context, token string) (string, error) {
			email, ok := tokens[token]
			if !ok {
				return "", ErrInvalidToken
			}
			delete(tokens, token)
			return email, nil
		},
	}
}

// --- Tests ---

func TestSignIn_MailsSingleUseLink(t *testing.T) {
	var savedToken, mailedTo, mailedLink string
	store := memoryTokenStore(&savedToken)
	mailer := &mockMailer{
		sendFn: func(email, link string) error {
			mailedTo = email
			mailedLink = link
			return nil
		},
	}

	provider := NewEmailLinkProvider(nil, store, mailer, nil, "http://localhost:8083/", 15*time.Minute)
	result, err := provider.SignIn(context.Background(), "rae@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, savedToken)
	assert.Equal(t, "rae@example.com", mailedTo)
	assert.Equal(t, "http://localhost:8083/api/v1/auth/callback?token="+savedToken, mailedLink)
	assert.Equal(t, mailedLink, result.RedirectURL)
	assert.Equal(t, "rae@example.com", result.Email)
}

func TestSignIn_DoesNotRevealAccountExistence(t *testing.T) {
	// No user lookup happens on sign-in; any address is accepted
	provider := NewEmailLinkProvider(nil, memoryTokenStore(nil), okMailer(), nil, "http://localhost:8083", 15*time.Minute)

	result, err := provider.SignIn(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.RedirectURL)
}

func TestSignIn_TokenStoreFailure(t *testing.T) {
	mailed := false
	store := &mockTokenStore{
		saveFn: func(ctx context.Context, token, email string, ttl time.Duration) error {
			return errors.New("redis down")
		},
	}
	mailer := &mockMailer{sendFn: func(email, link string) error { mailed = true; return nil }}

	provider := NewEmailLinkProvider(nil, store, mailer, nil, "http://localhost:8083", 15*time.Minute)
	_, err := provider.SignIn(context.Background(), "rae@example.com")

	assert.Error(t, err)
	assert.False(t, mailed)
}

func TestSignIn_MailerFailure(t *testing.T) {
	mailer := &mockMailer{sendFn: func(email, link string) error { return errors.New("smtp refused") }}

	provider := NewEmailLinkProvider(nil, memoryTokenStore(nil), mailer, nil, "http://localhost:8083", 15*time.Minute)
	_, err := provider.SignIn(context.Background(), "rae@example.com")

	assert.Error(t, err)
}

func TestVerify_IssuesSession(t *testing.T) {
	var token string
	store := memoryTokenStore(&token)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "user-1", Name: "Rae", Email: email}, nil
		},
	}
	jwtSvc := NewJWTService("test-secret", time.Hour)

	provider := NewEmailLinkProvider(users, store, okMailer(), jwtSvc, "http://localhost:8083", 15*time.Minute)

	_, err := provider.SignIn(context.Background(), "rae@example.com")
	assert.NoError(t, err)

	session, err := provider.Verify(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "rae@example.com", session.Email)

	claims, err := jwtSvc.ValidateToken(session.Token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "rae@example.com", claims.Email)
}

func TestVerify_TokenIsSingleUse(t *testing.T) {
	var token string
	store := memoryTokenStore(&token)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "user-1", Email: email}, nil
		},
	}
	jwtSvc := NewJWTService("test-secret", time.Hour)

	provider := NewEmailLinkProvider(users, store, okMailer(), jwtSvc, "http://localhost:8083", 15*time.Minute)

	_, err := provider.SignIn(context.Background(), "rae@example.com")
	assert.NoError(t, err)

	_, err = provider.Verify(context.Background(), token)
	assert.NoError(t, err)

	_, err = provider.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_UnknownToken(t *testing.T) {
	provider := NewEmailLinkProvider(nil, memoryTokenStore(nil), nil, nil, "http://localhost:8083", 15*time.Minute)

	_, err := provider.Verify(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_UnknownUser(t *testing.T) {
	var token string
	store := memoryTokenStore(&token)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	provider := NewEmailLinkProvider(users, store, okMailer(), nil, "http://localhost:8083", 15*time.Minute)

	_, err := provider.SignIn(context.Background(), "nobody@example.com")
	assert.NoError(t, err)

	_, err = provider.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnknownUser)
}
