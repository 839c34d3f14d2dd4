package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/user"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages accounts and API tokens
type UserService struct {
	client *ent.Client
	quota  config.QuotaConfig
}

// NewUserService creates a new UserService. New accounts start with the
// full weekly quota.
func NewUserService(client *ent.Client, quota config.QuotaConfig) *UserService {
	return &UserService{client: client, quota: quota}
}

// Register creates a new account with a bcrypt-hashed password
func (s *UserService) Register(httpCtx context.Context, req models.RegisterRequest) (*ent.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "must be a valid email address")
	}
	if len(req.Password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}
	// bcrypt rejects inputs past its block limit
	if len(req.Password) > 72 {
		return nil, NewValidationError("password", "must be at most 72 bytes")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, NewValidationError("display_name", "required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetHashedPassword(string(hash)).
		SetDisplayName(strings.TrimSpace(req.DisplayName)).
		SetCreditsFlash(s.quota.Flash).
		SetCreditsPro(s.quota.Pro).
		SetCreditsUltra(s.quota.Ultra).
		SetCreditsResetAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// Login verifies credentials and mints a fresh API token. Lookup and
// password failures are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*ent.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrUnauthorized
	}

	u, err := s.client.User.Query().
		Where(
			user.EmailEQ(email),
			user.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) != nil {
		return nil, "", ErrUnauthorized
	}

	token, err := mintToken()
	if err != nil {
		return nil, "", err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u, err = u.Update().
		SetAPIToken(token).
		Save(writeCtx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to store token: %w", err)
	}

	return u, token, nil
}

func mintToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to mint token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GetByToken resolves an API token to its account
func (s *UserService) GetByToken(ctx context.Context, token string) (*ent.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	u, err := s.client.User.Query().
		Where(
			user.APITokenEQ(token),
			user.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	return u, nil
}

// Logout invalidates the user's API token
func (s *UserService) Logout(ctx context.Context, userID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.User.UpdateOneID(userID).
		ClearAPIToken().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to log out: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Anonymize scrubs an account in place of a hard delete. The row survives so
// shares and ownership stay resolvable; the display name becomes the deleted
// sentinel and the email a unique tombstone.
func (s *UserService) Anonymize(ctx context.Context, userID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.User.UpdateOneID(userID).
		SetDisplayName(models.DeletedUserName).
		SetEmail(fmt.Sprintf("deleted+%s@anonymized.invalid", uuid.New().String())).
		SetHashedPassword("").
		ClearAPIToken().
		SetCreditsFlash(0).
		SetCreditsPro(0).
		SetCreditsUltra(0).
		SetDeletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to anonymize user: %w", err)
	}

	return nil
}
