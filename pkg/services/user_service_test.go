package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/pkg/models"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client, testQuota)
	ctx := context.Background()

	t.Run("creates an account with the full weekly quota", func(t *testing.T) {
		u, err := service.Register(ctx, models.RegisterRequest{
			Email:       "  Anna.Rossi@Example.COM ",
			Password:    "correct horse battery",
			DisplayName: "Anna Rossi",
		})
		require.NoError(t, err)

		assert.Equal(t, "anna.rossi@example.com", u.Email, "email is normalized")
		assert.Equal(t, "Anna Rossi", u.DisplayName)
		assert.Equal(t, testQuota.Flash, u.CreditsFlash)
		assert.Equal(t, testQuota.Pro, u.CreditsPro)
		assert.Equal(t, testQuota.Ultra, u.CreditsUltra)
		assert.WithinDuration(t, time.Now(), u.CreditsResetAt, 5*time.Second)

		assert.NotEqual(t, "correct horse battery", u.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("correct horse battery")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := models.RegisterRequest{
			Email:       "twice@example.com",
			Password:    "password123",
			DisplayName: "Twice",
		}
		_, err := service.Register(ctx, req)
		require.NoError(t, err)

		_, err = service.Register(ctx, req)
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.RegisterRequest
		}{
			{
				name: "empty email",
				req:  models.RegisterRequest{Email: "", Password: "password123", DisplayName: "X"},
			},
			{
				name: "email without at sign",
				req:  models.RegisterRequest{Email: "not-an-email", Password: "password123", DisplayName: "X"},
			},
			{
				name: "short password",
				req:  models.RegisterRequest{Email: "short@example.com", Password: "1234567", DisplayName: "X"},
			},
			{
				name: "password past the bcrypt limit",
				req:  models.RegisterRequest{Email: "long@example.com", Password: strings.Repeat("a", 73), DisplayName: "X"},
			},
			{
				name: "blank display name",
				req:  models.RegisterRequest{Email: "blank@example.com", Password: "password123", DisplayName: "   "},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Register(ctx, tt.req)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestUserService_Login(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client, testQuota)
	ctx := context.Background()

	_, err := service.Register(ctx, models.RegisterRequest{
		Email:       "login@example.com",
		Password:    "password123",
		DisplayName: "Login Tester",
	})
	require.NoError(t, err)

	t.Run("mints and stores a token", func(t *testing.T) {
		u, token, err := service.Login(ctx, "login@example.com", "password123")
		require.NoError(t, err)

		assert.Len(t, token, 64, "32 random bytes, hex encoded")
		require.NotNil(t, u.APIToken)
		assert.Equal(t, token, *u.APIToken)
	})

	t.Run("a second login rotates the token", func(t *testing.T) {
		_, first, err := service.Login(ctx, "login@example.com", "password123")
		require.NoError(t, err)
		_, second, err := service.Login(ctx, "login@example.com", "password123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)

		// Only the latest token resolves
		_, err = service.GetByToken(ctx, first)
		assert.Equal(t, ErrUnauthorized, err)
		u, err := service.GetByToken(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, "login@example.com", u.Email)
	})

	t.Run("case-insensitive email", func(t *testing.T) {
		_, _, err := service.Login(ctx, "LOGIN@example.com", "password123")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login(ctx, "login@example.com", "wrong")
		assert.Equal(t, ErrUnauthorized, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := service.Login(ctx, "nobody@example.com", "password123")
		assert.Equal(t, ErrUnauthorized, err)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, _, err := service.Login(ctx, "", "")
		assert.Equal(t, ErrUnauthorized, err)
	})
}

func TestUserService_Tokens(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client, testQuota)
	ctx := context.Background()

	u, err := service.Register(ctx, models.RegisterRequest{
		Email:       "tokens@example.com",
		Password:    "password123",
		DisplayName: "Token Tester",
	})
	require.NoError(t, err)

	t.Run("empty token", func(t *testing.T) {
		_, err := service.GetByToken(ctx, "")
		assert.Equal(t, ErrUnauthorized, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := service.GetByToken(ctx, strings.Repeat("ab", 32))
		assert.Equal(t, ErrUnauthorized, err)
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		_, token, err := service.Login(ctx, "tokens@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, service.Logout(ctx, u.ID))

		_, err = service.GetByToken(ctx, token)
		assert.Equal(t, ErrUnauthorized, err)
	})

	t.Run("logout of a missing user", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.Logout(ctx, "nonexistent"))
	})
}

func TestUserService_Anonymize(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client, testQuota)
	ctx := context.Background()

	u, err := service.Register(ctx, models.RegisterRequest{
		Email:       "leaving@example.com",
		Password:    "password123",
		DisplayName: "Leaving Soon",
	})
	require.NoError(t, err)
	_, token, err := service.Login(ctx, "leaving@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, service.Anonymize(ctx, u.ID))

	t.Run("the row survives as a tombstone", func(t *testing.T) {
		fresh, err := service.GetByID(ctx, u.ID)
		require.NoError(t, err)

		assert.Equal(t, models.DeletedUserName, fresh.DisplayName)
		assert.Contains(t, fresh.Email, "@anonymized.invalid")
		assert.NotContains(t, fresh.Email, "leaving")
		assert.Empty(t, fresh.HashedPassword)
		assert.Nil(t, fresh.APIToken)
		assert.Zero(t, fresh.CreditsFlash)
		assert.Zero(t, fresh.CreditsPro)
		assert.Zero(t, fresh.CreditsUltra)
		require.NotNil(t, fresh.DeletedAt)
	})

	t.Run("credentials stop working", func(t *testing.T) {
		_, _, err := service.Login(ctx, "leaving@example.com", "password123")
		assert.Equal(t, ErrUnauthorized, err)

		_, err = service.GetByToken(ctx, token)
		assert.Equal(t, ErrUnauthorized, err)
	})

	t.Run("the freed email can register again", func(t *testing.T) {
		_, err := service.Register(ctx, models.RegisterRequest{
			Email:       "leaving@example.com",
			Password:    "password123",
			DisplayName: "Back Again",
		})
		assert.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.Anonymize(ctx, "nonexistent"))
	})
}
