package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent/user"
	"github.com/fabula-ai/fabula/pkg/models"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMondayUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid-week",
			in:   time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC), // Wednesday
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday evening",
			in:   time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday morning rolls a full week",
			in:   time.Date(2025, 6, 16, 0, 0, 1, 0, time.UTC),
			want: time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly midnight monday rolls a full week",
			in:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC input is normalized",
			in:   time.Date(2025, 6, 16, 1, 0, 0, 0, time.FixedZone("CEST", 2*3600)), // 23:00 Sunday UTC
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextMondayUTC(tt.in))
		})
	}
}

func TestCreditService_Consume(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client, testQuota)
	ctx := context.Background()

	t.Run("decrements only the matching pool", func(t *testing.T) {
		u := createTestUser(t, client.Client, "consume@example.com")

		balance, err := service.Consume(ctx, u.ID, models.ModeFlash)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash-1, balance.Flash)
		assert.Equal(t, testQuota.Pro, balance.Pro)
		assert.Equal(t, testQuota.Ultra, balance.Ultra)
	})

	t.Run("exhausted pool reports the next refill", func(t *testing.T) {
		u := createTestUser(t, client.Client, "exhausted@example.com")

		_, err := service.Consume(ctx, u.ID, models.ModePro)
		require.NoError(t, err)

		_, err = service.Consume(ctx, u.ID, models.ModePro)
		require.Error(t, err)

		var exhausted *CreditsExhaustedError
		require.True(t, errors.As(err, &exhausted))
		assert.Equal(t, models.ModePro, exhausted.Mode)
		assert.True(t, exhausted.NextResetAt.After(time.Now()))
		assert.Contains(t, err.Error(), "no pro credits left")

		// Other pools are untouched
		balance, err := service.Balance(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash, balance.Flash)
	})

	t.Run("unknown mode", func(t *testing.T) {
		u := createTestUser(t, client.Client, "badmode@example.com")
		_, err := service.Consume(ctx, u.ID, models.Mode("turbo"))
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := service.Consume(ctx, "nonexistent", models.ModeFlash)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestCreditService_LazyRefill(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client, testQuota)
	ctx := context.Background()

	t.Run("stale pools are replaced on first touch", func(t *testing.T) {
		u := createTestUser(t, client.Client, "stale@example.com")

		// Drain the flash pool, then push the reset mark past a weekly boundary
		err := client.User.UpdateOneID(u.ID).
			SetCreditsFlash(0).
			SetCreditsResetAt(time.Now().AddDate(0, 0, -8)).
			Exec(ctx)
		require.NoError(t, err)

		balance, err := service.Balance(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash, balance.Flash)
		assert.Equal(t, testQuota.Pro, balance.Pro)
		assert.Equal(t, testQuota.Ultra, balance.Ultra)

		// The reset mark moved, so the next boundary is in the future
		fresh, err := client.User.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), fresh.CreditsResetAt, 5*time.Second)
	})

	t.Run("unused credits do not roll over", func(t *testing.T) {
		u := createTestUser(t, client.Client, "rollover@example.com")

		err := client.User.UpdateOneID(u.ID).
			SetCreditsUltra(5). // more than quota, must come back down
			SetCreditsResetAt(time.Now().AddDate(0, 0, -8)).
			Exec(ctx)
		require.NoError(t, err)

		balance, err := service.Balance(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Ultra, balance.Ultra)
	})

	t.Run("fresh pools are left alone", func(t *testing.T) {
		u := createTestUser(t, client.Client, "fresh@example.com")

		err := client.User.UpdateOneID(u.ID).SetCreditsFlash(1).Exec(ctx)
		require.NoError(t, err)

		balance, err := service.Balance(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, balance.Flash)
	})

	t.Run("consume right after a boundary spends from the new quota", func(t *testing.T) {
		u := createTestUser(t, client.Client, "boundary@example.com")

		err := client.User.UpdateOneID(u.ID).
			SetCreditsFlash(0).
			SetCreditsPro(0).
			SetCreditsUltra(0).
			SetCreditsResetAt(time.Now().AddDate(0, 0, -9)).
			Exec(ctx)
		require.NoError(t, err)

		balance, err := service.Consume(ctx, u.ID, models.ModeFlash)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash-1, balance.Flash)
	})
}

// TestCreditService_ConcurrentConsume verifies the conditional decrement
// under contention: a pool of one credit must admit exactly one of many
// concurrent spenders.
func TestCreditService_ConcurrentConsume(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client, testQuota)
	ctx := context.Background()

	u := createTestUser(t, client.Client, "concurrent@example.com")
	require.Equal(t, 1, testQuota.Pro, "test assumes a single pro credit")

	const spenders = 10
	results := make(chan error, spenders)

	var wg sync.WaitGroup
	for i := 0; i < spenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Consume(ctx, u.ID, models.ModePro)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	exhausted := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		if IsCreditsExhausted(err) {
			exhausted++
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one spender should win the credit")
	assert.Equal(t, spenders-1, exhausted)

	fresh, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.CreditsPro, "pool must never go negative")
}

func TestCreditService_Refund(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCreditService(client.Client, testQuota)
	ctx := context.Background()

	t.Run("returns the credit to its pool", func(t *testing.T) {
		u := createTestUser(t, client.Client, "refund@example.com")

		_, err := service.Consume(ctx, u.ID, models.ModeUltra)
		require.NoError(t, err)

		require.NoError(t, service.Refund(ctx, u.ID, models.ModeUltra))

		fresh, err := client.User.Query().Where(user.IDEQ(u.ID)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Ultra, fresh.CreditsUltra)
	})

	t.Run("missing user", func(t *testing.T) {
		err := service.Refund(ctx, "nonexistent", models.ModeFlash)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		u := createTestUser(t, client.Client, "refundmode@example.com")
		err := service.Refund(ctx, u.ID, models.Mode("turbo"))
		assert.True(t, IsValidationError(err))
	})
}
