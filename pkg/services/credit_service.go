package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/user"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
)

// CreditService manages the weekly per-tier generation credits. Pools are
// plain int columns; consumption is an atomic conditional decrement and the
// refill is lazy, applied on the first touch after a Monday 00:00 UTC
// boundary rather than by a scheduler.
type CreditService struct {
	client *ent.Client
	quota  config.QuotaConfig
}

// NewCreditService creates a new CreditService
func NewCreditService(client *ent.Client, quota config.QuotaConfig) *CreditService {
	return &CreditService{client: client, quota: quota}
}

// NextMondayUTC returns the first Monday 00:00 UTC strictly after t
func NextMondayUTC(t time.Time) time.Time {
	u := t.UTC()
	daysSinceMonday := (int(u.Weekday()) + 6) % 7
	monday := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
	return monday.AddDate(0, 0, 7)
}

// EnsureFresh refills the user's pools when a weekly boundary has passed
// since the last refill. The refill replaces the pools with the full quota;
// unused credits do not roll over. Concurrent refills are reconciled with a
// compare-and-set on credits_reset_at.
func (s *CreditService) EnsureFresh(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	now := time.Now()
	if now.Before(NextMondayUTC(u.CreditsResetAt)) {
		return u, nil
	}

	// A concurrent refill may win the CAS; the refetch below returns the
	// fresh pools either way.
	_, err = s.client.User.Update().
		Where(
			user.IDEQ(userID),
			user.CreditsResetAtEQ(u.CreditsResetAt),
		).
		SetCreditsFlash(s.quota.Flash).
		SetCreditsPro(s.quota.Pro).
		SetCreditsUltra(s.quota.Ultra).
		SetCreditsResetAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refill credits: %w", err)
	}

	u, err = s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch user: %w", err)
	}
	return u, nil
}

// Consume burns one credit of the tier backing the given mode. The decrement
// is conditional on a positive pool, so concurrent requests cannot spend the
// same credit twice.
func (s *CreditService) Consume(ctx context.Context, userID string, mode models.Mode) (*models.CreditBalance, error) {
	u, err := s.EnsureFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	update := s.client.User.Update().Where(user.IDEQ(userID))
	switch mode {
	case models.ModeFlash:
		update = update.Where(user.CreditsFlashGT(0)).AddCreditsFlash(-1)
	case models.ModePro:
		update = update.Where(user.CreditsProGT(0)).AddCreditsPro(-1)
	case models.ModeUltra:
		update = update.Where(user.CreditsUltraGT(0)).AddCreditsUltra(-1)
	default:
		return nil, NewValidationError("mode", fmt.Sprintf("unknown mode %q", mode))
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to consume credit: %w", err)
	}
	if count == 0 {
		return nil, &CreditsExhaustedError{
			Mode:        mode,
			NextResetAt: NextMondayUTC(u.CreditsResetAt),
		}
	}

	return s.Balance(ctx, userID)
}

// Refund returns one credit after an enqueue that failed downstream of a
// successful Consume. Accepted work is never refunded.
func (s *CreditService) Refund(ctx context.Context, userID string, mode models.Mode) error {
	update := s.client.User.Update().Where(user.IDEQ(userID))
	switch mode {
	case models.ModeFlash:
		update = update.AddCreditsFlash(1)
	case models.ModePro:
		update = update.AddCreditsPro(1)
	case models.ModeUltra:
		update = update.AddCreditsUltra(1)
	default:
		return NewValidationError("mode", fmt.Sprintf("unknown mode %q", mode))
	}

	// Use background context with timeout: refunds run on error paths where
	// the request context may already be gone
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to refund credit: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// Balance reports the remaining credits per tier, refilling first when due
func (s *CreditService) Balance(ctx context.Context, userID string) (*models.CreditBalance, error) {
	u, err := s.EnsureFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.CreditBalance{
		Flash:       u.CreditsFlash,
		Pro:         u.CreditsPro,
		Ultra:       u.CreditsUltra,
		NextResetAt: NextMondayUTC(u.CreditsResetAt),
	}, nil
}
