package library

import (
	"context"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjector_Entries(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	done := createSession(t, client, owner.ID, "gemini-2.5-flash", base)
	makeCompleted(t, client, done.ID, "La Stanza Chiusa", 120)
	err := client.NovelSession.UpdateOneID(done.ID).
		SetCritique(models.Critique{Score: 8.5, Summary: "teso e asciutto"}).
		SetCritiqueStatus(novelsession.CritiqueStatusCompleted).
		SetRealCostEur(1.25).
		SetEstimatedCostEur(99). // forward estimate must never reach the shelf
		SetPdfPath("users/" + owner.ID + "/books/la-stanza.pdf").
		SetCoverImagePath("users/" + owner.ID + "/covers/la-stanza.png").
		Exec(ctx)
	require.NoError(t, err)

	ready := createSession(t, client, owner.ID, "gemini-2.5-flash", base.Add(time.Hour))
	makeReady(t, client, ready.ID, "Il faro tra le nebbie")

	draft := createSession(t, client, owner.ID, "gemini-2.5-pro", base.Add(2*time.Hour))

	entries, err := p.Entries(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first
	assert.Equal(t, draft.ID, entries[0].SessionID)
	assert.Equal(t, ready.ID, entries[1].SessionID)
	assert.Equal(t, done.ID, entries[2].SessionID)

	t.Run("draft session", func(t *testing.T) {
		e := entries[0]
		assert.Equal(t, models.StatusDraft, e.Status)
		assert.Equal(t, "Pro", e.LLMModel)
		assert.Empty(t, e.Title)
		assert.Zero(t, e.TotalChapters)
		assert.Zero(t, e.CompletedChapters)
		assert.Nil(t, e.TotalPages)
		assert.Nil(t, e.CritiqueScore)
		assert.Nil(t, e.EstimatedCost)
		assert.Empty(t, e.PDFPath)
	})

	t.Run("ready session counts chapters from the outline", func(t *testing.T) {
		e := entries[1]
		assert.Equal(t, models.StatusReady, e.Status)
		assert.Equal(t, "Il faro tra le nebbie", e.Title)
		assert.Equal(t, 3, e.TotalChapters)
		assert.Zero(t, e.CompletedChapters)
		assert.Nil(t, e.TotalPages)
	})

	t.Run("completed session", func(t *testing.T) {
		e := entries[2]
		assert.Equal(t, models.StatusCompleted, e.Status)
		assert.Equal(t, "La Stanza Chiusa", e.Title)
		assert.Equal(t, "Flash", e.LLMModel)
		assert.Equal(t, "giallo", e.Genre)
		assert.Equal(t, 3, e.TotalChapters)
		assert.Equal(t, 3, e.CompletedChapters)
		require.NotNil(t, e.TotalPages)
		assert.Equal(t, 120, *e.TotalPages)
		require.NotNil(t, e.CritiqueScore)
		assert.Equal(t, 8.5, *e.CritiqueScore)
		require.NotNil(t, e.EstimatedCost)
		assert.Equal(t, 1.25, *e.EstimatedCost) // real cost, not the stored estimate
		assert.Equal(t, "users/"+owner.ID+"/books/la-stanza.pdf", e.PDFPath)
		assert.Equal(t, "users/"+owner.ID+"/covers/la-stanza.png", e.CoverImagePath)
	})
}

func TestProjector_Entries_ComputedPagesBeforeBackfill(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")

	// An old completed book: chapters on disk, no stored page total
	sess := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now().Add(-24*time.Hour))
	makeCompleted(t, client, sess.ID, "Lettere dal Faro", 0)
	addChapter(t, client, sess.ID, 0, 500)
	addChapter(t, client, sess.ID, 1, 500)

	scheduled := false
	p.runAsync = func(func()) { scheduled = true }

	entries, err := p.Entries(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Title page + TOC + 2 pages per 500-word chapter
	require.NotNil(t, entries[0].TotalPages)
	assert.Equal(t, 6, *entries[0].TotalPages)

	// The repair was scheduled but nothing is persisted yet
	assert.True(t, scheduled)
	stored, err := client.NovelSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.WritingProgress.TotalPages)
}

func TestProjector_Backfill(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")

	sess := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now().Add(-24*time.Hour))
	makeCompleted(t, client, sess.ID, "Lettere dal Faro", 0)
	addChapter(t, client, sess.ID, 0, 500)
	addChapter(t, client, sess.ID, 1, 500)

	usage := models.TokenUsage{}
	usage.Add(models.PhaseChapters, 1_000_000, 200_000, "gemini-2.5-flash")
	require.NoError(t, client.NovelSession.UpdateOneID(sess.ID).SetTokenUsage(usage).Exec(ctx))

	p.cache.Set(libraryKey(owner.ID), "stale")
	p.cache.Set(statsKey(owner.ID), "stale")

	repaired, err := p.Backfill(ctx, owner.ID, []string{sess.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	stored, err := client.NovelSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.WritingProgress.TotalPages)

	// Merge-safe: sibling progress fields survive the patch
	assert.True(t, stored.WritingProgress.IsComplete)
	assert.Equal(t, 3, stored.WritingProgress.TotalSteps)
	assert.Equal(t, "Capitolo 3", stored.WritingProgress.CurrentSectionName)

	// (1M in * 0.30 + 0.2M out * 2.50) USD/M * 0.90 EUR/USD
	assert.InDelta(t, 0.72, stored.RealCostEur, 1e-9)
	require.NotNil(t, stored.EstimatedCostEur)
	assert.InDelta(t, 0.72, *stored.EstimatedCostEur, 1e-9)

	// Repair invalidated both cached views
	_, ok := p.cache.Get(libraryKey(owner.ID))
	assert.False(t, ok)
	_, ok = p.cache.Get(statsKey(owner.ID))
	assert.False(t, ok)

	t.Run("second pass finds nothing to repair", func(t *testing.T) {
		repaired, err := p.Backfill(ctx, owner.ID, []string{sess.ID})
		require.NoError(t, err)
		assert.Zero(t, repaired)
	})

	t.Run("entries reflect the persisted totals", func(t *testing.T) {
		entries, err := p.Entries(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].TotalPages)
		assert.Equal(t, 6, *entries[0].TotalPages)
		require.NotNil(t, entries[0].EstimatedCost)
		assert.InDelta(t, 0.72, *entries[0].EstimatedCost, 1e-9)
	})
}

func TestProjector_Backfill_SkipsAndErrors(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")

	// Not finished yet: never repaired
	ready := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now())
	makeReady(t, client, ready.ID, "In corso")

	repaired, err := p.Backfill(ctx, owner.ID, []string{ready.ID})
	require.NoError(t, err)
	assert.Zero(t, repaired)

	t.Run("unknown session surfaces the error", func(t *testing.T) {
		_, err := p.Backfill(ctx, owner.ID, []string{uuid.New().String()})
		assert.Error(t, err)
	})
}

func TestProjector_Backfill_GuessesWhenUsageMissing(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()

	// Same pricing as testCosts plus the per-phase guesses used for rows
	// that predate token accounting.
	cfg := *testCosts
	cfg.TokenEstimates = map[string]int{
		"questions_in":  1_000,
		"questions_out": 500,
		"draft_in":      2_000,
		"draft_out":     1_500,
		"outline_in":    3_000,
		"outline_out":   1_000,
		"chapter_in":    10_000,
		"chapter_out":   3_000,
	}
	p.costs = progress.NewCostCalculator(&cfg)

	owner := createUser(t, client, "anna@fabula.local", "Anna")
	sess := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now().Add(-time.Hour))
	makeCompleted(t, client, sess.ID, "Senza contatori", 6)
	addChapter(t, client, sess.ID, 1, 500)
	addChapter(t, client, sess.ID, 2, 500)

	repaired, err := p.Backfill(ctx, owner.ID, []string{sess.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	// Fixed phases guess 6000 in / 3000 out, two chapters add 20000/6000.
	stored, err := client.NovelSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	want := (26_000*0.30 + 9_000*2.50) / 1e6 * 0.90
	assert.InDelta(t, want, stored.RealCostEur, 1e-9)
	require.NotNil(t, stored.EstimatedCostEur)
	assert.InDelta(t, want, *stored.EstimatedCostEur, 1e-9)
}

func TestProjector_Entries_SharedBooks(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "anna@fabula.local", "Anna")
	reader := createUser(t, client, "marco@fabula.local", "Marco")

	shared := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now().Add(-time.Hour))
	makeCompleted(t, client, shared.ID, "Lettere dal Faro", 88)
	_, err := client.BookShare.Create().
		SetID(uuid.New().String()).
		SetSessionID(shared.ID).
		SetOwnerID(owner.ID).
		SetRecipientID(reader.ID).
		Save(ctx)
	require.NoError(t, err)

	own := createSession(t, client, reader.ID, "gemini-2.5-pro", time.Now())

	entries, err := p.Entries(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, own.ID, entries[0].SessionID)
	assert.False(t, entries[0].IsShared)

	e := entries[1]
	assert.Equal(t, shared.ID, e.SessionID)
	assert.True(t, e.IsShared)
	assert.Equal(t, owner.ID, e.SharedByID)
	assert.Equal(t, "Anna", e.SharedByName)
	assert.Equal(t, "Lettere dal Faro", e.Title)
	require.NotNil(t, e.TotalPages)
	assert.Equal(t, 88, *e.TotalPages)

	t.Run("anonymized owner shows the sentinel", func(t *testing.T) {
		require.NoError(t, client.User.UpdateOneID(owner.ID).SetDisplayName(models.DeletedUserName).Exec(ctx))
		p.cache.Invalidate(libraryKey(reader.ID))

		entries, err := p.Entries(ctx, reader.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, models.DeletedUserName, entries[1].SharedByName)
	})

	t.Run("soft-deleted book drops off the shelf", func(t *testing.T) {
		require.NoError(t, client.NovelSession.UpdateOneID(shared.ID).SetDeletedAt(time.Now()).Exec(ctx))
		p.cache.Invalidate(libraryKey(reader.ID))

		entries, err := p.Entries(ctx, reader.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, own.ID, entries[0].SessionID)
	})
}

func TestProjector_Entries_CachedView(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")
	createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now().Add(-time.Hour))

	entries, err := p.Entries(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// A write inside the TTL window is invisible until invalidation
	createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now())

	entries, err = p.Entries(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	p.cache.Invalidate(libraryKey(owner.ID))

	entries, err = p.Entries(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestProjector_PDFPathFallback(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	sess := createSession(t, client, owner.ID, "gemini-2.5-flash", created)
	makeCompleted(t, client, sess.ID, "La Stanza Chiusa", 42)

	entries, err := p.Entries(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// No stored path: the canonical filename stands in
	assert.Equal(t, "2026-03-14_g25f_La_Stanza_Chiusa.pdf", entries[0].PDFPath)
}
