package library

import (
	"context"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishBook(t *testing.T, client *ent.Client, sessionID string, pages int, score, costEUR float64, minutes []float64) {
	t.Helper()

	makeCompleted(t, client, sessionID, "Libro", pages)
	err := client.NovelSession.UpdateOneID(sessionID).
		SetCritique(models.Critique{Score: score}).
		SetCritiqueStatus(novelsession.CritiqueStatusCompleted).
		SetRealCostEur(costEUR).
		SetWritingTimeMinutes(minutes).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestProjector_Stats(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")

	s1 := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	finishBook(t, client, s1.ID, 100, 8.0, 1.20, []float64{30})

	s2 := createSession(t, client, owner.ID, "gemini-2.5-pro", time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC))
	finishBook(t, client, s2.ID, 50, 6.0, 0.80, []float64{25, 20})

	// A bare draft: counted, no pages, no score
	createSession(t, client, owner.ID, "gemini-2.5-flash", time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC))

	stats, err := p.Stats(ctx, owner.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, map[string]int{"completed": 2, "draft": 1}, stats.ByStatus)
	assert.Equal(t, 150, stats.TotalPages)

	require.NotNil(t, stats.MeanCritiqueScore)
	assert.InDelta(t, 7.0, *stats.MeanCritiqueScore, 1e-9)
	require.NotNil(t, stats.MedianCritiqueScore)
	assert.InDelta(t, 7.0, *stats.MedianCritiqueScore, 1e-9)

	// (30 + 25 + 20) minutes over 150 pages
	require.NotNil(t, stats.MinutesPerPage)
	assert.InDelta(t, 0.5, *stats.MinutesPerPage, 1e-9)

	assert.InDelta(t, 1.20, stats.CostByModel["Flash"], 1e-9)
	assert.InDelta(t, 0.80, stats.CostByModel["Pro"], 1e-9)

	assert.Equal(t, []models.PeriodBucket{
		{Period: "2026-01", Count: 1, Pages: 100},
		{Period: "2026-02", Count: 2, Pages: 50},
	}, stats.Monthly)
	assert.Equal(t, []models.PeriodBucket{
		{Period: "2026-01-15", Count: 1, Pages: 100},
		{Period: "2026-02-03", Count: 1, Pages: 50},
		{Period: "2026-02-20", Count: 1, Pages: 0},
	}, stats.Daily)

	t.Run("served from cache inside the TTL", func(t *testing.T) {
		again, err := p.Stats(ctx, owner.ID)
		require.NoError(t, err)
		assert.Same(t, stats, again)
	})
}

func TestProjector_Stats_EmptyShelf(t *testing.T) {
	p, client := newTestProjector(t)
	owner := createUser(t, client, "reader@fabula.local", "Anna")

	stats, err := p.Stats(context.Background(), owner.ID)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalBooks)
	assert.Empty(t, stats.ByStatus)
	assert.Zero(t, stats.TotalPages)
	assert.Nil(t, stats.MeanCritiqueScore)
	assert.Nil(t, stats.MedianCritiqueScore)
	assert.Nil(t, stats.MinutesPerPage)
	assert.Nil(t, stats.CostByModel)
	assert.Empty(t, stats.Monthly)
	assert.Empty(t, stats.Daily)
}

func TestProjector_Stats_PausedMinutesStayOut(t *testing.T) {
	p, client := newTestProjector(t)
	ctx := context.Background()
	owner := createUser(t, client, "reader@fabula.local", "Anna")

	// Paused book has logged minutes but no countable pages; its time must
	// not skew the pace of finished books.
	paused := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now().Add(-2*time.Hour))
	makeReady(t, client, paused.ID, "Interrotto")
	err := client.NovelSession.UpdateOneID(paused.ID).
		SetWritingProgress(models.WritingProgress{CurrentStep: 1, TotalSteps: 3, IsPaused: true}).
		SetWritingTimeMinutes([]float64{500}).
		Exec(ctx)
	require.NoError(t, err)

	done := createSession(t, client, owner.ID, "gemini-2.5-flash", time.Now().Add(-time.Hour))
	finishBook(t, client, done.ID, 100, 7.0, 0.50, []float64{50})

	stats, err := p.Stats(ctx, owner.ID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"paused": 1, "completed": 1}, stats.ByStatus)
	require.NotNil(t, stats.MinutesPerPage)
	assert.InDelta(t, 0.5, *stats.MinutesPerPage, 1e-9)
}
