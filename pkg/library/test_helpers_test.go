package library

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/fabula-ai/fabula/pkg/services"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testModels mirrors the deployed abbreviation table
var testModels = &config.ModelsConfig{
	Abbreviations: map[string]string{
		"gemini-2.5-flash": "g25f",
		"gemini-2.5-pro":   "g25p",
	},
}

// testCosts prices the flash model so token-based backfill has something
// to compute
var testCosts = &config.CostConfig{
	ModelCosts: map[string]config.ModelCost{
		"gemini-2.5-flash": {In: 0.30, Out: 2.50},
	},
	ExchangeRateUSDToEUR: 0.90,
}

// newTestProjector wires a projector against a fresh database. Background
// backfill is disabled; tests that want it call Backfill directly.
func newTestProjector(t *testing.T) (*Projector, *ent.Client) {
	t.Helper()

	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	p := NewProjector(client.Client, sessions, testModels, progress.NewCostCalculator(testCosts))
	p.runAsync = func(func()) {}
	return p, client.Client
}

func createUser(t *testing.T, client *ent.Client, email, name string) *ent.User {
	t.Helper()

	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetHashedPassword("x").
		SetDisplayName(name).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// createSession inserts a session with a pinned creation time so ordering
// and calendar buckets are deterministic.
func createSession(t *testing.T, client *ent.Client, userID, model string, createdAt time.Time) *ent.NovelSession {
	t.Helper()

	sess, err := client.NovelSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetLlmModel(model).
		SetGenre("giallo").
		SetFormData(map[string]any{"plot": "un faro, una lettera mai spedita"}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

// makeReady stores a validated draft and a three-chapter outline.
func makeReady(t *testing.T, client *ent.Client, sessionID, title string) {
	t.Helper()

	err := client.NovelSession.UpdateOneID(sessionID).
		SetDraft(models.Draft{
			CurrentText:    "TRAMA: il guardiano decifra messaggi nella nebbia",
			CurrentTitle:   title,
			CurrentVersion: 1,
			Validated:      true,
		}).
		SetOutline(models.Outline{
			CurrentText: "## Capitolo 1\n## Capitolo 2\n## Capitolo 3\n",
			Version:     1,
		}).
		Exec(context.Background())
	require.NoError(t, err)
}

// makeCompleted marks the writing loop finished. totalPages == 0 leaves the
// stored page total missing, the shape old sessions are in before backfill.
func makeCompleted(t *testing.T, client *ent.Client, sessionID, title string, totalPages int) {
	t.Helper()

	makeReady(t, client, sessionID, title)
	now := time.Now()
	err := client.NovelSession.UpdateOneID(sessionID).
		SetWritingProgress(models.WritingProgress{
			CurrentStep:            3,
			TotalSteps:             3,
			CurrentSectionName:     "Capitolo 3",
			IsComplete:             true,
			TotalPages:             totalPages,
			CompletedChaptersCount: 3,
		}).
		SetWritingStartTime(now.Add(-30 * time.Minute)).
		SetWritingEndTime(now).
		Exec(context.Background())
	require.NoError(t, err)
}

func addChapter(t *testing.T, client *ent.Client, sessionID string, index, words int) {
	t.Helper()

	content := strings.TrimSpace(strings.Repeat("parola ", words))
	_, err := client.Chapter.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetSectionIndex(index).
		SetTitle("Capitolo").
		SetContent(content).
		SetWordCount(words).
		Save(context.Background())
	require.NoError(t, err)
}
