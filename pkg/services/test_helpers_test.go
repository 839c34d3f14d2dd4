package services

import (
	"context"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testQuota is the weekly allotment used across service tests
var testQuota = config.QuotaConfig{Flash: 3, Pro: 1, Ultra: 1}

// createTestUser inserts a user with full pools and a fresh reset mark
func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()

	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetHashedPassword("x").
		SetDisplayName("Test Reader").
		SetCreditsFlash(testQuota.Flash).
		SetCreditsPro(testQuota.Pro).
		SetCreditsUltra(testQuota.Ultra).
		SetCreditsResetAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// createTestSession inserts a minimal session owned by userID
func createTestSession(t *testing.T, client *ent.Client, userID string) *ent.NovelSession {
	t.Helper()

	builder := client.NovelSession.Create().
		SetID(uuid.New().String()).
		SetLlmModel("gemini-2.5-flash").
		SetFormData(map[string]any{"plot": "a lighthouse keeper finds a message", "genre": "mystery"}).
		SetGenre("mystery")
	if userID != "" {
		builder.SetUserID(userID)
	}

	sess, err := builder.Save(context.Background())
	require.NoError(t, err)
	return sess
}

// makeSessionReady validates a draft and stores an outline so the session
// reaches the ready phase
func makeSessionReady(t *testing.T, client *ent.Client, sessionID string) {
	t.Helper()

	err := client.NovelSession.UpdateOneID(sessionID).
		SetDraft(models.Draft{
			CurrentText:    "TRAMA: a keeper decodes messages in the fog",
			CurrentTitle:   "Il faro tra le nebbie",
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

// makeSessionCompleted pushes a session straight to the completed phase
func makeSessionCompleted(t *testing.T, client *ent.Client, sessionID string) {
	t.Helper()

	makeSessionReady(t, client, sessionID)
	now := time.Now()
	err := client.NovelSession.UpdateOneID(sessionID).
		SetWritingProgress(models.WritingProgress{
			CurrentStep:            3,
			TotalSteps:             3,
			CurrentSectionName:     "Capitolo 3",
			IsComplete:             true,
			CompletedChaptersCount: 3,
		}).
		SetWritingStartTime(now.Add(-30 * time.Minute)).
		SetWritingEndTime(now).
		Exec(context.Background())
	require.NoError(t, err)
}
