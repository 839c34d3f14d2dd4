package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/services"
	testdb "github.com/fabula-ai/fabula/test/database"
)

func retentionFixture(t *testing.T) (*ent.Client, *services.SessionService, *services.TaskService, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	sessions := services.NewSessionService(client)
	tasks := services.NewTaskService(client)

	cfg := &config.RetentionConfig{
		SessionRetentionDays: 30,
		TaskTTL:              time.Hour,
		CleanupInterval:      time.Hour,
	}
	return client, sessions, tasks, NewService(cfg, sessions, tasks)
}

func newRetentionSession(t *testing.T, sessions *services.SessionService) *ent.NovelSession {
	t.Helper()
	sess, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{
		UserID:   "retention-user",
		FormData: map[string]any{"plot": "Racconto di prova per la retention."},
		LLMModel: "gemini-2.5-flash",
	})
	require.NoError(t, err)
	return sess
}

func TestServiceSoftDeletesStaleSessions(t *testing.T) {
	client, sessions, _, svc := retentionFixture(t)
	ctx := context.Background()

	sess := newRetentionSession(t, sessions)
	err := client.NovelSession.UpdateOneID(sess.ID).
		SetUpdatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	updated, err := sessions.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestServicePreservesRecentSessions(t *testing.T) {
	_, sessions, _, svc := retentionFixture(t)
	ctx := context.Background()

	sess := newRetentionSession(t, sessions)

	svc.runAll(ctx)

	updated, err := sessions.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.Nil(t, updated.DeletedAt)
}

func TestServiceDeletesExpiredFinishedTasks(t *testing.T) {
	client, sessions, tasks, svc := retentionFixture(t)
	ctx := context.Background()

	sess := newRetentionSession(t, sessions)

	// Finished two hours ago: past the one hour TTL.
	expired, err := tasks.Enqueue(ctx, sess.ID, generationtask.KindQuestions)
	require.NoError(t, err)
	require.NoError(t, tasks.Complete(ctx, expired.ID))
	err = client.GenerationTask.UpdateOneID(expired.ID).
		SetFinishedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	// Freshly finished: inside the TTL.
	recent, err := tasks.Enqueue(ctx, sess.ID, generationtask.KindDraft)
	require.NoError(t, err)
	require.NoError(t, tasks.Complete(ctx, recent.ID))

	// Still waiting: age alone never deletes live rows.
	queued, err := tasks.Enqueue(ctx, sess.ID, generationtask.KindOutline)
	require.NoError(t, err)
	err = client.GenerationTask.UpdateOneID(queued.ID).
		SetCreatedAt(time.Now().Add(-3 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = tasks.GetTask(ctx, expired.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = tasks.GetTask(ctx, recent.ID)
	assert.NoError(t, err)

	_, err = tasks.GetTask(ctx, queued.ID)
	assert.NoError(t, err)
}

func TestServiceStartStop(t *testing.T) {
	_, _, _, svc := retentionFixture(t)

	svc.Start(context.Background())
	svc.Stop()
}
