package services

import (
	"context"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/pkg/models"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceIntegration walks a novel from intake to a shared, finished
// book with the services wired together the way the worker pool wires them.
// The worker side (claim, persist, complete) is played by hand.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sessions := NewSessionService(client.Client)
	tasks := NewTaskService(client.Client)
	credits := NewCreditService(client.Client, testQuota)
	users := NewUserService(client.Client, testQuota)
	generation := NewGenerationService(sessions, tasks, credits)
	shares := NewShareService(client.Client)

	var (
		ownerID   string
		readerID  string
		sessionID string
	)

	t.Run("accounts open with full pools", func(t *testing.T) {
		owner, err := users.Register(ctx, models.RegisterRequest{
			Email:       "elena@example.com",
			Password:    "una-password-robusta",
			DisplayName: "Elena Marchetti",
		})
		require.NoError(t, err)
		ownerID = owner.ID

		reader, err := users.Register(ctx, models.RegisterRequest{
			Email:       "dario@example.com",
			Password:    "altra-password-robusta",
			DisplayName: "Dario Fontana",
		})
		require.NoError(t, err)
		readerID = reader.ID

		balance, err := credits.Balance(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash, balance.Flash)
		assert.Equal(t, testQuota.Pro, balance.Pro)
		assert.Equal(t, testQuota.Ultra, balance.Ultra)
	})

	t.Run("intake through validated outline", func(t *testing.T) {
		sess, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
			UserID:   ownerID,
			FormData: map[string]any{"plot": "un archivista scopre lettere mai spedite", "tone": "malinconico"},
			LLMModel: "gemini-2.5-flash",
			Genre:    "literary",
		})
		require.NoError(t, err)
		sessionID = sess.ID
		assert.Equal(t, models.StatusDraft, DeriveStatus(sess))

		// Questions run: enqueue, claim as a worker would, persist, finish.
		task, err := generation.RequestQuestions(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindQuestions, task.Kind)

		claimed, err := tasks.ClaimNextQueued(ctx, "pod-itest")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, task.ID, claimed.ID)
		assert.Equal(t, generationtask.StatusRunning, claimed.Status)

		err = sessions.SaveGeneratedQuestions(ctx, sessionID, []models.Question{
			{ID: 1, Text: "Chi scriveva le lettere?", Type: models.QuestionText},
			{ID: 2, Text: "Epoca della vicenda?", Type: models.QuestionMultipleChoice, Options: []string{"anni '20", "anni '50"}},
		})
		require.NoError(t, err)
		require.NoError(t, tasks.Complete(ctx, claimed.ID))

		err = sessions.SaveAnswers(ctx, sessionID, map[string]string{"1": "la madre del protagonista", "2": "anni '50"})
		require.NoError(t, err)

		// Draft run, same dance.
		task, err = generation.RequestDraft(ctx, sessionID, "")
		require.NoError(t, err)
		claimed, err = tasks.ClaimNextQueued(ctx, "pod-itest")
		require.NoError(t, err)
		require.Equal(t, task.ID, claimed.ID)

		_, err = sessions.UpdateDraft(ctx, sessionID, "Lettere dal cassetto", "TRAMA: l'archivista ricuce trent'anni di silenzi familiari.")
		require.NoError(t, err)
		require.NoError(t, tasks.Complete(ctx, claimed.ID))

		err = sessions.ValidateDraft(ctx, sessionID, 1)
		require.NoError(t, err)

		_, err = sessions.UpdateOutline(ctx, sessionID, "## Capitolo 1: Il ritrovamento\n## Capitolo 2: Le risposte\n## Capitolo 3: La consegna\n", false)
		require.NoError(t, err)

		sess, err = sessions.GetSession(ctx, sessionID, false)
		require.NoError(t, err)
		assert.Equal(t, models.StatusReady, DeriveStatus(sess))
	})

	t.Run("writing burns one credit and completes", func(t *testing.T) {
		task, err := generation.StartWriting(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindWriting, task.Kind)

		balance, err := credits.Balance(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash-1, balance.Flash)

		// A second request must bounce off the live task, not burn again.
		_, err = generation.StartWriting(ctx, sessionID)
		assert.ErrorIs(t, err, ErrTaskAlreadyQueued)

		claimed, err := tasks.ClaimNextQueued(ctx, "pod-itest")
		require.NoError(t, err)
		require.Equal(t, task.ID, claimed.ID)

		_, err = sessions.StartWriting(ctx, sessionID, 3, "Capitolo 1: Il ritrovamento")
		require.NoError(t, err)
		for i, title := range []string{"Capitolo 1: Il ritrovamento", "Capitolo 2: Le risposte", "Capitolo 3: La consegna"} {
			_, err = sessions.SaveChapter(ctx, sessionID, i+1, title, "Il cassetto cedette con uno scatto secco.")
			require.NoError(t, err)
		}
		require.NoError(t, sessions.CompleteWriting(ctx, sessionID))
		require.NoError(t, tasks.Complete(ctx, claimed.ID))

		sess, err := sessions.GetSession(ctx, sessionID, true)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, DeriveStatus(sess))
		assert.Len(t, sess.Edges.Chapters, 3)

		balance, err = credits.Balance(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash-1, balance.Flash, "claim and complete must not burn again")

		live, err := tasks.GetLiveTask(ctx, sessionID)
		require.NoError(t, err)
		assert.Nil(t, live)
	})

	t.Run("weekly boundary refills before the next burn", func(t *testing.T) {
		err := client.Client.User.UpdateOneID(ownerID).
			SetCreditsFlash(0).
			SetCreditsResetAt(time.Now().AddDate(0, 0, -8)).
			Exec(ctx)
		require.NoError(t, err)

		balance, err := credits.Consume(ctx, ownerID, models.ModeFlash)
		require.NoError(t, err, "stale reset mark must refill before consuming")
		assert.Equal(t, testQuota.Flash-1, balance.Flash)
		assert.Equal(t, time.Monday, balance.NextResetAt.Weekday())
		assert.True(t, balance.NextResetAt.After(time.Now()))
	})

	t.Run("finished book fans out to the reader", func(t *testing.T) {
		share, recipient, err := shares.ShareBook(ctx, sessionID, ownerID, "dario@example.com")
		require.NoError(t, err)
		assert.Equal(t, readerID, recipient.ID)
		assert.Equal(t, sessionID, share.SessionID)

		ok, err := shares.HasReadAccess(ctx, sessionID, readerID)
		require.NoError(t, err)
		assert.True(t, ok)

		shared, err := shares.ListSharedWithUser(ctx, readerID)
		require.NoError(t, err)
		require.Len(t, shared, 1)
		assert.Equal(t, sessionID, shared[0].SessionID)

		require.NoError(t, shares.Unshare(ctx, sessionID, ownerID, readerID))
		ok, err = shares.HasReadAccess(ctx, sessionID, readerID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
