package services

import (
	"context"
	"testing"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerationFixture(t *testing.T) (*GenerationService, *SessionService, *TaskService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	tasks := NewTaskService(client.Client)
	credits := NewCreditService(client.Client, testQuota)
	return NewGenerationService(sessions, tasks, credits), sessions, tasks, client.Client
}

func TestGenerationService_RequestQuestions(t *testing.T) {
	gen, sessions, _, client := newGenerationFixture(t)
	ctx := context.Background()

	t.Run("queues and marks pending", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")

		task, err := gen.RequestQuestions(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindQuestions, task.Kind)
		assert.Equal(t, generationtask.StatusQueued, task.Status)

		got, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ProgressPending, got.QuestionsProgress.Status)
	})

	t.Run("closed after draft validation", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)

		_, err := gen.RequestQuestions(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := gen.RequestQuestions(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGenerationService_RequestDraft(t *testing.T) {
	gen, sessions, tasks, client := newGenerationFixture(t)
	ctx := context.Background()

	t.Run("stashes feedback for the worker", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")

		task, err := gen.RequestDraft(ctx, sess.ID, "  more fog, less romance ")
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindDraft, task.Kind)

		got, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "more fog, less romance", got.Draft.PendingFeedback)
		assert.Equal(t, models.ProgressPending, got.DraftProgress.Status)
	})

	t.Run("refused while another task is live", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		_, err := tasks.Enqueue(ctx, sess.ID, generationtask.KindQuestions)
		require.NoError(t, err)

		_, err = gen.RequestDraft(ctx, sess.ID, "")
		assert.Equal(t, ErrTaskAlreadyQueued, err)
	})

	t.Run("frozen once validated", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)

		_, err := gen.RequestDraft(ctx, sess.ID, "tweak the ending")
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})
}

func TestGenerationService_RequestOutline(t *testing.T) {
	gen, sessions, _, client := newGenerationFixture(t)
	ctx := context.Background()

	t.Run("requires a validated draft", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")

		_, err := gen.RequestOutline(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("queues once validated", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)

		task, err := gen.RequestOutline(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindOutline, task.Kind)

		got, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ProgressPending, got.OutlineProgress.Status)
	})

	t.Run("frozen once chapters exist", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetWritingProgress(models.WritingProgress{CurrentStep: 1, TotalSteps: 3}).
			Exec(ctx)
		require.NoError(t, err)

		_, err = gen.RequestOutline(ctx, sess.ID)
		assert.Equal(t, ErrOutlineFrozen, err)
	})
}

func TestGenerationService_StartWriting(t *testing.T) {
	gen, _, tasks, client := newGenerationFixture(t)
	credits := NewCreditService(client, testQuota)
	ctx := context.Background()

	t.Run("burns one credit and queues", func(t *testing.T) {
		user := createTestUser(t, client, "start@fabula.test")
		sess := createTestSession(t, client, user.ID)
		makeSessionReady(t, client, sess.ID)

		task, err := gen.StartWriting(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindWriting, task.Kind)

		balance, err := credits.Balance(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash-1, balance.Flash)
	})

	t.Run("gemini-3-pro bills the pro pool", func(t *testing.T) {
		user := createTestUser(t, client, "propool@fabula.test")
		err := client.User.UpdateOneID(user.ID).
			SetCreditsFlash(3).
			SetCreditsPro(1).
			SetCreditsUltra(0).
			Exec(ctx)
		require.NoError(t, err)
		sess := createTestSession(t, client, user.ID)
		err = client.NovelSession.UpdateOneID(sess.ID).
			SetLlmModel("gemini-3-pro").
			Exec(ctx)
		require.NoError(t, err)
		makeSessionReady(t, client, sess.ID)

		// An empty ultra pool must not block a pro-tier model.
		task, err := gen.StartWriting(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindWriting, task.Kind)

		balance, err := credits.Balance(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, balance.Pro)
		assert.Equal(t, 3, balance.Flash)
		assert.Equal(t, 0, balance.Ultra)
	})

	t.Run("double start is refused before a second burn", func(t *testing.T) {
		user := createTestUser(t, client, "double@fabula.test")
		sess := createTestSession(t, client, user.ID)
		makeSessionReady(t, client, sess.ID)

		_, err := gen.StartWriting(ctx, sess.ID)
		require.NoError(t, err)

		_, err = gen.StartWriting(ctx, sess.ID)
		assert.Equal(t, ErrTaskAlreadyQueued, err)

		balance, err := credits.Balance(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash-1, balance.Flash)
	})

	t.Run("exhausted pool", func(t *testing.T) {
		user := createTestUser(t, client, "broke@fabula.test")
		err := client.User.UpdateOneID(user.ID).SetCreditsFlash(0).Exec(ctx)
		require.NoError(t, err)
		sess := createTestSession(t, client, user.ID)
		makeSessionReady(t, client, sess.ID)

		_, err = gen.StartWriting(ctx, sess.ID)
		assert.True(t, IsCreditsExhausted(err))

		// Nothing reached the queue
		live, err := tasks.GetLiveTask(ctx, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, live)
	})

	t.Run("ownerless session writes without a credit charge", func(t *testing.T) {
		sess := createTestSession(t, client, "")
		makeSessionReady(t, client, sess.ID)

		task, err := gen.StartWriting(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindWriting, task.Kind)
	})

	t.Run("requires validated draft and outline", func(t *testing.T) {
		user := createTestUser(t, client, "early@fabula.test")
		sess := createTestSession(t, client, user.ID)

		_, err := gen.StartWriting(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("interrupted run must resume, not restart", func(t *testing.T) {
		user := createTestUser(t, client, "paused@fabula.test")
		sess := createTestSession(t, client, user.ID)
		makeSessionReady(t, client, sess.ID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetWritingProgress(models.WritingProgress{CurrentStep: 1, TotalSteps: 3, IsPaused: true}).
			Exec(ctx)
		require.NoError(t, err)

		_, err = gen.StartWriting(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)

		balance, err := credits.Balance(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash, balance.Flash)
	})

	t.Run("complete book is done", func(t *testing.T) {
		user := createTestUser(t, client, "done@fabula.test")
		sess := createTestSession(t, client, user.ID)
		makeSessionCompleted(t, client, sess.ID)

		_, err := gen.StartWriting(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})
}

func TestGenerationService_ResumeWriting(t *testing.T) {
	gen, sessions, _, client := newGenerationFixture(t)
	ctx := context.Background()

	t.Run("requeues and clears the pause flag", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetWritingProgress(models.WritingProgress{
				CurrentStep: 2, TotalSteps: 5, IsPaused: true, Error: "llm failure",
				CompletedChaptersCount: 2,
			}).
			Exec(ctx)
		require.NoError(t, err)

		task, err := gen.ResumeWriting(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindWriting, task.Kind)

		got, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.False(t, got.WritingProgress.IsPaused)
		assert.Empty(t, got.WritingProgress.Error)
		// Prefix untouched
		assert.Equal(t, 2, got.WritingProgress.CurrentStep)
	})

	t.Run("not paused", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)

		_, err := gen.ResumeWriting(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("resume is free", func(t *testing.T) {
		user := createTestUser(t, client, "resume@fabula.test")
		credits := NewCreditService(client, testQuota)
		sess := createTestSession(t, client, user.ID)
		makeSessionReady(t, client, sess.ID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetWritingProgress(models.WritingProgress{CurrentStep: 1, TotalSteps: 4, IsPaused: true}).
			Exec(ctx)
		require.NoError(t, err)

		_, err = gen.ResumeWriting(ctx, sess.ID)
		require.NoError(t, err)

		balance, err := credits.Balance(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, testQuota.Flash, balance.Flash)
	})
}

func TestGenerationService_Cancel(t *testing.T) {
	gen, sessions, tasks, client := newGenerationFixture(t)
	ctx := context.Background()

	t.Run("queued writing task pauses the session", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)
		task, err := tasks.Enqueue(ctx, sess.ID, generationtask.KindWriting)
		require.NoError(t, err)

		require.NoError(t, gen.Cancel(ctx, sess.ID))

		got, err := tasks.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusCancelled, got.Status)

		updated, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.True(t, updated.WritingProgress.IsPaused)
		assert.Equal(t, "cancelled by user", updated.WritingProgress.Error)
	})

	t.Run("prep task gets a failed marker", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		_, err := tasks.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		require.NoError(t, err)

		require.NoError(t, gen.Cancel(ctx, sess.ID))

		got, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ProgressFailed, got.DraftProgress.Status)
		assert.Equal(t, "cancelled by user", got.DraftProgress.Error)
	})

	t.Run("critique task flips the critique status", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionCompleted(t, client, sess.ID)
		_, err := tasks.Enqueue(ctx, sess.ID, generationtask.KindCritique)
		require.NoError(t, err)

		require.NoError(t, gen.Cancel(ctx, sess.ID))

		got, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, novelsession.CritiqueStatusFailed, got.CritiqueStatus)
	})

	t.Run("nothing live", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")

		err := gen.Cancel(ctx, sess.ID)
		assert.Equal(t, ErrNotCancellable, err)
	})
}

func TestGenerationService_RequestCritique(t *testing.T) {
	gen, sessions, _, client := newGenerationFixture(t)
	ctx := context.Background()

	t.Run("requires a completed book", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionReady(t, client, sess.ID)

		_, err := gen.RequestCritique(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("queues and marks pending", func(t *testing.T) {
		sess := createTestSession(t, client, "reader")
		makeSessionCompleted(t, client, sess.ID)

		task, err := gen.RequestCritique(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.KindCritique, task.Kind)

		got, err := sessions.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, novelsession.CritiqueStatusPending, got.CritiqueStatus)
	})
}
