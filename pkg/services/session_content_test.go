package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_DraftLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("first draft starts the version chain", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")

		updated, err := service.UpdateDraft(ctx, sess.ID, "Il faro", "TRAMA: un custode nel faro")
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Draft.CurrentVersion)
		assert.Equal(t, "Il faro", updated.Draft.CurrentTitle)
		assert.Empty(t, updated.Draft.History)
		assert.False(t, updated.Draft.Validated)
	})

	t.Run("regeneration pushes the old draft into history", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")

		_, err := service.UpdateDraft(ctx, sess.ID, "Prima stesura", "testo uno")
		require.NoError(t, err)
		updated, err := service.UpdateDraft(ctx, sess.ID, "Seconda stesura", "testo due")
		require.NoError(t, err)

		assert.Equal(t, 2, updated.Draft.CurrentVersion)
		assert.Equal(t, "Seconda stesura", updated.Draft.CurrentTitle)
		require.Len(t, updated.Draft.History, 1)
		assert.Equal(t, 1, updated.Draft.History[0].Version)
		assert.Equal(t, "Prima stesura", updated.Draft.History[0].Title)
		assert.Equal(t, "testo uno", updated.Draft.History[0].Text)
	})

	t.Run("manual edit keeps the title", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")

		_, err := service.UpdateDraft(ctx, sess.ID, "Titolo originale", "testo uno")
		require.NoError(t, err)
		updated, err := service.UpdateDraft(ctx, sess.ID, "", "testo rivisto a mano")
		require.NoError(t, err)

		assert.Equal(t, "Titolo originale", updated.Draft.CurrentTitle)
		assert.Equal(t, 2, updated.Draft.CurrentVersion)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		_, err := service.UpdateDraft(ctx, sess.ID, "T", "   ")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validate pins the reviewed version", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		updated, err := service.UpdateDraft(ctx, sess.ID, "T", "testo")
		require.NoError(t, err)

		err = service.ValidateDraft(ctx, sess.ID, updated.Draft.CurrentVersion)
		require.NoError(t, err)

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.True(t, got.Draft.Validated)

		// Validating the same version again is a no-op
		require.NoError(t, service.ValidateDraft(ctx, sess.ID, updated.Draft.CurrentVersion))
	})

	t.Run("stale version is a concurrent modification", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		_, err := service.UpdateDraft(ctx, sess.ID, "T", "v1")
		require.NoError(t, err)
		_, err = service.UpdateDraft(ctx, sess.ID, "T", "v2")
		require.NoError(t, err)

		err = service.ValidateDraft(ctx, sess.ID, 1)
		assert.Equal(t, ErrConcurrentModification, err)
	})

	t.Run("nothing to validate", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		err := service.ValidateDraft(ctx, sess.ID, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPreconditionFailed))
	})

	t.Run("validated draft is frozen", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		updated, err := service.UpdateDraft(ctx, sess.ID, "T", "testo")
		require.NoError(t, err)
		require.NoError(t, service.ValidateDraft(ctx, sess.ID, updated.Draft.CurrentVersion))

		_, err = service.UpdateDraft(ctx, sess.ID, "T", "testo nuovo")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPreconditionFailed))
	})
}

func TestSessionService_AnswersAndQuestions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("stores questions and answers", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "qna")

		questions := []models.Question{
			{ID: 1, Text: "Chi è il protagonista?", Type: models.QuestionText},
			{ID: 2, Text: "Tono della storia?", Type: models.QuestionMultipleChoice, Options: []string{"cupo", "leggero"}},
		}
		require.NoError(t, service.SaveGeneratedQuestions(ctx, sess.ID, questions))

		answers := map[string]string{"1": "Una guardiana del faro", "2": "cupo"}
		require.NoError(t, service.SaveAnswers(ctx, sess.ID, answers))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Len(t, got.GeneratedQuestions, 2)
		assert.Equal(t, "cupo", got.QuestionAnswers["2"])
	})

	t.Run("answers freeze once the draft is validated", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "qna")
		updated, err := service.UpdateDraft(ctx, sess.ID, "T", "testo")
		require.NoError(t, err)
		require.NoError(t, service.ValidateDraft(ctx, sess.ID, updated.Draft.CurrentVersion))

		err = service.SaveAnswers(ctx, sess.ID, map[string]string{"1": "tardi"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPreconditionFailed))
	})

	t.Run("validates input", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "qna")
		assert.True(t, IsValidationError(service.SaveGeneratedQuestions(ctx, sess.ID, nil)))
		assert.True(t, IsValidationError(service.SaveAnswers(ctx, sess.ID, nil)))
	})
}

func TestSessionService_SetPhaseProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client.Client, "phases")

	t.Run("writes each phase to its own column", func(t *testing.T) {
		for _, phase := range []string{models.PhaseQuestions, models.PhaseDraft, models.PhaseOutline} {
			err := service.SetPhaseProgress(ctx, sess.ID, phase, models.PhaseProgress{
				Status:  models.ProgressRunning,
				Percent: 40,
			})
			require.NoError(t, err)
		}

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ProgressRunning, got.QuestionsProgress.Status)
		assert.Equal(t, models.ProgressRunning, got.DraftProgress.Status)
		assert.Equal(t, models.ProgressRunning, got.OutlineProgress.Status)
		assert.False(t, got.QuestionsProgress.UpdatedAt.IsZero())
	})

	t.Run("rejects unknown phase", func(t *testing.T) {
		err := service.SetPhaseProgress(ctx, sess.ID, "chapters", models.PhaseProgress{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_UpdateOutline(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("requires a validated draft", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "outliner")
		_, err := service.UpdateOutline(ctx, sess.ID, "## Capitolo 1", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPreconditionFailed))
	})

	t.Run("bumps the version on rewrite", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "outliner")
		makeSessionReady(t, client.Client, sess.ID)

		updated, err := service.UpdateOutline(ctx, sess.ID, "## Nuovo piano\n## Altro capitolo", false)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Outline.Version)
	})

	t.Run("frozen once a chapter exists", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "outliner")
		makeSessionReady(t, client.Client, sess.ID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetWritingProgress(models.WritingProgress{CurrentStep: 1, TotalSteps: 3, IsPaused: true}).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.UpdateOutline(ctx, sess.ID, "## Riscrittura", false)
		assert.Equal(t, ErrOutlineFrozen, err)

		// Explicit opt-in unfreezes and bumps the version
		updated, err := service.UpdateOutline(ctx, sess.ID, "## Riscrittura", true)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Outline.Version)
	})

	t.Run("not frozen before the first chapter lands", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "outliner")
		makeSessionReady(t, client.Client, sess.ID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetWritingProgress(models.WritingProgress{CurrentStep: 0, TotalSteps: 3}).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.UpdateOutline(ctx, sess.ID, "## Ripensamento", false)
		require.NoError(t, err)
	})

	t.Run("editable again after completion", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "outliner")
		makeSessionCompleted(t, client.Client, sess.ID)

		_, err := service.UpdateOutline(ctx, sess.ID, "## Postuma", false)
		require.NoError(t, err)
	})
}

func TestSessionService_TokenAndCostAccounting(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("token usage accumulates per phase", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "accountant")

		require.NoError(t, service.UpdateTokenUsage(ctx, sess.ID, models.PhaseChapters, 1000, 2000, "gemini-2.5-pro"))
		require.NoError(t, service.UpdateTokenUsage(ctx, sess.ID, models.PhaseChapters, 500, 700, "gemini-2.5-pro"))
		require.NoError(t, service.UpdateTokenUsage(ctx, sess.ID, models.PhaseDraft, 10, 20, "gemini-2.5-flash"))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)

		chapters := got.TokenUsage.Phases[models.PhaseChapters]
		assert.Equal(t, 1500, chapters.InputTokens)
		assert.Equal(t, 2700, chapters.OutputTokens)
		assert.Equal(t, 2, chapters.Calls)
		assert.Equal(t, "gemini-2.5-pro", chapters.Model)

		in, out := got.TokenUsage.Total()
		assert.Equal(t, 1510, in)
		assert.Equal(t, 2720, out)
	})

	t.Run("real cost accumulates and ignores non-positive amounts", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "accountant")

		require.NoError(t, service.AddRealCost(ctx, sess.ID, 0.25))
		require.NoError(t, service.AddRealCost(ctx, sess.ID, 0.50))
		require.NoError(t, service.AddRealCost(ctx, sess.ID, -1))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.InDelta(t, 0.75, got.RealCostEur, 1e-9)
	})

	t.Run("estimated cost is stored separately", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "accountant")

		require.NoError(t, service.SetEstimatedCost(ctx, sess.ID, 1.2))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		require.NotNil(t, got.EstimatedCostEur)
		assert.InDelta(t, 1.2, *got.EstimatedCostEur, 1e-9)
		assert.Zero(t, got.RealCostEur)
	})
}

func TestSessionService_CritiqueAndArtifacts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("critique status walks its states", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "critic")

		require.NoError(t, service.UpdateCritiqueStatus(ctx, sess.ID, novelsession.CritiqueStatusPending, ""))
		require.NoError(t, service.UpdateCritiqueStatus(ctx, sess.ID, novelsession.CritiqueStatusRunning, ""))
		require.NoError(t, service.UpdateCritiqueStatus(ctx, sess.ID, novelsession.CritiqueStatusFailed, "model refused"))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, novelsession.CritiqueStatusFailed, got.CritiqueStatus)
		require.NotNil(t, got.CritiqueError)
		assert.Equal(t, "model refused", *got.CritiqueError)
	})

	t.Run("storing a critique completes the sub-pipeline", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "critic")
		require.NoError(t, service.UpdateCritiqueStatus(ctx, sess.ID, novelsession.CritiqueStatusFailed, "first try failed"))

		critique := models.Critique{
			Score:   7.5,
			Pros:    []string{"atmosfera"},
			Cons:    []string{"ritmo lento"},
			Summary: "Un esordio solido.",
			Model:   "gemini-2.5-pro",
		}
		require.NoError(t, service.UpdateCritique(ctx, sess.ID, critique))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, novelsession.CritiqueStatusCompleted, got.CritiqueStatus)
		assert.Nil(t, got.CritiqueError)
		assert.InDelta(t, 7.5, got.Critique.Score, 1e-9)
		assert.False(t, got.Critique.CreatedAt.IsZero())
	})

	t.Run("artifact paths", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "critic")

		require.NoError(t, service.UpdateCoverImagePath(ctx, sess.ID, "covers/"+sess.ID+"_cover.png"))
		require.NoError(t, service.UpdatePDFPath(ctx, sess.ID, "books/2026-08-25_gemini25_Il_faro.pdf"))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Contains(t, got.CoverImagePath, "_cover.png")
		assert.Contains(t, got.PdfPath, ".pdf")

		assert.True(t, IsValidationError(service.UpdateCoverImagePath(ctx, sess.ID, "")))
		assert.True(t, IsValidationError(service.UpdatePDFPath(ctx, sess.ID, "")))
	})
}
