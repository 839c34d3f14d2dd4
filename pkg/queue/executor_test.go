package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/agent"
	"github.com/fabula-ai/fabula/pkg/blob"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/fabula-ai/fabula/pkg/render"
	"github.com/fabula-ai/fabula/pkg/sanitize"
	"github.com/fabula-ai/fabula/pkg/services"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReply is one canned gateway answer.
type scriptedReply struct {
	text string
	err  error
}

func reply(text string) scriptedReply   { return scriptedReply{text: text} }
func replyErr(msg string) scriptedReply { return scriptedReply{err: errors.New(msg)} }

// scriptedGateway feeds the runners from FIFO scripts, one reply per call,
// and records every request. An unscripted call fails loudly.
type scriptedGateway struct {
	mu       sync.Mutex
	text     []scriptedReply
	mm       []scriptedReply
	textReqs []llm.TextRequest
	mmReqs   []llm.MultimodalRequest
}

func (g *scriptedGateway) scriptText(replies ...scriptedReply) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.text = append(g.text, replies...)
}

func (g *scriptedGateway) scriptMM(replies ...scriptedReply) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mm = append(g.mm, replies...)
}

func (g *scriptedGateway) GenerateText(_ context.Context, req llm.TextRequest) (string, llm.Usage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.textReqs = append(g.textReqs, req)
	if len(g.text) == 0 {
		return "", llm.Usage{}, fmt.Errorf("unscripted text call for model %s", req.Model)
	}
	next := g.text[0]
	g.text = g.text[1:]
	return next.text, llm.Usage{InputTokens: 100, OutputTokens: 400, Model: req.Model}, next.err
}

func (g *scriptedGateway) GenerateMultimodal(_ context.Context, req llm.MultimodalRequest) (string, llm.Usage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mmReqs = append(g.mmReqs, req)
	if len(g.mm) == 0 {
		return "", llm.Usage{}, fmt.Errorf("unscripted multimodal call for model %s", req.Model)
	}
	next := g.mm[0]
	g.mm = g.mm[1:]
	return next.text, llm.Usage{InputTokens: 300, OutputTokens: 80, Model: req.Model}, next.err
}

func (g *scriptedGateway) Normalize(model string) string { return model }

func (g *scriptedGateway) AcceptsPDF(string) bool { return true }

// fakeImageGen returns fixed cover bytes and records the requests.
type fakeImageGen struct {
	mu   sync.Mutex
	png  []byte
	err  error
	reqs []llm.ImageRequest
}

func (f *fakeImageGen) GenerateImage(_ context.Context, req llm.ImageRequest) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.png, nil
}

func executorTestConfig() *config.Config {
	return &config.Config{
		Timeouts: &config.TimeoutsConfig{},
		Retry: &config.RetryConfig{
			Questions:         config.RetryPolicy{MaxRetries: 1},
			Draft:             config.RetryPolicy{MaxRetries: 1},
			Outline:           config.RetryPolicy{MaxRetries: 1},
			ChapterGeneration: config.RetryPolicy{MaxRetries: 1, MinChapterLength: 3},
		},
		Critic: &config.CriticConfig{DefaultModel: "gemini-2.5-pro", MaxRetries: 1},
		Models: &config.ModelsConfig{Abbreviations: map[string]string{"gemini-2.5-flash": "g25f"}},
		Cover:  &config.CoverConfig{PrimaryModel: "imagen-4.0", AspectRatio: "3:4"},
	}
}

type executorFixture struct {
	client   *ent.Client
	sessions *services.SessionService
	tasks    *services.TaskService
	gw       *scriptedGateway
	images   *fakeImageGen
	store    blob.Store
	exec     *Executor
}

func newExecutorFixture(t *testing.T) *executorFixture {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	sessions := services.NewSessionService(client)
	users := services.NewUserService(client, config.QuotaConfig{Flash: 3, Pro: 1, Ultra: 1})
	tasks := services.NewTaskService(client)

	cfg := executorTestConfig()
	gw := &scriptedGateway{}
	images := &fakeImageGen{png: []byte("cover-art-bytes")}

	store, err := blob.NewLocal(t.TempDir())
	require.NoError(t, err)

	exec := NewExecutor(
		sessions,
		users,
		agent.NewRunner(gw, cfg),
		images,
		progress.NewCostCalculator(cfg.Cost),
		store,
		nil,
		sanitize.New(cfg.Sanitizer),
		cfg,
	)

	return &executorFixture{
		client:   client,
		sessions: sessions,
		tasks:    tasks,
		gw:       gw,
		images:   images,
		store:    store,
		exec:     exec,
	}
}

// readyQueueSession creates a session with a validated draft and a stored
// three-chapter outline, the state from which writing can start.
func readyQueueSession(ctx context.Context, t *testing.T, client *ent.Client) *ent.NovelSession {
	t.Helper()
	session := createQueueSession(ctx, t, client)
	updated, err := client.NovelSession.UpdateOneID(session.ID).
		SetDraft(models.Draft{
			CurrentTitle:   "La rotta dei relitti",
			CurrentText:    "Un cartografo insegue una costa che scompare dalle sue mappe.",
			CurrentVersion: 1,
			Validated:      true,
		}).
		SetOutline(models.Outline{
			CurrentText: "## Capitolo 1: La mappa sbagliata\n## Capitolo 2: Il faro spento\n## Capitolo 3: L'approdo\n",
			Version:     1,
		}).
		Save(ctx)
	require.NoError(t, err)
	return updated
}

// claimedTask enqueues a task and claims it, the state the worker hands to
// the executor.
func claimedTask(ctx context.Context, t *testing.T, tasks *services.TaskService, sessionID string, kind generationtask.Kind) *ent.GenerationTask {
	t.Helper()
	enqueueTask(ctx, t, tasks, sessionID, kind)
	task, err := tasks.ClaimNextQueued(ctx, "exec-test-pod")
	require.NoError(t, err)
	require.NotNil(t, task)
	require.Equal(t, sessionID, task.SessionID)
	return task
}

func TestExecutorQuestions(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	t.Run("generates and stores the questions", func(t *testing.T) {
		session := createQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindQuestions)

		f.gw.scriptText(reply(`[
			{"text": "Chi è la voce narrante?", "type": "text"},
			{"text": "In quale epoca si svolge la vicenda?", "type": "text"}
		]`))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, got.GeneratedQuestions, 2)
		assert.Equal(t, 1, got.GeneratedQuestions[0].ID)
		assert.Equal(t, "Chi è la voce narrante?", got.GeneratedQuestions[0].Text)
		assert.Equal(t, models.ProgressCompleted, got.QuestionsProgress.Status)
		assert.Equal(t, 100, got.QuestionsProgress.Percent)

		// One call's tokens booked under the questions phase
		usage := got.TokenUsage.Phases[models.PhaseQuestions]
		assert.Equal(t, 100, usage.InputTokens)
		assert.Equal(t, 400, usage.OutputTokens)
		assert.Equal(t, 1, usage.Calls)

		require.NoError(t, f.tasks.Complete(ctx, task.ID))
	})

	t.Run("model failure marks the phase failed", func(t *testing.T) {
		session := createQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindQuestions)

		f.gw.scriptText(replyErr("model unavailable"))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusFailed, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ProgressFailed, got.QuestionsProgress.Status)
		assert.Contains(t, got.QuestionsProgress.Error, "model unavailable")

		require.NoError(t, f.tasks.Fail(ctx, task.ID, "model unavailable"))
	})
}

func TestExecutorDraft(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	t.Run("first draft", func(t *testing.T) {
		session := createQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindDraft)

		f.gw.scriptText(reply("TITOLO: La rotta dei relitti\nTRAMA: Un cartografo insegue una costa che scompare."))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, "La rotta dei relitti", got.Draft.CurrentTitle)
		assert.Equal(t, "Un cartografo insegue una costa che scompare.", got.Draft.CurrentText)
		assert.Equal(t, 1, got.Draft.CurrentVersion)
		assert.Equal(t, models.ProgressCompleted, got.DraftProgress.Status)

		require.NoError(t, f.tasks.Complete(ctx, task.ID))
	})

	t.Run("revision carries the previous text and the stashed feedback", func(t *testing.T) {
		session := createQueueSession(ctx, t, f.client)
		err := f.client.NovelSession.UpdateOneID(session.ID).
			SetDraft(models.Draft{
				CurrentTitle:    "Prima rotta",
				CurrentText:     "prima stesura della trama",
				CurrentVersion:  1,
				PendingFeedback: "più tensione nel finale",
			}).
			Exec(ctx)
		require.NoError(t, err)

		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindDraft)

		before := len(f.gw.textReqs)
		f.gw.scriptText(reply("TITOLO: Seconda rotta\nTRAMA: seconda stesura, più cupa."))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)

		// The revision prompt saw both the old text and the feedback
		require.Len(t, f.gw.textReqs, before+1)
		prompt := f.gw.textReqs[before].User
		assert.Contains(t, prompt, "prima stesura della trama")
		assert.Contains(t, prompt, "più tensione nel finale")

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, "Seconda rotta", got.Draft.CurrentTitle)
		assert.Equal(t, 2, got.Draft.CurrentVersion)
		assert.Empty(t, got.Draft.PendingFeedback, "feedback is consumed by the revision")
		require.Len(t, got.Draft.History, 1)
		assert.Equal(t, "prima stesura della trama", got.Draft.History[0].Text)

		require.NoError(t, f.tasks.Complete(ctx, task.ID))
	})
}

func TestExecutorOutline(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	t.Run("generates and stores the outline", func(t *testing.T) {
		session := createQueueSession(ctx, t, f.client)
		err := f.client.NovelSession.UpdateOneID(session.ID).
			SetDraft(models.Draft{
				CurrentTitle:   "La rotta dei relitti",
				CurrentText:    "Un cartografo insegue una costa che scompare.",
				CurrentVersion: 1,
				Validated:      true,
			}).
			Exec(ctx)
		require.NoError(t, err)

		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindOutline)

		markdown := "## Capitolo 1: La mappa sbagliata\n## Capitolo 2: Il faro spento"
		f.gw.scriptText(reply(markdown))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, markdown, got.Outline.CurrentText)
		assert.Equal(t, 1, got.Outline.Version)
		assert.Equal(t, models.ProgressCompleted, got.OutlineProgress.Status)

		require.NoError(t, f.tasks.Complete(ctx, task.ID))
	})

	t.Run("output without chapter headings fails the phase", func(t *testing.T) {
		session := createQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindOutline)

		f.gw.scriptText(reply("Nessuna struttura, solo prosa continua."))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusFailed, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ProgressFailed, got.OutlineProgress.Status)
		assert.Contains(t, got.OutlineProgress.Error, "no chapter headings")

		require.NoError(t, f.tasks.Fail(ctx, task.ID, "outline has no chapter headings"))
	})
}

func TestExecutorWriting(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	t.Run("writes the book end to end", func(t *testing.T) {
		session := readyQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindWriting)

		before := len(f.gw.textReqs)
		f.gw.scriptText(
			reply("La mappa segnava un'insenatura che nessuna marea aveva mai scavato."),
			reply("Il faro spento guidava comunque chi conosceva il buio della costa."),
			reply("All'approdo la carta e la terra finalmente coincisero sotto i suoi passi."),
		)
		f.gw.scriptMM(reply(`{"score": 8.5, "pros": ["ritmo serrato"], "cons": ["finale rapido"], "summary": "Un esordio solido."}`))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)

		// Writing state
		wp := got.WritingProgress
		assert.True(t, wp.IsComplete)
		assert.False(t, wp.IsPaused)
		assert.Equal(t, 3, wp.TotalSteps)
		assert.Equal(t, 3, wp.CurrentStep)
		assert.Equal(t, 3, wp.CompletedChaptersCount)
		assert.Positive(t, wp.TotalPages)

		// Chapters persisted in order, with the autoregressive window: the
		// second chapter's prompt carried the first chapter's text.
		chapters, err := f.sessions.GetChapters(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, chapters, 3)
		assert.Equal(t, "Capitolo 1: La mappa sbagliata", chapters[0].Title)
		assert.Positive(t, chapters[0].WordCount)
		require.Len(t, f.gw.textReqs, before+3)
		assert.Contains(t, f.gw.textReqs[before+1].User, "nessuna marea aveva mai scavato")

		// The canonical PDF landed in the store under the session's key
		wantKey := blob.BookKey("", render.CanonicalFilename(got.CreatedAt, "g25f", "La rotta dei relitti", session.ID, "pdf"))
		assert.Equal(t, wantKey, got.PdfPath)
		data, err := f.store.Get(ctx, got.PdfPath)
		require.NoError(t, err)
		assert.NotEmpty(t, data)

		// Cover art stored and recorded
		assert.Equal(t, blob.CoverKey("", session.ID), got.CoverImagePath)
		art, err := f.store.Get(ctx, got.CoverImagePath)
		require.NoError(t, err)
		assert.Equal(t, []byte("cover-art-bytes"), art)
		require.Len(t, f.images.reqs, 1)
		assert.Equal(t, "imagen-4.0", f.images.reqs[0].Model)
		assert.Contains(t, f.images.reqs[0].Prompt, "La rotta dei relitti")

		// Critique stored by the same run
		assert.Equal(t, novelsession.CritiqueStatusCompleted, got.CritiqueStatus)
		assert.Equal(t, 8.5, got.Critique.Score)
		assert.Equal(t, "gemini-2.5-pro", got.Critique.Model)

		// Accounting: one run recorded, one timing per chapter, chapter
		// tokens booked per call
		assert.Len(t, got.WritingTimeMinutes, 1)
		assert.Len(t, got.ChapterTimings, 3)
		assert.Equal(t, 3, got.TokenUsage.Phases[models.PhaseChapters].Calls)

		require.NoError(t, f.tasks.Complete(ctx, task.ID))
	})

	t.Run("chapter failure pauses the run, resume keeps the prefix", func(t *testing.T) {
		session := readyQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindWriting)

		firstChapter := "Il primo capitolo arrivò intero prima che il modello cedesse."
		f.gw.scriptText(
			reply(firstChapter),
			replyErr("model overloaded"),
		)

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusFailed, result.Status)
		require.NoError(t, f.tasks.Fail(ctx, task.ID, "model overloaded"))

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, got.WritingProgress.IsPaused)
		assert.Contains(t, got.WritingProgress.Error, "model overloaded")
		assert.Equal(t, 1, got.WritingProgress.CurrentStep, "paused at the chapter that failed")

		chapters, err := f.sessions.GetChapters(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, chapters, 1, "the failed chapter is not saved")

		// Resume: a fresh writing task picks up at step 1 with chapter 1 as
		// context and regenerates only the missing chapters.
		resume := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindWriting)

		before := len(f.gw.textReqs)
		f.gw.scriptText(
			reply("Il secondo capitolo riprese esattamente dove la pausa lo aveva lasciato."),
			reply("Il terzo capitolo chiuse la rotta e la storia con un approdo calmo."),
		)
		f.gw.scriptMM(reply(`{"score": 7.0, "pros": ["coerenza"], "cons": [], "summary": "Ripresa pulita."}`))

		result = f.exec.Execute(ctx, resume)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)
		require.NoError(t, f.tasks.Complete(ctx, resume.ID))

		require.Len(t, f.gw.textReqs, before+2, "only the missing chapters are regenerated")
		assert.Contains(t, f.gw.textReqs[before].User, firstChapter, "resume rebuilds the context from the stored prefix")

		got, err = f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, got.WritingProgress.IsComplete)
		assert.False(t, got.WritingProgress.IsPaused)
		assert.Len(t, got.WritingTimeMinutes, 2, "one entry per run")

		chapters, err = f.sessions.GetChapters(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, chapters, 3)
		assert.Equal(t, firstChapter, chapters[0].Content, "the paid-for prefix is untouched")
	})

	t.Run("a complete book is a no-op", func(t *testing.T) {
		session := readyQueueSession(ctx, t, f.client)
		err := f.client.NovelSession.UpdateOneID(session.ID).
			SetWritingProgress(models.WritingProgress{
				CurrentStep: 3, TotalSteps: 3, IsComplete: true, CompletedChaptersCount: 3,
			}).
			Exec(ctx)
		require.NoError(t, err)

		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindWriting)

		// Nothing scripted: any model call would fail the run
		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)

		require.NoError(t, f.tasks.Complete(ctx, task.ID))
	})

	t.Run("an unvalidated draft is refused", func(t *testing.T) {
		session := createQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindWriting)

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusFailed, result.Status)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "not validated")

		require.NoError(t, f.tasks.Fail(ctx, task.ID, result.Error.Error()))
	})
}

func TestExecutorCritique(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	// completedBook fabricates a finished three-chapter session.
	completedBook := func(t *testing.T) *ent.NovelSession {
		t.Helper()
		session := readyQueueSession(ctx, t, f.client)
		titles := []string{"Capitolo 1: La mappa sbagliata", "Capitolo 2: Il faro spento", "Capitolo 3: L'approdo"}
		for i, title := range titles {
			_, err := f.sessions.SaveChapter(ctx, session.ID, i, title,
				fmt.Sprintf("Testo completo del capitolo %d, con parole a sufficienza per il conteggio.", i+1))
			require.NoError(t, err)
		}
		err := f.client.NovelSession.UpdateOneID(session.ID).
			SetWritingProgress(models.WritingProgress{
				CurrentStep: 3, TotalSteps: 3, IsComplete: true, CompletedChaptersCount: 3,
			}).
			Exec(ctx)
		require.NoError(t, err)
		return session
	}

	t.Run("re-renders the book and stores the verdict", func(t *testing.T) {
		session := completedBook(t)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindCritique)

		before := len(f.gw.mmReqs)
		f.gw.scriptMM(reply(`{"score": 7.5, "pros": ["ambientazione"], "cons": ["dialoghi"], "summary": "Riuscito a metà."}`))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusCompleted, result.Status)

		// The critic received a freshly rendered PDF
		require.Len(t, f.gw.mmReqs, before+1)
		req := f.gw.mmReqs[before]
		require.Len(t, req.Parts, 1)
		assert.Equal(t, "application/pdf", req.Parts[0].MIME)
		assert.NotEmpty(t, req.Parts[0].Data)
		assert.Contains(t, req.User, "La rotta dei relitti")

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, novelsession.CritiqueStatusCompleted, got.CritiqueStatus)
		assert.Equal(t, 7.5, got.Critique.Score)
		assert.Nil(t, got.CritiqueError)

		require.NoError(t, f.tasks.Complete(ctx, task.ID))
	})

	t.Run("an unfinished book is refused", func(t *testing.T) {
		session := readyQueueSession(ctx, t, f.client)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindCritique)

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusFailed, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, novelsession.CritiqueStatusFailed, got.CritiqueStatus)
		require.NotNil(t, got.CritiqueError)
		assert.Contains(t, *got.CritiqueError, "completed book")

		require.NoError(t, f.tasks.Fail(ctx, task.ID, "critique requires a completed book"))
	})

	t.Run("model failure records the failure, never a placeholder verdict", func(t *testing.T) {
		session := completedBook(t)
		task := claimedTask(ctx, t, f.tasks, session.ID, generationtask.KindCritique)

		f.gw.scriptMM(replyErr("critic offline"))

		result := f.exec.Execute(ctx, task)
		require.NotNil(t, result)
		assert.Equal(t, generationtask.StatusFailed, result.Status)

		got, err := f.client.NovelSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, novelsession.CritiqueStatusFailed, got.CritiqueStatus)
		require.NotNil(t, got.CritiqueError)
		assert.Contains(t, *got.CritiqueError, "critic offline")
		assert.Zero(t, got.Critique.Score)

		require.NoError(t, f.tasks.Fail(ctx, task.ID, "critic offline"))
	})
}
