package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/pkg/agent"
	"github.com/fabula-ai/fabula/pkg/blob"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/notify"
	"github.com/fabula-ai/fabula/pkg/render"
	"github.com/fabula-ai/fabula/pkg/services"
)

// executeWriting drives the chapter loop: one model call per outline
// section, each fed the full text of everything written so far. Chapter
// writes are strictly ordered; a failure pauses the session at the current
// step and the task exits, so a resume regenerates exactly that chapter.
func (e *Executor) executeWriting(ctx context.Context, log *slog.Logger, session *ent.NovelSession) *ExecutionResult {
	// The gate in GenerationService checked these at enqueue time; state
	// may have moved while the task sat in the queue.
	if !session.Draft.Validated {
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: fmt.Errorf("draft is not validated")}
	}
	if session.Outline.IsEmpty() {
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: fmt.Errorf("outline is empty")}
	}
	if session.WritingProgress.IsComplete {
		log.Info("Book already complete, nothing to write")
		return &ExecutionResult{Status: generationtask.StatusCompleted}
	}

	sections := agent.ParseSections(session.Outline.CurrentText)
	if len(sections) == 0 {
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: fmt.Errorf("outline has no chapter headings")}
	}
	total := len(sections)

	startStep := session.WritingProgress.CurrentStep
	if startStep < 0 {
		startStep = 0
	}
	if startStep > total {
		startStep = total
	}
	nameIdx := startStep
	if nameIdx == total {
		nameIdx = total - 1
	}

	if _, err := e.sessions.StartWriting(ctx, session.ID, total, sections[nameIdx].Title); err != nil {
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: fmt.Errorf("initializing writing run: %w", err)}
	}
	log.Info("Writing run started", "from_step", startStep, "total_steps", total)

	// Autoregressive context: every chapter sees the full text of all the
	// previous ones. Rows at or past the start step are leftovers of an
	// older run and stay out of the window until rewritten.
	stored, err := e.sessions.GetChapters(ctx, session.ID)
	if err != nil {
		return e.pauseAndExit(log, session.ID, err.Error(), generationtask.StatusFailed, err)
	}
	previous := make([]models.ChapterContent, 0, total)
	for _, ch := range stored {
		if ch.SectionIndex < startStep {
			previous = append(previous, models.ChapterContent{
				SectionIndex: ch.SectionIndex,
				Title:        ch.Title,
				Content:      ch.Content,
			})
		}
	}

	for k := startStep; k < total; k++ {
		// Cancellation is cooperative and observed at chapter boundaries
		if ctx.Err() != nil {
			return e.interrupted(ctx, log, session.ID)
		}

		section := sections[k]
		step := k
		if _, err := e.sessions.UpdateWritingProgress(ctx, session.ID, models.WritingProgressPatch{
			CurrentStep:        &step,
			CurrentSectionName: &section.Title,
		}); err != nil {
			return e.pauseAndExit(log, session.ID, err.Error(), generationtask.StatusFailed, err)
		}
		if err := e.sessions.StartChapterTiming(ctx, session.ID); err != nil {
			log.Warn("Failed to mark chapter start", "step", k, "error", err)
		}

		chapterCtx, cancelChapter := context.WithTimeout(ctx, e.cfg.Timeouts.Chapter())
		text, usage, err := e.runner.Chapter(chapterCtx, agent.ChapterInput{
			Form:          session.FormData,
			Questions:     session.GeneratedQuestions,
			Answers:       session.QuestionAnswers,
			Draft:         session.Draft,
			Outline:       session.Outline.CurrentText,
			SectionIndex:  k,
			SectionTitle:  section.Title,
			TotalSections: total,
			Previous:      previous,
			Model:         session.LlmModel,
		})
		cancelChapter()
		e.recordUsage(session.ID, models.PhaseChapters, usage)
		if err != nil {
			// Partial output is discarded; a resume regenerates this
			// chapter from scratch.
			if ctx.Err() != nil {
				return e.interrupted(ctx, log, session.ID)
			}
			return e.pauseAndExit(log, session.ID, err.Error(), generationtask.StatusFailed, err)
		}

		if _, err := e.sessions.SaveChapter(ctx, session.ID, k, section.Title, text); err != nil {
			return e.pauseAndExit(log, session.ID, err.Error(), generationtask.StatusFailed, err)
		}
		if _, err := e.sessions.EndChapterTiming(ctx, session.ID); err != nil {
			log.Warn("Failed to record chapter timing", "step", k, "error", err)
		}

		previous = append(previous, models.ChapterContent{
			SectionIndex: k,
			Title:        section.Title,
			Content:      text,
		})
		log.Info("Chapter written", "step", k+1, "total", total, "section", section.Title)
	}

	if err := e.sessions.CompleteWriting(ctx, session.ID); err != nil {
		// All chapters are saved; a resume runs an empty loop and retries
		// just this finalization.
		return e.pauseAndExit(log, session.ID, err.Error(), generationtask.StatusFailed, err)
	}
	log.Info("Book complete", "chapters", total)

	e.coverStage(ctx, log, session)

	pdfBytes, err := e.publishBook(ctx, log, session)
	if err != nil {
		// The text is complete and safe; only the artifact pipeline failed.
		// A critique re-run re-renders from the stored chapters.
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: err}
	}

	if err := e.runCritique(ctx, log, session, pdfBytes); err != nil {
		// critique_status already records the failure; the book itself
		// shipped, so the task did its job.
		log.Warn("Critique failed", "error", err)
	}

	return &ExecutionResult{Status: generationtask.StatusCompleted}
}

// interrupted pauses the session when the task context dies at a chapter
// boundary.
func (e *Executor) interrupted(ctx context.Context, log *slog.Logger, sessionID string) *ExecutionResult {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err := fmt.Errorf("writing run hit the task deadline")
		return e.pauseAndExit(log, sessionID, err.Error(), generationtask.StatusFailed, err)
	}
	return e.pauseAndExit(log, sessionID, "cancelled", generationtask.StatusCancelled, context.Canceled)
}

// pauseAndExit pauses the session and hands back the terminal task status.
// The pause write runs on a background context: it must land even when the
// task context is already dead.
func (e *Executor) pauseAndExit(log *slog.Logger, sessionID, reason string, status generationtask.Status, cause error) *ExecutionResult {
	pauseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.sessions.PauseWriting(pauseCtx, sessionID, reason); err != nil {
		log.Error("Failed to pause session", "error", err)
	}
	log.Info("Writing run paused", "reason", reason)
	return &ExecutionResult{Status: status, Error: cause}
}

// publishBook renders the finished book, stores the canonical PDF, records
// path and page count, and tells the owner. The returned bytes feed the
// critique stage so the book is laid out exactly once.
func (e *Executor) publishBook(ctx context.Context, log *slog.Logger, session *ent.NovelSession) ([]byte, error) {
	chapters, err := e.sessions.GetChapters(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("loading chapters: %w", err)
	}

	pdf := render.NewPDF()
	book := render.Book{
		SessionID: session.ID,
		Title:     session.Draft.CurrentTitle,
		Author:    e.authorFor(ctx, session),
		Genre:     session.Genre,
		Chapters:  services.ChapterContents(chapters),
		CreatedAt: session.CreatedAt,
	}
	data, err := pdf.Render(book)
	if err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	pages, err := render.ValidatePDF(data)
	if err != nil {
		return nil, fmt.Errorf("validating pdf: %w", err)
	}

	filename := render.CanonicalFilename(session.CreatedAt, e.cfg.Models.Abbreviation(session.LlmModel), book.Title, session.ID, pdf.Extension())
	key := blob.BookKey(session.UserID, filename)
	if err := e.store.Put(ctx, key, data, pdf.ContentType()); err != nil {
		return nil, fmt.Errorf("storing pdf: %w", err)
	}

	if err := e.sessions.UpdatePDFPath(ctx, session.ID, key); err != nil {
		return nil, fmt.Errorf("recording pdf path: %w", err)
	}
	if _, err := e.sessions.UpdateWritingProgress(ctx, session.ID, models.WritingProgressPatch{TotalPages: &pages}); err != nil {
		log.Warn("Failed to record page count", "error", err)
	}

	e.notifier.NotifyBookCompleted(ctx, notify.BookCompletedInput{
		UserID:    session.UserID,
		Email:     e.ownerEmail(ctx, session),
		SessionID: session.ID,
		Title:     book.Title,
		Pages:     pages,
	})

	log.Info("Book published", "key", key, "pages", pages)
	return data, nil
}

// coverStage generates and stores the cover art. Non-fatal: any failure
// logs and the book ships without it.
func (e *Executor) coverStage(ctx context.Context, log *slog.Logger, session *ent.NovelSession) {
	if e.images == nil || e.cfg.Cover == nil {
		return
	}

	plot := session.Draft.CurrentText
	if e.sanitizer != nil {
		plot = e.sanitizer.Clean(plot)
	}
	var configured config.PromptPair
	if e.cfg.Prompts != nil {
		configured = e.cfg.Prompts.Cover
	}
	prompt, err := agent.CoverPrompt(configured, agent.CoverPromptInput{
		Title: session.Draft.CurrentTitle,
		Genre: session.Genre,
		Plot:  plot,
	})
	if err != nil {
		log.Warn("Cover prompt failed", "error", err)
		return
	}

	coverCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeouts.Cover())
	defer cancel()

	png, err := e.generateCover(coverCtx, log, prompt)
	if err != nil {
		log.Warn("Cover generation failed, shipping without art", "error", err)
		return
	}

	key := blob.CoverKey(session.UserID, session.ID)
	if err := e.store.Put(ctx, key, png, "image/png"); err != nil {
		log.Warn("Cover upload failed", "error", err)
		return
	}
	if err := e.sessions.UpdateCoverImagePath(ctx, session.ID, key); err != nil {
		log.Warn("Failed to store cover path", "error", err)
		return
	}
	log.Info("Cover stored", "key", key)
}

// generateCover tries the primary image model, then the configured
// fallback. The fallback may live in another provider family.
func (e *Executor) generateCover(ctx context.Context, log *slog.Logger, prompt string) ([]byte, error) {
	cover := e.cfg.Cover

	png, err := e.images.GenerateImage(ctx, llm.ImageRequest{
		Prompt:      prompt,
		Model:       cover.PrimaryModel,
		AspectRatio: cover.AspectRatio,
		ImageSize:   cover.ImageSize,
	})
	if err == nil {
		return png, nil
	}
	if cover.FallbackModel == "" || cover.FallbackModel == cover.PrimaryModel {
		return nil, err
	}

	log.Warn("Primary cover model failed, trying fallback",
		"model", cover.PrimaryModel, "fallback", cover.FallbackModel, "error", err)
	return e.images.GenerateImage(ctx, llm.ImageRequest{
		Prompt:      prompt,
		Model:       cover.FallbackModel,
		AspectRatio: cover.AspectRatio,
		ImageSize:   cover.ImageSize,
	})
}
