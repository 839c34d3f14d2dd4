package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/google/uuid"
)

// StartWriting initializes the chapter loop bookkeeping. A fresh start seeds
// writing_progress; a resume keeps the completed prefix and clears the pause
// flag and error. Either way the start mark of the current run is set, so
// writing_time_minutes entries never include time spent paused.
func (s *SessionService) StartWriting(ctx context.Context, sessionID string, totalSteps int, sectionName string) (*models.WritingProgress, error) {
	if totalSteps <= 0 {
		return nil, NewValidationError("total_steps", "must be positive")
	}

	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}

	wp := session.WritingProgress
	if wp.IsComplete {
		return nil, fmt.Errorf("writing already complete: %w", ErrPreconditionFailed)
	}

	if wp.TotalSteps == 0 {
		wp = models.WritingProgress{
			CurrentStep:        0,
			TotalSteps:         totalSteps,
			CurrentSectionName: sectionName,
		}
	} else {
		// Resume: the outline may have been rewritten with allow_if_writing,
		// so the step count is taken from the caller's fresh parse.
		wp.TotalSteps = totalSteps
		wp.CurrentSectionName = sectionName
		wp.IsPaused = false
		wp.Error = ""
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetWritingProgress(wp).
		SetWritingStartTime(time.Now()).
		ClearChapterStartTime().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to start writing: %w", err)
	}

	return &wp, nil
}

// UpdateWritingProgress merges a patch into writing_progress. Unset patch
// fields leave the stored values alone.
func (s *SessionService) UpdateWritingProgress(ctx context.Context, sessionID string, patch models.WritingProgressPatch) (*models.WritingProgress, error) {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}

	wp := session.WritingProgress
	patch.Apply(&wp)

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetWritingProgress(wp).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update writing progress: %w", err)
	}

	return &wp, nil
}

// PauseWriting marks the loop paused with the failure that stopped it. The
// open chapter timing mark is discarded, never recorded, and the elapsed
// minutes of the run are appended so paused gaps don't count as writing
// time. Runs entirely on a background context: pauses happen on shutdown
// paths where the caller's context is already cancelled.
func (s *SessionService) PauseWriting(ctx context.Context, sessionID, errMsg string) error {
	opCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.GetSession(opCtx, sessionID, false)
	if err != nil {
		return err
	}

	wp := session.WritingProgress
	alreadyPaused := wp.IsPaused
	wp.IsPaused = true
	wp.Error = errMsg

	update := s.client.NovelSession.UpdateOneID(sessionID).
		SetWritingProgress(wp).
		ClearChapterStartTime()

	if !alreadyPaused && session.WritingStartTime != nil && session.WritingEndTime == nil {
		minutes := time.Since(*session.WritingStartTime).Minutes()
		update.SetWritingTimeMinutes(append(session.WritingTimeMinutes, minutes))
	}

	if err := update.Exec(opCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to pause writing: %w", err)
	}

	return nil
}

// ResumeWriting clears the pause flag and error, preserving the rest of the
// progress so the loop continues from the first unwritten chapter
func (s *SessionService) ResumeWriting(ctx context.Context, sessionID string) error {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	wp := session.WritingProgress
	wp.IsPaused = false
	wp.Error = ""

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetWritingProgress(wp).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to resume writing: %w", err)
	}

	return nil
}

// StartChapterTiming opens the timing mark for the chapter in flight
func (s *SessionService) StartChapterTiming(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		SetChapterStartTime(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to start chapter timing: %w", err)
	}

	return nil
}

// EndChapterTiming closes the open timing mark and appends the elapsed
// seconds to chapter_timings. Without an open mark it is a no-op, which is
// what makes resumed chapters safe to re-time.
func (s *SessionService) EndChapterTiming(ctx context.Context, sessionID string) (float64, error) {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return 0, err
	}

	if session.ChapterStartTime == nil {
		return 0, nil
	}
	seconds := time.Since(*session.ChapterStartTime).Seconds()

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetChapterTimings(append(session.ChapterTimings, seconds)).
		ClearChapterStartTime().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to end chapter timing: %w", err)
	}

	return seconds, nil
}

// CompleteWriting marks the loop finished and closes out the run's time
// accounting. Runs entirely on a background context, same as PauseWriting.
func (s *SessionService) CompleteWriting(ctx context.Context, sessionID string) error {
	opCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.GetSession(opCtx, sessionID, false)
	if err != nil {
		return err
	}

	wp := session.WritingProgress
	wp.IsComplete = true
	wp.IsPaused = false
	wp.Error = ""
	wp.CurrentStep = wp.TotalSteps
	wp.CompletedChaptersCount = wp.TotalSteps

	now := time.Now()
	update := s.client.NovelSession.UpdateOneID(sessionID).
		SetWritingProgress(wp).
		SetWritingEndTime(now).
		ClearChapterStartTime()

	if session.WritingStartTime != nil {
		minutes := now.Sub(*session.WritingStartTime).Minutes()
		update.SetWritingTimeMinutes(append(session.WritingTimeMinutes, minutes))
	}

	if err := update.Exec(opCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete writing: %w", err)
	}

	return nil
}

// SaveChapter upserts one finished chapter by its outline position. A rerun
// of the same step overwrites the previous text rather than duplicating it.
func (s *SessionService) SaveChapter(ctx context.Context, sessionID string, sectionIndex int, title, content string) (*ent.Chapter, error) {
	if sectionIndex < 0 {
		return nil, NewValidationError("section_index", "must be non-negative")
	}
	if title == "" {
		return nil, NewValidationError("title", "required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "required")
	}

	wordCount := len(strings.Fields(content))

	existing, err := s.client.Chapter.Query().
		Where(
			chapter.SessionIDEQ(sessionID),
			chapter.SectionIndexEQ(sectionIndex),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query chapter: %w", err)
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if existing != nil {
		updated, err := existing.Update().
			SetTitle(title).
			SetContent(content).
			SetWordCount(wordCount).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update chapter: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.Chapter.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetSectionIndex(sectionIndex).
		SetTitle(title).
		SetContent(content).
		SetWordCount(wordCount).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// FK violation: the session is gone
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}

	return created, nil
}

// GetChapters returns the finished chapters of a session in reading order
func (s *SessionService) GetChapters(ctx context.Context, sessionID string) ([]*ent.Chapter, error) {
	chapters, err := s.client.Chapter.Query().
		Where(chapter.SessionIDEQ(sessionID)).
		Order(ent.Asc(chapter.FieldSectionIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}

	return chapters, nil
}

// ChapterContents converts chapter rows into the wire shape used by the
// renderer and the page estimator.
func ChapterContents(chapters []*ent.Chapter) []models.ChapterContent {
	out := make([]models.ChapterContent, len(chapters))
	for i, ch := range chapters {
		out[i] = models.ChapterContent{
			SectionIndex: ch.SectionIndex,
			Title:        ch.Title,
			Content:      ch.Content,
			WordCount:    ch.WordCount,
		}
	}
	return out
}

// GetChapter returns one chapter by outline position
func (s *SessionService) GetChapter(ctx context.Context, sessionID string, sectionIndex int) (*ent.Chapter, error) {
	ch, err := s.client.Chapter.Query().
		Where(
			chapter.SessionIDEQ(sessionID),
			chapter.SectionIndexEQ(sectionIndex),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}

	return ch, nil
}
