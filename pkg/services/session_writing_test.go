package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/pkg/models"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_StartWriting(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("fresh start seeds the progress", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		makeSessionReady(t, client.Client, sess.ID)

		wp, err := service.StartWriting(ctx, sess.ID, 3, "Capitolo 1")
		require.NoError(t, err)
		assert.Equal(t, 0, wp.CurrentStep)
		assert.Equal(t, 3, wp.TotalSteps)
		assert.Equal(t, "Capitolo 1", wp.CurrentSectionName)
		assert.False(t, wp.IsPaused)

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		require.NotNil(t, got.WritingStartTime)
		assert.Equal(t, models.StatusWriting, DeriveStatus(got))
	})

	t.Run("resume keeps the completed prefix", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		makeSessionReady(t, client.Client, sess.ID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetWritingProgress(models.WritingProgress{
				CurrentStep:        2,
				TotalSteps:         3,
				CurrentSectionName: "Capitolo 3",
				IsPaused:           true,
				Error:              "llm call failed",
			}).
			SetWritingStartTime(time.Now().Add(-time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		wp, err := service.StartWriting(ctx, sess.ID, 4, "Capitolo 3 rivisto")
		require.NoError(t, err)
		assert.Equal(t, 2, wp.CurrentStep)
		assert.Equal(t, 4, wp.TotalSteps)
		assert.Equal(t, "Capitolo 3 rivisto", wp.CurrentSectionName)
		assert.False(t, wp.IsPaused)
		assert.Empty(t, wp.Error)

		// The run start is re-marked so paused time never counts
		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), *got.WritingStartTime, 5*time.Second)
	})

	t.Run("rejects a completed session", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		makeSessionCompleted(t, client.Client, sess.ID)

		_, err := service.StartWriting(ctx, sess.ID, 3, "Capitolo 1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPreconditionFailed))
	})

	t.Run("rejects non-positive steps", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		_, err := service.StartWriting(ctx, sess.ID, 0, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_UpdateWritingProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client.Client, "writer")
	makeSessionReady(t, client.Client, sess.ID)
	_, err := service.StartWriting(ctx, sess.ID, 3, "Capitolo 1")
	require.NoError(t, err)

	step := 1
	section := "Capitolo 2"
	wp, err := service.UpdateWritingProgress(ctx, sess.ID, models.WritingProgressPatch{
		CurrentStep:        &step,
		CurrentSectionName: &section,
	})
	require.NoError(t, err)

	// Patched fields move, the rest stay
	assert.Equal(t, 1, wp.CurrentStep)
	assert.Equal(t, "Capitolo 2", wp.CurrentSectionName)
	assert.Equal(t, 3, wp.TotalSteps)
	assert.False(t, wp.IsComplete)

	pages := 120
	wp, err = service.UpdateWritingProgress(ctx, sess.ID, models.WritingProgressPatch{TotalPages: &pages})
	require.NoError(t, err)
	assert.Equal(t, 120, wp.TotalPages)
	assert.Equal(t, 1, wp.CurrentStep)
}

func TestSessionService_PauseAndResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("pause records the failure and stops the clocks", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		makeSessionReady(t, client.Client, sess.ID)
		_, err := service.StartWriting(ctx, sess.ID, 3, "Capitolo 1")
		require.NoError(t, err)
		require.NoError(t, service.StartChapterTiming(ctx, sess.ID))

		require.NoError(t, service.PauseWriting(ctx, sess.ID, "chapter generation failed"))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.True(t, got.WritingProgress.IsPaused)
		assert.Equal(t, "chapter generation failed", got.WritingProgress.Error)
		assert.Equal(t, models.StatusPaused, DeriveStatus(got))
		// The in-flight chapter mark is discarded, never timed
		assert.Nil(t, got.ChapterStartTime)
		assert.Empty(t, got.ChapterTimings)
		// The run's minutes are closed out
		assert.Len(t, got.WritingTimeMinutes, 1)
	})

	t.Run("double pause does not double-count the run", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		makeSessionReady(t, client.Client, sess.ID)
		_, err := service.StartWriting(ctx, sess.ID, 3, "Capitolo 1")
		require.NoError(t, err)

		require.NoError(t, service.PauseWriting(ctx, sess.ID, "first failure"))
		require.NoError(t, service.PauseWriting(ctx, sess.ID, "orphaned"))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "orphaned", got.WritingProgress.Error)
		assert.Len(t, got.WritingTimeMinutes, 1)
	})

	t.Run("resume clears only the pause state", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "writer")
		makeSessionReady(t, client.Client, sess.ID)
		_, err := service.StartWriting(ctx, sess.ID, 3, "Capitolo 1")
		require.NoError(t, err)
		require.NoError(t, service.PauseWriting(ctx, sess.ID, "failed"))

		require.NoError(t, service.ResumeWriting(ctx, sess.ID))

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.False(t, got.WritingProgress.IsPaused)
		assert.Empty(t, got.WritingProgress.Error)
		assert.Equal(t, 3, got.WritingProgress.TotalSteps)
	})
}

func TestSessionService_ChapterTiming(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("times a chapter between marks", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "timer")

		require.NoError(t, service.StartChapterTiming(ctx, sess.ID))
		time.Sleep(20 * time.Millisecond)
		seconds, err := service.EndChapterTiming(ctx, sess.ID)
		require.NoError(t, err)
		assert.Greater(t, seconds, 0.0)

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		require.Len(t, got.ChapterTimings, 1)
		assert.Nil(t, got.ChapterStartTime)
	})

	t.Run("end without an open mark is a no-op", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "timer")

		seconds, err := service.EndChapterTiming(ctx, sess.ID)
		require.NoError(t, err)
		assert.Zero(t, seconds)

		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Empty(t, got.ChapterTimings)
	})
}

func TestSessionService_CompleteWriting(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client.Client, "finisher")
	makeSessionReady(t, client.Client, sess.ID)
	_, err := service.StartWriting(ctx, sess.ID, 3, "Capitolo 1")
	require.NoError(t, err)

	require.NoError(t, service.CompleteWriting(ctx, sess.ID))

	got, err := service.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.True(t, got.WritingProgress.IsComplete)
	assert.Equal(t, 3, got.WritingProgress.CurrentStep)
	assert.Equal(t, 3, got.WritingProgress.CompletedChaptersCount)
	require.NotNil(t, got.WritingEndTime)
	assert.Len(t, got.WritingTimeMinutes, 1)
	assert.Equal(t, models.StatusCompleted, DeriveStatus(got))
}

func TestSessionService_SaveChapter(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates then overwrites by section index", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "chapters")

		ch, err := service.SaveChapter(ctx, sess.ID, 0, "Capitolo 1", "uno due tre")
		require.NoError(t, err)
		assert.Equal(t, 3, ch.WordCount)

		ch, err = service.SaveChapter(ctx, sess.ID, 0, "Capitolo 1 riscritto", "uno due tre quattro cinque")
		require.NoError(t, err)
		assert.Equal(t, "Capitolo 1 riscritto", ch.Title)
		assert.Equal(t, 5, ch.WordCount)

		chapters, err := service.GetChapters(ctx, sess.ID)
		require.NoError(t, err)
		assert.Len(t, chapters, 1)
	})

	t.Run("orders chapters by position", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "chapters")
		for _, idx := range []int{2, 0, 1} {
			_, err := service.SaveChapter(ctx, sess.ID, idx, "Capitolo", "testo")
			require.NoError(t, err)
		}

		chapters, err := service.GetChapters(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, chapters, 3)
		for i, ch := range chapters {
			assert.Equal(t, i, ch.SectionIndex)
		}
	})

	t.Run("validates input", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "chapters")

		_, err := service.SaveChapter(ctx, sess.ID, -1, "T", "testo")
		assert.True(t, IsValidationError(err))
		_, err = service.SaveChapter(ctx, sess.ID, 0, "", "testo")
		assert.True(t, IsValidationError(err))
		_, err = service.SaveChapter(ctx, sess.ID, 0, "T", "  ")
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := service.SaveChapter(ctx, "nonexistent", 0, "T", "testo")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("fetches one chapter by position", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "chapters")
		_, err := service.SaveChapter(ctx, sess.ID, 1, "Capitolo 2", "testo")
		require.NoError(t, err)

		ch, err := service.GetChapter(ctx, sess.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "Capitolo 2", ch.Title)

		_, err = service.GetChapter(ctx, sess.ID, 9)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("converts rows to renderer content", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "chapters")
		_, err := service.SaveChapter(ctx, sess.ID, 0, "Il relitto", "il mare restituiva legni anneriti")
		require.NoError(t, err)

		rows, err := service.GetChapters(ctx, sess.ID)
		require.NoError(t, err)

		contents := ChapterContents(rows)
		require.Len(t, contents, 1)
		assert.Equal(t, 0, contents[0].SectionIndex)
		assert.Equal(t, "Il relitto", contents[0].Title)
		assert.Equal(t, "il mare restituiva legni anneriti", contents[0].Content)
		assert.Equal(t, 5, contents[0].WordCount)
	})
}
