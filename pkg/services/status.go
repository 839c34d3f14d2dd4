package services

import (
	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/models"
)

// DeriveStatus computes the lifecycle phase of a session from its stored
// sub-documents. Phase is never persisted as a column; every list view,
// filter, and gating check goes through this function.
//
// Completed and paused come straight from the writing loop. Failed means a
// preparation phase failed or the writing loop recorded an error without
// pausing cleanly. Ready means the draft is validated and an outline exists
// but no chapter has been started.
func DeriveStatus(sess *ent.NovelSession) models.SessionStatus {
	wp := sess.WritingProgress

	switch {
	case wp.IsComplete:
		return models.StatusCompleted
	case wp.IsPaused:
		return models.StatusPaused
	case wp.Error != "" ||
		sess.QuestionsProgress.Status == models.ProgressFailed ||
		sess.DraftProgress.Status == models.ProgressFailed ||
		sess.OutlineProgress.Status == models.ProgressFailed:
		return models.StatusFailed
	case sess.WritingStartTime != nil && wp.TotalSteps > 0:
		return models.StatusWriting
	case !sess.Outline.IsEmpty() && sess.Draft.Validated:
		return models.StatusReady
	default:
		return models.StatusDraft
	}
}
