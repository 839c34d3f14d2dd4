package services

import (
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	started := time.Now().Add(-10 * time.Minute)

	tests := []struct {
		name string
		sess *ent.NovelSession
		want models.SessionStatus
	}{
		{
			name: "fresh session is draft",
			sess: &ent.NovelSession{},
			want: models.StatusDraft,
		},
		{
			name: "unvalidated draft is still draft",
			sess: &ent.NovelSession{
				Draft: models.Draft{CurrentText: "TRAMA: x", CurrentVersion: 1},
			},
			want: models.StatusDraft,
		},
		{
			name: "outline without validated draft is still draft",
			sess: &ent.NovelSession{
				Draft:   models.Draft{CurrentText: "x", CurrentVersion: 1},
				Outline: models.Outline{CurrentText: "## C1", Version: 1},
			},
			want: models.StatusDraft,
		},
		{
			name: "validated draft plus outline is ready",
			sess: &ent.NovelSession{
				Draft:   models.Draft{CurrentText: "x", CurrentVersion: 1, Validated: true},
				Outline: models.Outline{CurrentText: "## C1", Version: 1},
			},
			want: models.StatusReady,
		},
		{
			name: "started loop is writing",
			sess: &ent.NovelSession{
				Draft:            models.Draft{CurrentText: "x", CurrentVersion: 1, Validated: true},
				Outline:          models.Outline{CurrentText: "## C1", Version: 1},
				WritingStartTime: &started,
				WritingProgress:  models.WritingProgress{CurrentStep: 1, TotalSteps: 3},
			},
			want: models.StatusWriting,
		},
		{
			name: "paused loop is paused",
			sess: &ent.NovelSession{
				WritingStartTime: &started,
				WritingProgress: models.WritingProgress{
					CurrentStep: 1, TotalSteps: 3, IsPaused: true, Error: "llm call failed",
				},
			},
			want: models.StatusPaused,
		},
		{
			name: "error without a clean pause is failed",
			sess: &ent.NovelSession{
				WritingStartTime: &started,
				WritingProgress: models.WritingProgress{
					CurrentStep: 1, TotalSteps: 3, Error: "worker crashed",
				},
			},
			want: models.StatusFailed,
		},
		{
			name: "failed preparation phase is failed",
			sess: &ent.NovelSession{
				DraftProgress: models.PhaseProgress{Status: models.ProgressFailed, Error: "timeout"},
			},
			want: models.StatusFailed,
		},
		{
			name: "complete loop is completed",
			sess: &ent.NovelSession{
				WritingStartTime: &started,
				WritingProgress: models.WritingProgress{
					CurrentStep: 3, TotalSteps: 3, IsComplete: true,
				},
			},
			want: models.StatusCompleted,
		},
		{
			name: "complete wins over stale pause flag",
			sess: &ent.NovelSession{
				WritingProgress: models.WritingProgress{
					CurrentStep: 3, TotalSteps: 3, IsComplete: true, IsPaused: true,
				},
			},
			want: models.StatusCompleted,
		},
		{
			name: "pause wins over the recorded error",
			sess: &ent.NovelSession{
				WritingProgress: models.WritingProgress{
					CurrentStep: 2, TotalSteps: 3, IsPaused: true, Error: "chapter 3 failed",
				},
			},
			want: models.StatusPaused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.sess))
		})
	}
}
