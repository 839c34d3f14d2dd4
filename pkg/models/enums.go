// Package models defines the wire and storage types shared across the
// service, queue, and API layers.
package models

import (
	"fmt"
	"strings"
)

// Mode selects the generation quality tier. Each tier maps to a concrete
// model ID via configuration and to its own weekly credit pool.
type Mode string

const (
	ModeFlash Mode = "flash"
	ModePro   Mode = "pro"
	ModeUltra Mode = "ultra"
)

// Label returns the user-facing tier name shown in library views.
func (m Mode) Label() string {
	switch m {
	case ModeFlash:
		return "Flash"
	case ModePro:
		return "Pro"
	case ModeUltra:
		return "Ultra"
	}
	return string(m)
}

// ParseMode validates a tier string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFlash, ModePro, ModeUltra:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// ModeOfModel classifies a stored llm_model value, tier alias or concrete
// model ID, into its credit tier. Unrecognized models count as pro.
func ModeOfModel(llmModel string) Mode {
	m := strings.ToLower(strings.TrimSpace(llmModel))
	if mode, err := ParseMode(m); err == nil {
		return mode
	}
	switch {
	case strings.Contains(m, "flash"):
		return ModeFlash
	case strings.Contains(m, "ultra"):
		return ModeUltra
	}
	return ModePro
}

// SessionStatus is the DERIVED lifecycle phase of a session. It is never
// stored; DeriveStatus computes it from the progress sub-documents.
type SessionStatus string

const (
	StatusDraft     SessionStatus = "draft"
	StatusReady     SessionStatus = "ready"
	StatusWriting   SessionStatus = "writing"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
	StatusFailed    SessionStatus = "failed"
)

// ProgressStatus tracks a preparation phase (questions, draft, outline).
type ProgressStatus string

const (
	ProgressPending   ProgressStatus = "pending"
	ProgressRunning   ProgressStatus = "running"
	ProgressCompleted ProgressStatus = "completed"
	ProgressFailed    ProgressStatus = "failed"
)

// Token usage phase keys. Chapters accumulate under a single key across the
// whole writing loop.
const (
	PhaseQuestions = "questions"
	PhaseDraft     = "draft"
	PhaseOutline   = "outline"
	PhaseChapters  = "chapters"
	PhaseCritique  = "critique"
)

// DeletedUserName is rendered in place of an anonymized user's display name.
const DeletedUserName = "[DELETED]"
