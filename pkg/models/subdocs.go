package models

import "time"

// QuestionType is the answer widget a generated question expects.
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionMultipleChoice QuestionType = "multiple_choice"
)

// Question is one clarifying question generated from the intake form.
// IDs are stable sequential integers so answers can reference them.
type Question struct {
	ID      int          `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// Draft holds the evolving plot draft. Prior revisions are kept so a user
// can compare regenerations before validating.
type Draft struct {
	CurrentText    string          `json:"current_text"`
	CurrentTitle   string          `json:"current_title"`
	CurrentVersion int             `json:"current_version"`
	History        []DraftRevision `json:"history,omitempty"`
	Validated      bool            `json:"validated"`

	// PendingFeedback is the user's revision request for the next draft
	// run. Consumed (cleared) when the revision lands.
	PendingFeedback string `json:"pending_feedback,omitempty"`
}

// DraftRevision is a superseded draft version.
type DraftRevision struct {
	Version   int       `json:"version"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Outline is the chapter plan in Markdown. Section titles are parsed from
// its headings, not stored separately.
type Outline struct {
	CurrentText string `json:"current_text"`
	Version     int    `json:"version"`
}

// IsEmpty reports whether no outline text has been produced yet.
func (o Outline) IsEmpty() bool { return o.CurrentText == "" }

// PhaseProgress tracks one preparation phase (questions, draft, outline).
type PhaseProgress struct {
	Status    ProgressStatus `json:"status"`
	Percent   int            `json:"percent"`
	Error     string         `json:"error,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WritingProgress tracks the chapter-writing loop. Updates go through
// WritingProgressPatch so unrelated fields are never clobbered.
type WritingProgress struct {
	CurrentStep            int    `json:"current_step"`
	TotalSteps             int    `json:"total_steps"`
	CurrentSectionName     string `json:"current_section_name"`
	IsComplete             bool   `json:"is_complete"`
	IsPaused               bool   `json:"is_paused"`
	Error                  string `json:"error,omitempty"`
	TotalPages             int    `json:"total_pages,omitempty"`
	CompletedChaptersCount int    `json:"completed_chapters_count,omitempty"`
}

// WritingProgressPatch updates only its non-nil fields. A nil Error pointer
// leaves the stored error alone; a pointer to "" clears it.
type WritingProgressPatch struct {
	CurrentStep            *int
	TotalSteps             *int
	CurrentSectionName     *string
	IsComplete             *bool
	IsPaused               *bool
	Error                  *string
	TotalPages             *int
	CompletedChaptersCount *int
}

// Apply merges the patch into p, field by field.
func (patch WritingProgressPatch) Apply(p *WritingProgress) {
	if patch.CurrentStep != nil {
		p.CurrentStep = *patch.CurrentStep
	}
	if patch.TotalSteps != nil {
		p.TotalSteps = *patch.TotalSteps
	}
	if patch.CurrentSectionName != nil {
		p.CurrentSectionName = *patch.CurrentSectionName
	}
	if patch.IsComplete != nil {
		p.IsComplete = *patch.IsComplete
	}
	if patch.IsPaused != nil {
		p.IsPaused = *patch.IsPaused
	}
	if patch.Error != nil {
		p.Error = *patch.Error
	}
	if patch.TotalPages != nil {
		p.TotalPages = *patch.TotalPages
	}
	if patch.CompletedChaptersCount != nil {
		p.CompletedChaptersCount = *patch.CompletedChaptersCount
	}
}

// PhaseTokens is the accumulated token count for one generation phase.
// Counters add across calls; the model records the last one used.
type PhaseTokens struct {
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	Calls        int    `json:"calls,omitempty"`
	Model        string `json:"model"`
}

// TokenUsage aggregates token counts per phase for cost accounting.
type TokenUsage struct {
	Phases map[string]PhaseTokens `json:"phases,omitempty"`
}

// Add accumulates a call's token counts under the given phase key.
func (u *TokenUsage) Add(phase string, in, out int, model string) {
	if u.Phases == nil {
		u.Phases = make(map[string]PhaseTokens)
	}
	t := u.Phases[phase]
	t.InputTokens += in
	t.OutputTokens += out
	t.Calls++
	t.Model = model
	u.Phases[phase] = t
}

// Total sums token counts across all phases.
func (u TokenUsage) Total() (in, out int) {
	for _, t := range u.Phases {
		in += t.InputTokens
		out += t.OutputTokens
	}
	return in, out
}

// Critique is the automated literary review of a finished book.
type Critique struct {
	Score     float64   `json:"score"`
	Pros      []string  `json:"pros"`
	Cons      []string  `json:"cons"`
	Summary   string    `json:"summary"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
