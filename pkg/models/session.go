package models

import "time"

// CreateSessionRequest contains fields for creating a new novel session.
type CreateSessionRequest struct {
	SessionID string         `json:"session_id,omitempty"` // optional; generated when empty
	UserID    string         `json:"-"`
	FormData  map[string]any `json:"form_data" binding:"required"`
	LLMModel  string         `json:"llm_model" binding:"required"`
	Genre     string         `json:"genre,omitempty"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	UserID         string        `json:"user_id,omitempty"`
	Status         SessionStatus `json:"status,omitempty"` // derived phase, applied post-query
	LLMModel       string        `json:"llm_model,omitempty"`
	Genre          string        `json:"genre,omitempty"`
	Limit          int           `json:"limit,omitempty"`
	Offset         int           `json:"offset,omitempty"`
	IncludeDeleted bool          `json:"include_deleted,omitempty"`
}

// SessionSummary is the list projection. Heavy payloads (chapter content,
// outline text) are elided; only their versions and counts survive.
type SessionSummary struct {
	SessionID      string           `json:"session_id"`
	UserID         string           `json:"user_id,omitempty"`
	Title          string           `json:"title"`
	Genre          string           `json:"genre,omitempty"`
	LLMModel       string           `json:"llm_model"`
	Status         SessionStatus    `json:"status"`
	OutlineVersion int              `json:"outline_version"`
	ChapterCount   int              `json:"chapter_count"`
	Writing        *WritingProgress `json:"writing_progress,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SessionListResponse contains a paginated session list.
type SessionListResponse struct {
	Sessions   []SessionSummary `json:"sessions"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}

// ChapterContent is one finished chapter in reading order.
type ChapterContent struct {
	SectionIndex int    `json:"section_index"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	WordCount    int    `json:"word_count"`
}

// ResidualEstimate predicts the remaining writing time.
type ResidualEstimate struct {
	Seconds    float64 `json:"seconds"`
	Confidence string  `json:"confidence"` // high, medium, low
}
