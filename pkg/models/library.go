package models

import "time"

// LibraryEntry is the bookshelf projection of one session. Status is derived
// from the progress sub-documents; cost shows accumulated actuals only.
type LibraryEntry struct {
	SessionID         string        `json:"session_id"`
	Title             string        `json:"title"`
	Genre             string        `json:"genre,omitempty"`
	Status            SessionStatus `json:"status"`
	LLMModel          string        `json:"llm_model"` // tier label: Flash, Pro, Ultra
	TotalChapters     int           `json:"total_chapters"`
	CompletedChapters int           `json:"completed_chapters"`
	TotalPages        *int          `json:"total_pages"` // null unless completed
	CritiqueScore     *float64      `json:"critique_score,omitempty"`
	CoverImagePath    string        `json:"cover_image_path,omitempty"`
	PDFPath           string        `json:"pdf_path,omitempty"`
	EstimatedCost     *float64      `json:"estimated_cost,omitempty"` // EUR, real accumulated cost
	CreatedAt         time.Time     `json:"created_at"`
	IsShared          bool          `json:"is_shared,omitempty"`
	SharedByID        string        `json:"shared_by_id,omitempty"`
	SharedByName      string        `json:"shared_by_name,omitempty"`
}

// LibraryStats aggregates a user's bookshelf.
type LibraryStats struct {
	TotalBooks          int                `json:"total_books"`
	ByStatus            map[string]int     `json:"by_status"`
	TotalPages          int                `json:"total_pages"`
	MeanCritiqueScore   *float64           `json:"mean_critique_score,omitempty"`
	MedianCritiqueScore *float64           `json:"median_critique_score,omitempty"`
	MinutesPerPage      *float64           `json:"minutes_per_page,omitempty"` // weighted: total minutes / total pages
	Monthly             []PeriodBucket     `json:"monthly"`
	Daily               []PeriodBucket     `json:"daily"`
	CostByModel         map[string]float64 `json:"cost_by_model,omitempty"`
}

// PeriodBucket counts sessions created in one calendar period.
type PeriodBucket struct {
	Period string `json:"period"` // "2026-08" or "2026-08-25"
	Count  int    `json:"count"`
	Pages  int    `json:"pages"`
}
