package api

import (
	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/models"
)

// TaskResponse acknowledges queued background work.
type TaskResponse struct {
	TaskID    string `json:"task_id"`
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

func newTaskResponse(task *ent.GenerationTask, message string) TaskResponse {
	return TaskResponse{
		TaskID:    task.ID,
		SessionID: task.SessionID,
		Kind:      string(task.Kind),
		Status:    string(task.Status),
		Message:   message,
	}
}

// CancelResponse reports the outcome of a cancellation request.
type CancelResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// LoginResponse pairs a fresh API token with the account it belongs to.
type LoginResponse struct {
	Token string    `json:"token"`
	User  *ent.User `json:"user"`
}

// SessionDetailResponse is the full session view: the row itself, the status
// derived from its progress fields, and the finished chapters.
type SessionDetailResponse struct {
	*ent.NovelSession
	Status   models.SessionStatus    `json:"status"`
	Chapters []models.ChapterContent `json:"chapters"`
}

// ProgressResponse is the polling view of a session's pipeline state.
type ProgressResponse struct {
	SessionID        string                   `json:"session_id"`
	Status           models.SessionStatus     `json:"status"`
	Questions        models.PhaseProgress     `json:"questions"`
	Draft            models.PhaseProgress     `json:"draft"`
	Outline          models.PhaseProgress     `json:"outline"`
	Writing          models.WritingProgress   `json:"writing"`
	CritiqueStatus   string                   `json:"critique_status"`
	CritiqueError    *string                  `json:"critique_error,omitempty"`
	Residual         *models.ResidualEstimate `json:"residual,omitempty"`
	RealCostEUR      float64                  `json:"real_cost_eur"`
	EstimatedCostEUR *float64                 `json:"estimated_cost_eur,omitempty"`
}

// ShareResponse reports a created share.
type ShareResponse struct {
	ShareID        string `json:"share_id"`
	SessionID      string `json:"session_id"`
	RecipientEmail string `json:"recipient_email"`
	RecipientID    string `json:"recipient_id"`
}

// NotificationsResponse is a page of notifications plus the unread badge count.
type NotificationsResponse struct {
	Notifications []*ent.Notification `json:"notifications"`
	UnreadCount   int                 `json:"unread_count"`
}

// LibraryResponse is the user's bookshelf projection.
type LibraryResponse struct {
	Entries []models.LibraryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// HealthCheck is a single dependency probe inside a health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse aggregates dependency probes for readiness checks.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// VersionResponse identifies the running build.
type VersionResponse struct {
	App     string `json:"app"`
	Commit  string `json:"commit"`
	Version string `json:"version"`
}
