package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/services"
)

const (
	defaultListLimit = 25
	maxListLimit     = 100
)

var listableStatuses = map[models.SessionStatus]bool{
	models.StatusDraft:     true,
	models.StatusReady:     true,
	models.StatusWriting:   true,
	models.StatusPaused:    true,
	models.StatusCompleted: true,
	models.StatusFailed:    true,
}

// createSessionHandler opens a new novel session from the intake form.
func (s *Server) createSessionHandler(c *gin.Context) {
	u := currentUser(c)

	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	req.UserID = u.ID

	sess, err := s.sessions.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionDetailResponse{
		NovelSession: sess,
		Status:       services.DeriveStatus(sess),
		Chapters:     []models.ChapterContent{},
	})
}

// listSessionsHandler pages through the caller's sessions. Filter values are
// validated here so a typo'd status yields a 400, not an empty list.
func (s *Server) listSessionsHandler(c *gin.Context) {
	u := currentUser(c)

	filters := models.SessionFilters{
		UserID:   u.ID,
		LLMModel: c.Query("llm_model"),
		Genre:    c.Query("genre"),
		Limit:    defaultListLimit,
	}

	if raw := c.Query("status"); raw != "" {
		status := models.SessionStatus(raw)
		if !listableStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter: " + raw})
			return
		}
		filters.Status = status
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		filters.Limit = n
	}

	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be non-negative"})
			return
		}
		filters.Offset = n
	}

	list, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// getSessionHandler returns the full session view, chapters included.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	chapters, err := s.sessions.GetChapters(c.Request.Context(), sess.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionDetailResponse{
		NovelSession: sess,
		Status:       services.DeriveStatus(sess),
		Chapters:     services.ChapterContents(chapters),
	})
}

// deleteSessionHandler soft-deletes a session. The row stays behind, hidden
// from listings but restorable.
func (s *Server) deleteSessionHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	if err := s.sessions.DeleteSession(c.Request.Context(), sess.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedSession loads the :id session and enforces that the caller owns it.
// On failure it has already written the error response.
func (s *Server) ownedSession(c *gin.Context) (*ent.NovelSession, bool) {
	u := currentUser(c)
	sess, err := s.sessions.GetSessionForUser(c.Request.Context(), c.Param("id"), u.ID)
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	return sess, true
}
