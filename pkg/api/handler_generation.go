package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// generateQuestionsHandler queues the clarifying-questions phase.
func (s *Server) generateQuestionsHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	task, err := s.generation.RequestQuestions(c.Request.Context(), sess.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTaskResponse(task, "questions generation queued"))
}

// saveAnswersHandler stores the user's replies to the clarifying questions.
func (s *Server) saveAnswersHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	var req SaveAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := s.sessions.SaveAnswers(c.Request.Context(), sess.ID, req.Answers); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// generateDraftHandler queues a draft generation. A body with feedback turns
// it into a revision of the current draft.
func (s *Server) generateDraftHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	// The body is optional: bare POST means "draft from the form data".
	var req GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	task, err := s.generation.RequestDraft(c.Request.Context(), sess.ID, req.Feedback)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTaskResponse(task, "draft generation queued"))
}

// editDraftHandler replaces the draft text by hand, bumping its version.
func (s *Server) editDraftHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	var req EditDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	updated, err := s.sessions.UpdateDraft(c.Request.Context(), sess.ID, req.Title, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.Draft)
}

// validateDraftHandler freezes the draft so outline and writing can start.
// The client sends the version it has been reading; a mismatch means someone
// regenerated underneath it and returns a conflict.
func (s *Server) validateDraftHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	var req ValidateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := s.sessions.ValidateDraft(c.Request.Context(), sess.ID, req.Version); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft validated", "version": req.Version})
}

// generateOutlineHandler queues the outline phase.
func (s *Server) generateOutlineHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	task, err := s.generation.RequestOutline(c.Request.Context(), sess.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTaskResponse(task, "outline generation queued"))
}

// editOutlineHandler replaces the outline text by hand.
func (s *Server) editOutlineHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	var req EditOutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	updated, err := s.sessions.UpdateOutline(c.Request.Context(), sess.ID, req.Text, req.AllowIfWriting)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.Outline)
}

// startWritingHandler burns a credit and queues the chapter-writing run.
func (s *Server) startWritingHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	task, err := s.generation.StartWriting(c.Request.Context(), sess.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTaskResponse(task, "writing started"))
}

// resumeWritingHandler queues the continuation of a paused run. No credit is
// burned: the session already paid on start.
func (s *Server) resumeWritingHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	task, err := s.generation.ResumeWriting(c.Request.Context(), sess.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTaskResponse(task, "writing resumed"))
}

// cancelHandler stops the session's live task. The queue row flips first so
// an unclaimed task never starts; the worker poke then interrupts a run that
// is already executing. Either one succeeding counts as cancelled.
func (s *Server) cancelHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	err := s.generation.Cancel(c.Request.Context(), sess.ID)

	interrupted := false
	if s.pool != nil {
		interrupted = s.pool.CancelSession(sess.ID)
	}

	if err != nil && !interrupted {
		respondServiceError(c, err)
		return
	}

	msg := "cancellation requested"
	if interrupted {
		msg = "cancellation requested, running task interrupted"
	}
	c.JSON(http.StatusOK, CancelResponse{SessionID: sess.ID, Message: msg})
}

// requestCritiqueHandler re-runs the critique on a completed book.
func (s *Server) requestCritiqueHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	task, err := s.generation.RequestCritique(c.Request.Context(), sess.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTaskResponse(task, "critique queued"))
}
