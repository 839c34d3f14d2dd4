package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/services"
)

// progressHandler is the polling endpoint the client hits while a book is
// being made. It folds every phase's progress, the critique state and the
// running costs into one response, plus a residual time estimate while the
// chapter loop is active.
func (s *Server) progressHandler(c *gin.Context) {
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	status := services.DeriveStatus(sess)
	resp := ProgressResponse{
		SessionID:        sess.ID,
		Status:           status,
		Questions:        sess.QuestionsProgress,
		Draft:            sess.DraftProgress,
		Outline:          sess.OutlineProgress,
		Writing:          sess.WritingProgress,
		CritiqueStatus:   string(sess.CritiqueStatus),
		CritiqueError:    sess.CritiqueError,
		RealCostEUR:      sess.RealCostEur,
		EstimatedCostEUR: sess.EstimatedCostEur,
	}

	if (status == models.StatusWriting || status == models.StatusPaused) && sess.WritingProgress.TotalSteps > 0 {
		est := s.estimator.ResidualSeconds(
			sess.LlmModel,
			sess.WritingProgress.CurrentStep,
			sess.WritingProgress.TotalSteps,
			sess.ChapterTimings,
		)
		resp.Residual = &est
	}

	c.JSON(http.StatusOK, resp)
}
