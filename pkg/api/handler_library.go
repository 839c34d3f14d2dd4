package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/library"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// libraryHandler returns the caller's bookshelf: own sessions plus books
// shared with them.
func (s *Server) libraryHandler(c *gin.Context) {
	u := currentUser(c)

	entries, err := s.library.Entries(c.Request.Context(), u.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LibraryResponse{Entries: entries, Count: len(entries)})
}

// statsHandler aggregates the caller's writing statistics.
func (s *Server) statsHandler(c *gin.Context) {
	u := currentUser(c)

	stats, err := s.library.Stats(c.Request.Context(), u.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// exportStatsHandler produces the spreadsheet export. Admin only; the
// user_id query selects whose stats, defaulting to the caller's own.
func (s *Server) exportStatsHandler(c *gin.Context) {
	u := currentUser(c)
	targetID := c.DefaultQuery("user_id", u.ID)

	stats, err := s.library.Stats(c.Request.Context(), targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data, err := library.ExportStatsXLSX(stats)
	if err != nil {
		s.logger.Error("Stats export failed", "user_id", targetID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}

	serveArtifact(c, xlsxContentType, fmt.Sprintf("fabula_stats_%s.xlsx", targetID), data)
}
