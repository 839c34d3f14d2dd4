package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/blob"
	"github.com/fabula-ai/fabula/pkg/render"
	"github.com/fabula-ai/fabula/pkg/services"
)

const fallbackAuthor = "Fabula"

// downloadBookHandler serves the finished book in the given format. The PDF
// is preferred from the blob store, where the writing run left it; EPUB and
// DOCX are rendered per request from the stored chapters.
func (s *Server) downloadBookHandler(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.downloadBook(c, format)
	}
}

func (s *Server) downloadBook(c *gin.Context, format string) {
	u := currentUser(c)
	ctx := c.Request.Context()

	sess, err := s.sessions.GetSession(ctx, c.Param("id"), false)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Share recipients may download, not just the owner.
	if sess.UserID != u.ID {
		allowed, err := s.shares.HasReadAccess(ctx, sess.ID, u.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if !allowed {
			respondServiceError(c, services.ErrForbidden)
			return
		}
	}

	if !sess.WritingProgress.IsComplete {
		respondServiceError(c, fmt.Errorf("book is not finished yet: %w", services.ErrPreconditionFailed))
		return
	}

	filename := render.CanonicalFilename(
		sess.CreatedAt,
		s.cfg.Models.Abbreviation(sess.LlmModel),
		sess.Draft.CurrentTitle,
		sess.ID,
		format,
	)

	if format == "pdf" && sess.PdfPath != "" && s.store != nil {
		data, err := blob.Fetch(ctx, s.store, sess.PdfPath)
		if err == nil {
			serveArtifact(c, "application/pdf", filename, data)
			return
		}
		s.logger.Warn("Stored PDF unavailable, re-rendering",
			"session_id", sess.ID, "path", sess.PdfPath, "error", err)
	}

	renderer, ok := render.ForFormat(format)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown book format: " + format})
		return
	}

	chapters, err := s.sessions.GetChapters(ctx, sess.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	book := render.Book{
		SessionID: sess.ID,
		Title:     sess.Draft.CurrentTitle,
		Author:    s.authorName(c, sess.UserID),
		Genre:     sess.Genre,
		Chapters:  services.ChapterContents(chapters),
		CreatedAt: sess.CreatedAt,
	}

	data, err := renderer.Render(book)
	if err != nil {
		s.logger.Error("Book render failed", "session_id", sess.ID, "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render book"})
		return
	}

	serveArtifact(c, renderer.ContentType(), filename, data)
}

// authorName resolves the display name printed on the book. Anonymized or
// missing owners fall back to the house name.
func (s *Server) authorName(c *gin.Context, ownerID string) string {
	owner, err := s.users.GetByID(c.Request.Context(), ownerID)
	if err != nil || owner.DisplayName == "" {
		return fallbackAuthor
	}
	return owner.DisplayName
}

func serveArtifact(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
