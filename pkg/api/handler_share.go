package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/notify"
)

// shareBookHandler grants another account read access to a finished book and
// pings the recipient. Notification delivery is fail-soft: the share stands
// even if the ping cannot be sent.
func (s *Server) shareBookHandler(c *gin.Context) {
	u := currentUser(c)
	sess, ok := s.ownedSession(c)
	if !ok {
		return
	}

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	share, recipient, err := s.shares.ShareBook(c.Request.Context(), sess.ID, u.ID, req.RecipientEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	s.notifier.NotifyBookShared(c.Request.Context(), notify.BookSharedInput{
		OwnerName:      u.DisplayName,
		RecipientID:    recipient.ID,
		RecipientEmail: recipient.Email,
		SessionID:      sess.ID,
		Title:          sess.Draft.CurrentTitle,
	})

	c.JSON(http.StatusCreated, ShareResponse{
		ShareID:        share.ID,
		SessionID:      sess.ID,
		RecipientEmail: recipient.Email,
		RecipientID:    recipient.ID,
	})
}
