package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// listNotificationsHandler pages through the caller's notifications, newest
// first. ?unread=true narrows to unread ones; the badge count always covers
// all unread regardless of paging.
func (s *Server) listNotificationsHandler(c *gin.Context) {
	u := currentUser(c)

	onlyUnread := c.Query("unread") == "true"

	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxNotificationLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
			return
		}
		limit = n
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be non-negative"})
			return
		}
		offset = n
	}

	items, err := s.notifications.List(c.Request.Context(), u.ID, onlyUnread, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	unread, err := s.notifications.CountUnread(c.Request.Context(), u.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NotificationsResponse{Notifications: items, UnreadCount: unread})
}

// markNotificationReadHandler marks one notification as read.
func (s *Server) markNotificationReadHandler(c *gin.Context) {
	u := currentUser(c)

	if err := s.notifications.MarkRead(c.Request.Context(), u.ID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// markAllNotificationsReadHandler clears the caller's unread backlog.
func (s *Server) markAllNotificationsReadHandler(c *gin.Context) {
	u := currentUser(c)

	n, err := s.notifications.MarkAllRead(c.Request.Context(), u.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked_read": n})
}
