package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	t.Run("stores a book notification", func(t *testing.T) {
		u := createTestUser(t, client.Client, "notify@example.com")
		sess := createTestSession(t, client.Client, u.ID)

		n, err := service.Create(ctx, u.ID, NotificationBookCompleted,
			"Il tuo libro è pronto", "Il faro tra le nebbie è stato completato.", sess.ID)
		require.NoError(t, err)

		assert.Equal(t, NotificationBookCompleted, n.Kind)
		assert.Equal(t, "Il tuo libro è pronto", n.Title)
		assert.Equal(t, sess.ID, n.SessionID)
		assert.False(t, n.Read)
	})

	t.Run("body and session are optional", func(t *testing.T) {
		u := createTestUser(t, client.Client, "minimal@example.com")

		n, err := service.Create(ctx, u.ID, NotificationCritiqueReady, "La critica è pronta", "", "")
		require.NoError(t, err)
		assert.Empty(t, n.Body)
		assert.Empty(t, n.SessionID)
	})

	t.Run("validation", func(t *testing.T) {
		u := createTestUser(t, client.Client, "invalid@example.com")

		_, err := service.Create(ctx, "", NotificationBookShared, "T", "", "")
		assert.True(t, IsValidationError(err))
		_, err = service.Create(ctx, u.ID, "", "T", "", "")
		assert.True(t, IsValidationError(err))
		_, err = service.Create(ctx, u.ID, NotificationBookShared, "", "", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestNotificationService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client, "inbox@example.com")
	other := createTestUser(t, client.Client, "other@example.com")

	for i := 0; i < 5; i++ {
		_, err := service.Create(ctx, u.ID, NotificationBookCompleted, fmt.Sprintf("Libro %d", i), "", "")
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond) // stable created_at ordering
	}
	_, err := service.Create(ctx, other.ID, NotificationBookShared, "Un libro per te", "", "")
	require.NoError(t, err)

	t.Run("newest first, scoped to the user", func(t *testing.T) {
		items, err := service.List(ctx, u.ID, false, 0, 0)
		require.NoError(t, err)
		require.Len(t, items, 5)
		assert.Equal(t, "Libro 4", items[0].Title)
		assert.Equal(t, "Libro 0", items[4].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		items, err := service.List(ctx, u.ID, false, 2, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Libro 2", items[0].Title)
	})

	t.Run("unread filter", func(t *testing.T) {
		items, err := service.List(ctx, u.ID, false, 1, 0)
		require.NoError(t, err)
		require.NoError(t, service.MarkRead(ctx, u.ID, items[0].ID))

		unread, err := service.List(ctx, u.ID, true, 0, 0)
		require.NoError(t, err)
		assert.Len(t, unread, 4)
	})
}

func TestNotificationService_ReadTracking(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client, "reader@example.com")
	intruder := createTestUser(t, client.Client, "intruder@example.com")

	first, err := service.Create(ctx, u.ID, NotificationBookCompleted, "Primo", "", "")
	require.NoError(t, err)
	_, err = service.Create(ctx, u.ID, NotificationBookShared, "Secondo", "", "")
	require.NoError(t, err)

	t.Run("count unread", func(t *testing.T) {
		count, err := service.CountUnread(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("mark read is owner-scoped", func(t *testing.T) {
		err := service.MarkRead(ctx, intruder.ID, first.ID)
		assert.Equal(t, ErrNotFound, err)

		require.NoError(t, service.MarkRead(ctx, u.ID, first.ID))

		count, err := service.CountUnread(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("mark all read", func(t *testing.T) {
		count, err := service.MarkAllRead(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "only the remaining unread row is touched")

		unread, err := service.CountUnread(ctx, u.ID)
		require.NoError(t, err)
		assert.Zero(t, unread)
	})
}
