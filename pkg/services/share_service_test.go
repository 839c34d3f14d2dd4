package services

import (
	"context"
	"errors"
	"testing"

	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareService_ShareBook(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewShareService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client, "owner@example.com")
	reader := createTestUser(t, client.Client, "reader@example.com")

	t.Run("shares a completed book", func(t *testing.T) {
		sess := createTestSession(t, client.Client, owner.ID)
		makeSessionCompleted(t, client.Client, sess.ID)

		share, recipient, err := service.ShareBook(ctx, sess.ID, owner.ID, "Reader@Example.com")
		require.NoError(t, err)
		assert.Equal(t, sess.ID, share.SessionID)
		assert.Equal(t, owner.ID, share.OwnerID)
		assert.Equal(t, reader.ID, share.RecipientID)
		assert.Equal(t, reader.ID, recipient.ID)
	})

	t.Run("sharing twice with the same reader", func(t *testing.T) {
		sess := createTestSession(t, client.Client, owner.ID)
		makeSessionCompleted(t, client.Client, sess.ID)

		_, _, err := service.ShareBook(ctx, sess.ID, owner.ID, "reader@example.com")
		require.NoError(t, err)

		_, _, err = service.ShareBook(ctx, sess.ID, owner.ID, "reader@example.com")
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("only the owner can share", func(t *testing.T) {
		sess := createTestSession(t, client.Client, owner.ID)
		makeSessionCompleted(t, client.Client, sess.ID)

		_, _, err := service.ShareBook(ctx, sess.ID, reader.ID, "owner@example.com")
		assert.Equal(t, ErrForbidden, err)
	})

	t.Run("only completed books can be shared", func(t *testing.T) {
		sess := createTestSession(t, client.Client, owner.ID)
		makeSessionReady(t, client.Client, sess.ID)

		_, _, err := service.ShareBook(ctx, sess.ID, owner.ID, "reader@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPreconditionFailed))
	})

	t.Run("recipient must hold an account", func(t *testing.T) {
		sess := createTestSession(t, client.Client, owner.ID)
		makeSessionCompleted(t, client.Client, sess.ID)

		_, _, err := service.ShareBook(ctx, sess.ID, owner.ID, "nobody@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("cannot share with yourself", func(t *testing.T) {
		sess := createTestSession(t, client.Client, owner.ID)
		makeSessionCompleted(t, client.Client, sess.ID)

		_, _, err := service.ShareBook(ctx, sess.ID, owner.ID, "owner@example.com")
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing session", func(t *testing.T) {
		_, _, err := service.ShareBook(ctx, "nonexistent", owner.ID, "reader@example.com")
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestShareService_Unshare(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewShareService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client, "owner@example.com")
	reader := createTestUser(t, client.Client, "reader@example.com")
	sess := createTestSession(t, client.Client, owner.ID)
	makeSessionCompleted(t, client.Client, sess.ID)

	_, _, err := service.ShareBook(ctx, sess.ID, owner.ID, "reader@example.com")
	require.NoError(t, err)

	t.Run("revokes access", func(t *testing.T) {
		require.NoError(t, service.Unshare(ctx, sess.ID, owner.ID, reader.ID))

		ok, err := service.HasReadAccess(ctx, sess.ID, reader.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("revoking a revoked share", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.Unshare(ctx, sess.ID, owner.ID, reader.ID))
	})
}

func TestShareService_Lists(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewShareService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client, "owner@example.com")
	createTestUser(t, client.Client, "first@example.com")
	second := createTestUser(t, client.Client, "second@example.com")

	sess := createTestSession(t, client.Client, owner.ID)
	makeSessionCompleted(t, client.Client, sess.ID)
	other := createTestSession(t, client.Client, owner.ID)
	makeSessionCompleted(t, client.Client, other.ID)

	_, _, err := service.ShareBook(ctx, sess.ID, owner.ID, "first@example.com")
	require.NoError(t, err)
	_, _, err = service.ShareBook(ctx, sess.ID, owner.ID, "second@example.com")
	require.NoError(t, err)
	_, _, err = service.ShareBook(ctx, other.ID, owner.ID, "second@example.com")
	require.NoError(t, err)

	t.Run("per session", func(t *testing.T) {
		shares, err := service.ListSharesForSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Len(t, shares, 2)
	})

	t.Run("per recipient", func(t *testing.T) {
		shares, err := service.ListSharedWithUser(ctx, second.ID)
		require.NoError(t, err)
		require.Len(t, shares, 2)
		for _, share := range shares {
			assert.Equal(t, second.ID, share.RecipientID)
		}
	})
}

func TestShareService_HasReadAccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewShareService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client, "owner@example.com")
	reader := createTestUser(t, client.Client, "reader@example.com")
	stranger := createTestUser(t, client.Client, "stranger@example.com")

	sess := createTestSession(t, client.Client, owner.ID)
	makeSessionCompleted(t, client.Client, sess.ID)
	_, _, err := service.ShareBook(ctx, sess.ID, owner.ID, "reader@example.com")
	require.NoError(t, err)

	t.Run("owner", func(t *testing.T) {
		ok, err := service.HasReadAccess(ctx, sess.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("recipient", func(t *testing.T) {
		ok, err := service.HasReadAccess(ctx, sess.ID, reader.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("stranger", func(t *testing.T) {
		ok, err := service.HasReadAccess(ctx, sess.ID, stranger.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := service.HasReadAccess(ctx, "nonexistent", owner.ID)
		assert.Equal(t, ErrNotFound, err)
	})
}
