package services

import (
	"context"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/pkg/models"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates session from intake form", func(t *testing.T) {
		req := models.CreateSessionRequest{
			UserID:   "user-1",
			FormData: map[string]any{"plot": "a heist in Venice", "genre": "thriller"},
			LLMModel: "gemini-2.5-pro",
		}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "gemini-2.5-pro", session.LlmModel)
		assert.Equal(t, "a heist in Venice", session.FormData["plot"])
		// Genre falls back to the form field
		assert.Equal(t, "thriller", session.Genre)
		assert.False(t, session.Draft.Validated)
	})

	t.Run("keeps an explicit session_id", func(t *testing.T) {
		id := uuid.New().String()
		req := models.CreateSessionRequest{
			SessionID: id,
			FormData:  map[string]any{"plot": "x"},
			LLMModel:  "gemini-2.5-flash",
		}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, id, session.ID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateSessionRequest
		}{
			{
				name: "missing form_data",
				req:  models.CreateSessionRequest{LLMModel: "gemini-2.5-flash"},
			},
			{
				name: "missing llm_model",
				req:  models.CreateSessionRequest{FormData: map[string]any{"plot": "x"}},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateSession(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects duplicate session_id", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			FormData:  map[string]any{"plot": "x"},
			LLMModel:  "gemini-2.5-flash",
		}

		_, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, req)
		require.Error(t, err)
		assert.Equal(t, ErrAlreadyExists, err)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("retrieves existing session", func(t *testing.T) {
		created := createTestSession(t, client.Client, "user-1")

		session, err := service.GetSession(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.ID, session.ID)
	})

	t.Run("loads chapters in reading order when requested", func(t *testing.T) {
		created := createTestSession(t, client.Client, "user-1")
		for _, idx := range []int{2, 0, 1} {
			_, err := service.SaveChapter(ctx, created.ID, idx, "Capitolo", "testo del capitolo")
			require.NoError(t, err)
		}

		session, err := service.GetSession(ctx, created.ID, true)
		require.NoError(t, err)
		require.Len(t, session.Edges.Chapters, 3)
		for i, ch := range session.Edges.Chapters {
			assert.Equal(t, i, ch.SectionIndex)
		}
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		_, err := service.GetSession(ctx, "nonexistent", false)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_GetSessionForUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	created := createTestSession(t, client.Client, "owner-1")

	t.Run("owner can read", func(t *testing.T) {
		session, err := service.GetSessionForUser(ctx, created.ID, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, session.ID)
	})

	t.Run("other users are rejected", func(t *testing.T) {
		_, err := service.GetSessionForUser(ctx, created.ID, "someone-else")
		require.Error(t, err)
		assert.Equal(t, ErrForbidden, err)
	})

	t.Run("missing session stays not found", func(t *testing.T) {
		_, err := service.GetSessionForUser(ctx, "nonexistent", "owner-1")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("ownerless sessions stay readable", func(t *testing.T) {
		orphan := createTestSession(t, client.Client, "")
		session, err := service.GetSessionForUser(ctx, orphan.ID, "someone-else")
		require.NoError(t, err)
		assert.Equal(t, orphan.ID, session.ID)
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestSession(t, client.Client, "lister")
	}

	t.Run("lists all sessions", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{UserID: "lister"})
		require.NoError(t, err)
		assert.Equal(t, 5, result.TotalCount)
		assert.Len(t, result.Sessions, 5)
	})

	t.Run("applies pagination", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			UserID: "lister",
			Limit:  2,
			Offset: 0,
		})
		require.NoError(t, err)
		assert.Len(t, result.Sessions, 2)
		assert.Equal(t, 5, result.TotalCount)
		assert.Equal(t, 2, result.Limit)
	})

	t.Run("filters by llm_model and genre", func(t *testing.T) {
		other, err := client.NovelSession.Create().
			SetID(uuid.New().String()).
			SetUserID("lister").
			SetLlmModel("gemini-2.5-ultra").
			SetGenre("fantasy").
			SetFormData(map[string]any{"plot": "y"}).
			Save(ctx)
		require.NoError(t, err)

		result, err := service.ListSessions(ctx, models.SessionFilters{
			UserID:   "lister",
			LLMModel: "gemini-2.5-ultra",
		})
		require.NoError(t, err)
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, other.ID, result.Sessions[0].SessionID)

		result, err = service.ListSessions(ctx, models.SessionFilters{
			UserID: "lister",
			Genre:  "fantasy",
		})
		require.NoError(t, err)
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, other.ID, result.Sessions[0].SessionID)
	})

	t.Run("filters by derived status", func(t *testing.T) {
		completed := createTestSession(t, client.Client, "status-filter")
		makeSessionCompleted(t, client.Client, completed.ID)
		createTestSession(t, client.Client, "status-filter")

		result, err := service.ListSessions(ctx, models.SessionFilters{
			UserID: "status-filter",
			Status: models.StatusCompleted,
		})
		require.NoError(t, err)
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, completed.ID, result.Sessions[0].SessionID)
		assert.Equal(t, 1, result.TotalCount)

		result, err = service.ListSessions(ctx, models.SessionFilters{
			UserID: "status-filter",
			Status: models.StatusDraft,
		})
		require.NoError(t, err)
		assert.Len(t, result.Sessions, 1)
	})

	t.Run("excludes soft-deleted by default", func(t *testing.T) {
		deleted := createTestSession(t, client.Client, "deleter")
		require.NoError(t, service.DeleteSession(ctx, deleted.ID))

		result, err := service.ListSessions(ctx, models.SessionFilters{UserID: "deleter"})
		require.NoError(t, err)
		assert.Empty(t, result.Sessions)

		result, err = service.ListSessions(ctx, models.SessionFilters{
			UserID:         "deleter",
			IncludeDeleted: true,
		})
		require.NoError(t, err)
		assert.Len(t, result.Sessions, 1)
	})
}

func TestSessionService_Summaries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client.Client, "summarized")
	makeSessionReady(t, client.Client, sess.ID)
	for i := 0; i < 2; i++ {
		_, err := service.SaveChapter(ctx, sess.ID, i, "Capitolo", "qualche testo di prova")
		require.NoError(t, err)
	}

	result, err := service.ListSessions(ctx, models.SessionFilters{UserID: "summarized"})
	require.NoError(t, err)
	require.Len(t, result.Sessions, 1)

	summary := result.Sessions[0]
	assert.Equal(t, "Il faro tra le nebbie", summary.Title)
	assert.Equal(t, models.StatusReady, summary.Status)
	assert.Equal(t, 1, summary.OutlineVersion)
	assert.Equal(t, 2, summary.ChapterCount)
	assert.Nil(t, summary.Writing)
}

func TestSessionService_SearchSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	withTitle := func(userID, title string) string {
		sess := createTestSession(t, client.Client, userID)
		err := client.NovelSession.UpdateOneID(sess.ID).
			SetDraft(models.Draft{CurrentText: "TRAMA: x", CurrentTitle: title, CurrentVersion: 1}).
			Exec(ctx)
		require.NoError(t, err)
		return sess.ID
	}

	faroID := withTitle("searcher", "Il faro tra le nebbie")
	withTitle("searcher", "Cronache della colonia perduta")
	withTitle("other-user", "Il faro spento")

	t.Run("finds by title words", func(t *testing.T) {
		found, err := service.SearchSessions(ctx, "searcher", "faro", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, faroID, found[0].ID)
	})

	t.Run("scopes to the user", func(t *testing.T) {
		found, err := service.SearchSessions(ctx, "", "faro", 10)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("rejects blank query", func(t *testing.T) {
		_, err := service.SearchSessions(ctx, "searcher", "   ", 10)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("excludes soft-deleted sessions", func(t *testing.T) {
		require.NoError(t, service.DeleteSession(ctx, faroID))
		found, err := service.SearchSessions(ctx, "searcher", "faro", 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestSessionService_DeleteAndRestore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("delete sets deleted_at and restore clears it", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1")

		require.NoError(t, service.DeleteSession(ctx, sess.ID))
		got, err := service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, got.DeletedAt)

		require.NoError(t, service.RestoreSession(ctx, sess.ID))
		got, err = service.GetSession(ctx, sess.ID, false)
		require.NoError(t, err)
		assert.Nil(t, got.DeletedAt)
	})

	t.Run("missing session", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.DeleteSession(ctx, "nonexistent"))
		assert.Equal(t, ErrNotFound, service.RestoreSession(ctx, "nonexistent"))
	})
}

func TestSessionService_SoftDeleteOldSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := service.SoftDeleteOldSessions(ctx, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "retention_days must be positive")
	})

	t.Run("deletes only sessions past the cutoff", func(t *testing.T) {
		old := createTestSession(t, client.Client, "retention")
		fresh := createTestSession(t, client.Client, "retention")

		// Backdate below the ent update hooks
		_, err := client.DB().ExecContext(ctx,
			"UPDATE novel_sessions SET updated_at = $1 WHERE session_id = $2",
			time.Now().Add(-400*24*time.Hour), old.ID)
		require.NoError(t, err)

		count, err := service.SoftDeleteOldSessions(ctx, 365)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		gotOld, err := service.GetSession(ctx, old.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, gotOld.DeletedAt)

		gotFresh, err := service.GetSession(ctx, fresh.ID, false)
		require.NoError(t, err)
		assert.Nil(t, gotFresh.DeletedAt)
	})
}
