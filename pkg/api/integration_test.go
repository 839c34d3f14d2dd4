package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/user"
	"github.com/fabula-ai/fabula/pkg/blob"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/library"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/notify"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/fabula-ai/fabula/pkg/services"
	testdb "github.com/fabula-ai/fabula/test/database"
)

type apiFixture struct {
	client   *ent.Client
	server   *Server
	sessions *services.SessionService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	quota := config.QuotaConfig{Flash: 2, Pro: 1, Ultra: 1}
	cfg := &config.Config{
		Server:         &config.ServerConfig{},
		Models:         &config.ModelsConfig{Abbreviations: map[string]string{"gemini-2.5-flash": "g25f"}},
		TimeEstimation: &config.TimeEstimationConfig{FallbackSecondsPerChapter: 60},
	}

	sessions := services.NewSessionService(client)
	tasks := services.NewTaskService(client)
	users := services.NewUserService(client, quota)
	credits := services.NewCreditService(client, quota)
	generation := services.NewGenerationService(sessions, tasks, credits)
	shares := services.NewShareService(client)
	notifications := services.NewNotificationService(client)

	store, err := blob.NewLocal(t.TempDir())
	require.NoError(t, err)

	projector := library.NewProjector(client, sessions, cfg.Models, progress.NewCostCalculator(cfg.Cost))

	server := NewServer(Deps{
		Config:        cfg,
		DB:            dbClient,
		Users:         users,
		Credits:       credits,
		Sessions:      sessions,
		Generation:    generation,
		Shares:        shares,
		Notifications: notifications,
		Library:       projector,
		Store:         store,
		Notifier:      notify.NewService(notifications, nil),
	})

	return &apiFixture{client: client, server: server, sessions: sessions}
}

func (f *apiFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// finishBook fabricates a completed book the way a writing run leaves it:
// validated draft, outline, stored chapters and a closed writing loop.
func (f *apiFixture) finishBook(t *testing.T, userID, title string) string {
	t.Helper()
	ctx := context.Background()

	sess, err := f.sessions.CreateSession(ctx, models.CreateSessionRequest{
		UserID:   userID,
		FormData: map[string]any{"plot": "Romanzo breve ambientato su un'isola ligure."},
		LLMModel: "gemini-2.5-flash",
		Genre:    "avventura",
	})
	require.NoError(t, err)

	err = f.client.NovelSession.UpdateOneID(sess.ID).
		SetDraft(models.Draft{CurrentTitle: title, CurrentText: "La trama del faro.", CurrentVersion: 1, Validated: true}).
		SetOutline(models.Outline{CurrentText: "## Capitolo 1: Alba\n## Capitolo 2: Tramonto", Version: 1}).
		Exec(ctx)
	require.NoError(t, err)

	_, err = f.sessions.StartWriting(ctx, sess.ID, 2, "Capitolo 1: Alba")
	require.NoError(t, err)

	prose := strings.Repeat("Il mare batteva contro il molo e nessuno parlava. ", 30)
	_, err = f.sessions.SaveChapter(ctx, sess.ID, 0, "Capitolo 1: Alba", prose)
	require.NoError(t, err)
	_, err = f.sessions.SaveChapter(ctx, sess.ID, 1, "Capitolo 2: Tramonto", prose)
	require.NoError(t, err)

	require.NoError(t, f.sessions.CompleteWriting(ctx, sess.ID))
	return sess.ID
}

func TestAPIIntegration(t *testing.T) {
	f := newAPIFixture(t)

	var (
		tokenA      string
		tokenB      string
		tokenC      string
		ownerID     string
		recipientID string
		pipelineID  string
		completedID string
		strangerID  string
	)

	t.Run("register and login", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/users", "",
			`{"email": "ada@example.com", "password": "password123", "display_name": "Ada"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeMap(t, w)
		ownerID, _ = body["id"].(string)
		assert.NotEmpty(t, ownerID)
		assert.NotContains(t, w.Body.String(), "hashed_password")

		w = f.do(http.MethodPost, "/api/v1/users", "",
			`{"email": "ada@example.com", "password": "password123", "display_name": "Ada"}`)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = f.do(http.MethodPost, "/api/v1/users/login", "",
			`{"email": "ada@example.com", "password": "wrong-password"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = f.do(http.MethodPost, "/api/v1/users/login", "",
			`{"email": "ada@example.com", "password": "password123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		tokenA, _ = decodeMap(t, w)["token"].(string)
		require.NotEmpty(t, tokenA)
	})

	t.Run("authentication is enforced", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/sessions", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = f.do(http.MethodGet, "/api/v1/library", "not-a-real-token", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("intake to validated outline", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/sessions", tokenA,
			`{"form_data": "Un giallo tra i canali di Venezia.", "llm_model": "gemini-2.5-flash", "genre": "giallo"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeMap(t, w)
		pipelineID, _ = body["id"].(string)
		require.NotEmpty(t, pipelineID)
		assert.Equal(t, "draft", body["status"])

		w = f.do(http.MethodPut, "/api/v1/sessions/"+pipelineID+"/answers", tokenA,
			`{"answers": {"q1": "In inverno, con l'acqua alta."}}`)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = f.do(http.MethodPut, "/api/v1/sessions/"+pipelineID+"/draft", tokenA,
			`{"title": "Il canale muto", "text": "Un commissario sordo indaga su una scomparsa."}`)
		require.Equal(t, http.StatusOK, w.Code)
		draft := decodeMap(t, w)
		assert.Equal(t, float64(1), draft["current_version"])

		// Stale version: someone else regenerated underneath the client.
		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/draft/validate", tokenA, `{"version": 7}`)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/draft/validate", tokenA, `{"version": 1}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = f.do(http.MethodPut, "/api/v1/sessions/"+pipelineID+"/outline", tokenA,
			`{"text": "## Capitolo 1: Acqua alta\n## Capitolo 2: Nebbia"}`)
		require.Equal(t, http.StatusOK, w.Code)
		outline := decodeMap(t, w)
		assert.Equal(t, float64(1), outline["version"])

		w = f.do(http.MethodGet, "/api/v1/sessions/"+pipelineID, tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ready", decodeMap(t, w)["status"])

		w = f.do(http.MethodGet, "/api/v1/sessions", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeMap(t, w)
		assert.Equal(t, float64(1), list["total_count"])
	})

	t.Run("writing lifecycle", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/users/me/credits", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(2), decodeMap(t, w)["flash"])

		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/write", tokenA, "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		task := decodeMap(t, w)
		assert.Equal(t, "writing", task["kind"])
		assert.Equal(t, "queued", task["status"])

		w = f.do(http.MethodGet, "/api/v1/users/me/credits", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decodeMap(t, w)["flash"])

		// One live task per session.
		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/write", tokenA, "")
		assert.Equal(t, http.StatusConflict, w.Code)

		// Questions are closed once the draft is validated.
		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/questions", tokenA, "")
		assert.Equal(t, http.StatusConflict, w.Code)

		w = f.do(http.MethodGet, "/api/v1/sessions/"+pipelineID+"/progress", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		progressBody := decodeMap(t, w)
		assert.Equal(t, "ready", progressBody["status"])

		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/write/cancel", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "cancellation requested")

		w = f.do(http.MethodGet, "/api/v1/sessions/"+pipelineID+"/progress", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		progressBody = decodeMap(t, w)
		assert.Equal(t, "paused", progressBody["status"])
		writing, _ := progressBody["writing"].(map[string]any)
		require.NotNil(t, writing)
		assert.Equal(t, "cancelled by user", writing["error"])

		// Nothing live anymore: a second cancel has nothing to stop.
		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/write/cancel", tokenA, "")
		assert.Equal(t, http.StatusConflict, w.Code)

		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/write/resume", tokenA, "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		// Resume queues work but burns no second credit.
		w = f.do(http.MethodGet, "/api/v1/users/me/credits", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decodeMap(t, w)["flash"])

		// The book is not finished, so there is nothing to download.
		w = f.do(http.MethodGet, "/api/v1/sessions/"+pipelineID+"/book.pdf", tokenA, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("a finished book is downloadable", func(t *testing.T) {
		completedID = f.finishBook(t, ownerID, "Il faro di carta")

		w := f.do(http.MethodGet, "/api/v1/sessions/"+completedID+"/book.pdf", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "expected a PDF payload")

		w = f.do(http.MethodGet, "/api/v1/sessions/"+completedID+"/book.epub", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "expected a zip container")

		w = f.do(http.MethodGet, "/api/v1/sessions/"+completedID+"/book.docx", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "expected a zip container")

		w = f.do(http.MethodGet, "/api/v1/sessions?status=completed", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decodeMap(t, w)["total_count"])

		w = f.do(http.MethodGet, "/api/v1/sessions/"+completedID+"/progress", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		progressBody := decodeMap(t, w)
		assert.Equal(t, "completed", progressBody["status"])
		assert.Equal(t, "absent", progressBody["critique_status"])
	})

	t.Run("sharing and notifications", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/users", "",
			`{"email": "bruno@example.com", "password": "password123", "display_name": "Bruno"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		recipientID, _ = decodeMap(t, w)["id"].(string)

		w = f.do(http.MethodPost, "/api/v1/users/login", "",
			`{"email": "bruno@example.com", "password": "password123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		tokenB, _ = decodeMap(t, w)["token"].(string)

		// Unfinished books cannot be shared.
		w = f.do(http.MethodPost, "/api/v1/sessions/"+pipelineID+"/share", tokenA,
			`{"recipient_email": "bruno@example.com"}`)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = f.do(http.MethodPost, "/api/v1/sessions/"+completedID+"/share", tokenA,
			`{"recipient_email": "nessuno@example.com"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = f.do(http.MethodPost, "/api/v1/sessions/"+completedID+"/share", tokenA,
			`{"recipient_email": "ada@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = f.do(http.MethodPost, "/api/v1/sessions/"+completedID+"/share", tokenA,
			`{"recipient_email": "bruno@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		share := decodeMap(t, w)
		assert.Equal(t, recipientID, share["recipient_id"])

		w = f.do(http.MethodPost, "/api/v1/sessions/"+completedID+"/share", tokenA,
			`{"recipient_email": "bruno@example.com"}`)
		assert.Equal(t, http.StatusConflict, w.Code)

		// The recipient was pinged in-app.
		w = f.do(http.MethodGet, "/api/v1/notifications", tokenB, "")
		require.Equal(t, http.StatusOK, w.Code)
		inbox := decodeMap(t, w)
		assert.Equal(t, float64(1), inbox["unread_count"])
		items, _ := inbox["notifications"].([]any)
		require.Len(t, items, 1)
		first, _ := items[0].(map[string]any)
		assert.Equal(t, "book_shared", first["kind"])
		notificationID, _ := first["id"].(string)
		require.NotEmpty(t, notificationID)

		w = f.do(http.MethodPost, "/api/v1/notifications/"+notificationID+"/read", tokenB, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = f.do(http.MethodGet, "/api/v1/notifications", tokenB, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), decodeMap(t, w)["unread_count"])

		w = f.do(http.MethodPost, "/api/v1/notifications/read-all", tokenB, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), decodeMap(t, w)["marked_read"])

		// Shared access: download yes, owner views no.
		w = f.do(http.MethodGet, "/api/v1/sessions/"+completedID+"/book.pdf", tokenB, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = f.do(http.MethodGet, "/api/v1/sessions/"+completedID, tokenB, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		// The shared book shows up on the recipient's shelf.
		w = f.do(http.MethodGet, "/api/v1/library", tokenB, "")
		require.Equal(t, http.StatusOK, w.Code)
		shelf := decodeMap(t, w)
		entries, _ := shelf["entries"].([]any)
		require.Len(t, entries, 1)
		entry, _ := entries[0].(map[string]any)
		assert.Equal(t, "Il faro di carta", entry["title"])
		assert.Equal(t, true, entry["is_shared"])
	})

	t.Run("strangers are refused", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/users", "",
			`{"email": "carla@example.com", "password": "password123", "display_name": "Carla"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		strangerID, _ = decodeMap(t, w)["id"].(string)
		require.NotEmpty(t, strangerID)

		w = f.do(http.MethodPost, "/api/v1/users/login", "",
			`{"email": "carla@example.com", "password": "password123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		tokenC, _ = decodeMap(t, w)["token"].(string)

		w = f.do(http.MethodGet, "/api/v1/sessions/"+pipelineID, tokenC, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = f.do(http.MethodGet, "/api/v1/sessions/"+completedID+"/book.pdf", tokenC, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = f.do(http.MethodGet, "/api/v1/sessions/"+uuid.New().String(), tokenC, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("library and stats", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/library", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		shelf := decodeMap(t, w)
		assert.Equal(t, float64(2), shelf["count"])

		w = f.do(http.MethodGet, "/api/v1/library/stats", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code)
		stats := decodeMap(t, w)
		assert.Equal(t, float64(2), stats["total_books"])
		byStatus, _ := stats["by_status"].(map[string]any)
		require.NotNil(t, byStatus)
		assert.Equal(t, float64(1), byStatus["completed"])
	})

	t.Run("stats export is admin only", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/v1/library/stats.xlsx", tokenA, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		err := f.client.User.UpdateOneID(ownerID).SetRole(user.RoleAdmin).Exec(context.Background())
		require.NoError(t, err)

		w = f.do(http.MethodGet, "/api/v1/library/stats.xlsx", tokenA, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "expected a zip container")

		// Admins can export another user's stats.
		w = f.do(http.MethodGet, "/api/v1/library/stats.xlsx?user_id="+recipientID, tokenA, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health and version", func(t *testing.T) {
		w := f.do(http.MethodGet, "/health", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		health := decodeMap(t, w)
		assert.Equal(t, "healthy", health["status"])

		w = f.do(http.MethodGet, "/version", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fabula", decodeMap(t, w)["app"])
	})

	t.Run("logout and account deletion", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/users/logout", tokenA, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = f.do(http.MethodGet, "/api/v1/library", tokenA, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = f.do(http.MethodPost, "/api/v1/users/login", "",
			`{"email": "ada@example.com", "password": "password123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		tokenA, _ = decodeMap(t, w)["token"].(string)
		w = f.do(http.MethodGet, "/api/v1/library", tokenA, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = f.do(http.MethodDelete, "/api/v1/users/me", tokenC, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = f.do(http.MethodGet, "/api/v1/library", tokenC, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
