package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fabula-ai/fabula/ent"
)

// stubUser injects a fake authenticated account so handlers can be exercised
// without the auth middleware. Only validation paths may run: they return
// before any service is touched, so a zero-value Server is enough.
func stubUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userContextKey, &ent.User{ID: id})
	}
}

func performJSON(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateSessionHandlerValidation(t *testing.T) {
	s := &Server{}
	engine := gin.New()
	engine.POST("/sessions", stubUser("u1"), s.createSessionHandler)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"form_data": `},
		{"missing form data", `{"llm_model": "gemini-2.5-flash"}`},
		{"missing model", `{"form_data": "Un giallo a Venezia"}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(engine, http.MethodPost, "/sessions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid request")
		})
	}
}

func TestListSessionsHandlerValidation(t *testing.T) {
	s := &Server{}
	engine := gin.New()
	engine.GET("/sessions", stubUser("u1"), s.listSessionsHandler)

	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{"unknown status", "?status=brewing", "invalid status filter"},
		{"zero limit", "?limit=0", "limit must be between"},
		{"huge limit", "?limit=500", "limit must be between"},
		{"non-numeric limit", "?limit=abc", "limit must be between"},
		{"negative offset", "?offset=-1", "offset must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(engine, http.MethodGet, "/sessions"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestListNotificationsHandlerValidation(t *testing.T) {
	s := &Server{}
	engine := gin.New()
	engine.GET("/notifications", stubUser("u1"), s.listNotificationsHandler)

	tests := []struct {
		name  string
		query string
	}{
		{"zero limit", "?limit=0"},
		{"over max limit", "?limit=500"},
		{"negative offset", "?offset=-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(engine, http.MethodGet, "/notifications"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
