package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabula-ai/fabula/pkg/config"
)

func TestRegisterRoutesCoversSurface(t *testing.T) {
	s := NewServer(Deps{Config: &config.Config{}})

	registered := make(map[string]bool)
	for _, r := range s.engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /version",
		"POST /api/v1/users",
		"POST /api/v1/users/login",
		"POST /api/v1/users/logout",
		"DELETE /api/v1/users/me",
		"GET /api/v1/users/me/credits",
		"POST /api/v1/sessions",
		"GET /api/v1/sessions",
		"GET /api/v1/sessions/:id",
		"DELETE /api/v1/sessions/:id",
		"POST /api/v1/sessions/:id/questions",
		"PUT /api/v1/sessions/:id/answers",
		"POST /api/v1/sessions/:id/draft",
		"PUT /api/v1/sessions/:id/draft",
		"POST /api/v1/sessions/:id/draft/validate",
		"POST /api/v1/sessions/:id/outline",
		"PUT /api/v1/sessions/:id/outline",
		"POST /api/v1/sessions/:id/write",
		"POST /api/v1/sessions/:id/write/resume",
		"POST /api/v1/sessions/:id/write/cancel",
		"GET /api/v1/sessions/:id/progress",
		"GET /api/v1/sessions/:id/book.pdf",
		"GET /api/v1/sessions/:id/book.epub",
		"GET /api/v1/sessions/:id/book.docx",
		"POST /api/v1/sessions/:id/share",
		"POST /api/v1/sessions/:id/critique",
		"GET /api/v1/library",
		"GET /api/v1/library/stats",
		"GET /api/v1/library/stats.xlsx",
		"GET /api/v1/notifications",
		"POST /api/v1/notifications/:id/read",
		"POST /api/v1/notifications/read-all",
	}

	for _, route := range want {
		assert.True(t, registered[route], "route not registered: %s", route)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	s := NewServer(Deps{Config: &config.Config{}})

	w := performJSON(s.engine, http.MethodGet, "/api/v1/nonsense", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
