package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSecurityHeaders(t *testing.T) {
	engine := gin.New()
	engine.Use(securityHeaders())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", w.Header().Get("Permissions-Policy"))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"plain token without scheme", "abc123", ""},
		{"bare scheme", "Bearer", ""},
		{"scheme with empty token", "Bearer ", ""},
		{"standard", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"surrounding whitespace", "Bearer   abc123  ", "abc123"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bearerToken(tt.header))
		})
	}
}

func TestRequireAuthRejectsWithoutToken(t *testing.T) {
	s := &Server{}
	engine := gin.New()
	engine.GET("/protected", s.requireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"bare scheme", "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	s := &Server{}

	newEngine := func(u *ent.User) *gin.Engine {
		engine := gin.New()
		engine.GET("/admin",
			func(c *gin.Context) { c.Set(userContextKey, u) },
			s.requireAdmin(),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return engine
	}

	t.Run("regular user is refused", func(t *testing.T) {
		engine := newEngine(&ent.User{ID: "u1", Role: user.RoleUser})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		engine := newEngine(&ent.User{ID: "u1", Role: user.RoleAdmin})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCurrentUserOutsideAuth(t *testing.T) {
	engine := gin.New()
	var got *ent.User
	engine.GET("/x", func(c *gin.Context) {
		got = currentUser(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Nil(t, got)
}
