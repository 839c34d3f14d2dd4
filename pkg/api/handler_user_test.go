package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandlerValidation(t *testing.T) {
	s := &Server{}
	engine := gin.New()
	engine.POST("/users", s.registerHandler)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"bad email", `{"email": "not-an-email", "password": "password123", "display_name": "Ada"}`},
		{"short password", `{"email": "ada@example.com", "password": "pw", "display_name": "Ada"}`},
		{"missing display name", `{"email": "ada@example.com", "password": "password123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(engine, http.MethodPost, "/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginHandlerValidation(t *testing.T) {
	s := &Server{}
	engine := gin.New()
	engine.POST("/users/login", s.loginHandler)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"missing password", `{"email": "ada@example.com"}`},
		{"bad email", `{"email": "nope", "password": "password123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(engine, http.MethodPost, "/users/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
