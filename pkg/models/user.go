package models

import "time"

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
}

// LoginRequest exchanges credentials for an API token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreditBalance reports the remaining weekly generation credits per tier.
type CreditBalance struct {
	Flash       int       `json:"flash"`
	Pro         int       `json:"pro"`
	Ultra       int       `json:"ultra"`
	NextResetAt time.Time `json:"next_reset_at"`
}

// ForMode returns the balance of the pool backing the given tier.
func (b CreditBalance) ForMode(m Mode) int {
	switch m {
	case ModeFlash:
		return b.Flash
	case ModePro:
		return b.Pro
	case ModeUltra:
		return b.Ultra
	}
	return 0
}
