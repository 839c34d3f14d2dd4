// Package notify fans completion events out to the in-app notification feed
// and, when configured, email. Delivery is best effort: a failed send is
// logged and swallowed, the pipeline never fails on it.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/config"
)

// Event kinds stored on notification rows.
const (
	KindBookCompleted = "book_completed"
	KindBookShared    = "book_shared"
	KindCritiqueReady = "critique_ready"
)

// Rows is the in-app sink, satisfied by services.NotificationService.
type Rows interface {
	Create(ctx context.Context, userID, kind, title, body, sessionID string) (*ent.Notification, error)
}

// BookCompletedInput carries a finished book event.
type BookCompletedInput struct {
	UserID    string
	Email     string
	SessionID string
	Title     string
	Pages     int
}

// BookSharedInput carries a share event for the recipient.
type BookSharedInput struct {
	OwnerName      string
	RecipientID    string // empty when the recipient has no account yet
	RecipientEmail string
	SessionID      string
	Title          string
}

// CritiqueReadyInput carries a finished critique event.
type CritiqueReadyInput struct {
	UserID    string
	Email     string
	SessionID string
	Title     string
	Score     float64
}

// Service delivers notifications.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	rows   Rows
	smtp   *config.SMTPConfig
	logger *slog.Logger

	// sendMail is swapped in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewService wires the sinks. Returns nil when neither sink is configured.
func NewService(rows Rows, smtpCfg *config.SMTPConfig) *Service {
	if rows == nil && !smtpCfg.Enabled() {
		return nil
	}
	return &Service{
		rows:     rows,
		smtp:     smtpCfg,
		logger:   slog.Default().With("component", "notify-service"),
		sendMail: smtp.SendMail,
	}
}

// NotifyBookCompleted tells the owner their book is rendered and stored.
func (s *Service) NotifyBookCompleted(ctx context.Context, in BookCompletedInput) {
	if s == nil {
		return
	}
	title := "Il tuo libro è pronto"
	body := fmt.Sprintf("%q è stato completato: %d pagine ti aspettano in libreria.", in.Title, in.Pages)
	s.deliver(ctx, in.UserID, in.Email, in.SessionID, KindBookCompleted, title, body)
}

// NotifyBookShared tells the recipient a book was shared with them.
func (s *Service) NotifyBookShared(ctx context.Context, in BookSharedInput) {
	if s == nil {
		return
	}
	title := "Un libro è stato condiviso con te"
	body := fmt.Sprintf("%s ti ha inviato %q.", in.OwnerName, in.Title)
	s.deliver(ctx, in.RecipientID, in.RecipientEmail, in.SessionID, KindBookShared, title, body)
}

// NotifyCritiqueReady tells the owner the literary critique landed.
func (s *Service) NotifyCritiqueReady(ctx context.Context, in CritiqueReadyInput) {
	if s == nil {
		return
	}
	title := "La recensione del tuo libro è arrivata"
	body := fmt.Sprintf("%q ha ricevuto un voto di %.1f/10.", in.Title, in.Score)
	s.deliver(ctx, in.UserID, in.Email, in.SessionID, KindCritiqueReady, title, body)
}

func (s *Service) deliver(ctx context.Context, userID, email, sessionID, kind, title, body string) {
	if s.rows != nil && userID != "" {
		if _, err := s.rows.Create(ctx, userID, kind, title, body, sessionID); err != nil {
			s.logger.Error("Failed to store notification",
				"kind", kind,
				"user_id", userID,
				"session_id", sessionID,
				"error", err)
		}
	}

	if s.smtp.Enabled() && email != "" {
		if err := s.email(email, title, body); err != nil {
			s.logger.Error("Failed to send notification email",
				"kind", kind,
				"session_id", sessionID,
				"error", err)
		}
	}
}

func (s *Service) email(to, subject, body string) error {
	var auth smtp.Auth
	if s.smtp.Username != "" {
		auth = smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)
	}

	var msg strings.Builder
	msg.WriteString("From: " + s.smtp.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body + "\r\n")

	return s.sendMail(s.smtp.Addr(), auth, s.smtp.From, []string{to}, []byte(msg.String()))
}
