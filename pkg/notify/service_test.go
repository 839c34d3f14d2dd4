package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/pkg/config"
)

type fakeRows struct {
	created []createdRow
	fail    error
}

type createdRow struct {
	userID, kind, title, body, sessionID string
}

func (f *fakeRows) Create(_ context.Context, userID, kind, title, body, sessionID string) (*ent.Notification, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.created = append(f.created, createdRow{userID, kind, title, body, sessionID})
	return &ent.Notification{}, nil
}

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func captureMail(sent *[]sentMail, fail error) func(string, smtp.Auth, string, []string, []byte) error {
	return func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if fail != nil {
			return fail
		}
		*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
}

func TestService_NilSafe(t *testing.T) {
	var s *Service
	// Must not panic.
	s.NotifyBookCompleted(context.Background(), BookCompletedInput{UserID: "u1"})
	s.NotifyBookShared(context.Background(), BookSharedInput{RecipientID: "u2"})
	s.NotifyCritiqueReady(context.Background(), CritiqueReadyInput{UserID: "u1"})

	assert.Nil(t, NewService(nil, nil))
	assert.Nil(t, NewService(nil, &config.SMTPConfig{}))
}

func TestService_BookCompleted(t *testing.T) {
	rows := &fakeRows{}
	var sent []sentMail

	s := NewService(rows, &config.SMTPConfig{Host: "mail.local", Port: 25, From: "noreply@fabula.local"})
	require.NotNil(t, s)
	s.sendMail = captureMail(&sent, nil)

	s.NotifyBookCompleted(context.Background(), BookCompletedInput{
		UserID:    "u1",
		Email:     "reader@example.com",
		SessionID: "s1",
		Title:     "La Stanza Chiusa",
		Pages:     212,
	})

	require.Len(t, rows.created, 1)
	assert.Equal(t, "u1", rows.created[0].userID)
	assert.Equal(t, KindBookCompleted, rows.created[0].kind)
	assert.Equal(t, "s1", rows.created[0].sessionID)
	assert.Contains(t, rows.created[0].body, `"La Stanza Chiusa"`)
	assert.Contains(t, rows.created[0].body, "212 pagine")

	require.Len(t, sent, 1)
	assert.Equal(t, "mail.local:25", sent[0].addr)
	assert.Equal(t, "noreply@fabula.local", sent[0].from)
	assert.Equal(t, []string{"reader@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].msg, "To: reader@example.com")
	assert.Contains(t, sent[0].msg, "Subject: ")
	assert.Contains(t, sent[0].msg, "212 pagine")
}

func TestService_FailuresAreSwallowed(t *testing.T) {
	rows := &fakeRows{fail: errors.New("db down")}

	s := NewService(rows, &config.SMTPConfig{Host: "mail.local", Port: 25, From: "noreply@fabula.local"})
	require.NotNil(t, s)
	s.sendMail = captureMail(nil, errors.New("smtp down"))

	// Must not panic or propagate either failure.
	s.NotifyCritiqueReady(context.Background(), CritiqueReadyInput{
		UserID:    "u1",
		Email:     "reader@example.com",
		SessionID: "s1",
		Title:     "La Stanza Chiusa",
		Score:     8.5,
	})
	assert.Empty(t, rows.created)
}

func TestService_SkipsMissingTargets(t *testing.T) {
	rows := &fakeRows{}
	var sent []sentMail

	s := NewService(rows, &config.SMTPConfig{Host: "mail.local", Port: 25, From: "noreply@fabula.local"})
	require.NotNil(t, s)
	s.sendMail = captureMail(&sent, nil)

	// No recipient account yet: only the email goes out.
	s.NotifyBookShared(context.Background(), BookSharedInput{
		OwnerName:      "Anna",
		RecipientEmail: "friend@example.com",
		SessionID:      "s1",
		Title:          "La Stanza Chiusa",
	})
	assert.Empty(t, rows.created)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].msg, "Anna ti ha inviato")

	// No email on file: only the row is written.
	sent = nil
	s.NotifyBookShared(context.Background(), BookSharedInput{
		RecipientID: "u2",
		OwnerName:   "Anna",
		SessionID:   "s1",
		Title:       "La Stanza Chiusa",
	})
	assert.Len(t, rows.created, 1)
	assert.Empty(t, sent)
}

func TestService_RowsOnlyWhenSMTPDisabled(t *testing.T) {
	rows := &fakeRows{}

	s := NewService(rows, nil)
	require.NotNil(t, s)
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Error("email sent with SMTP disabled")
		return nil
	}

	s.NotifyBookCompleted(context.Background(), BookCompletedInput{
		UserID:    "u1",
		Email:     "reader@example.com",
		SessionID: "s1",
		Title:     "La Stanza Chiusa",
		Pages:     10,
	})
	assert.Len(t, rows.created, 1)
}
