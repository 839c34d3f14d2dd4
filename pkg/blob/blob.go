// Package blob stores rendered books and cover images behind a small
// byte-store interface with local-filesystem and GCS backends.
package blob

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/fabula-ai/fabula/pkg/config"
)

// ErrNotExist reports a missing blob. Backend failures are BlobUnavailable.
var ErrNotExist = errors.New("blob does not exist")

// BlobUnavailable wraps a backend failure, as opposed to a missing blob.
type BlobUnavailable struct {
	Op  string
	Key string
	Err error
}

func (e *BlobUnavailable) Error() string {
	return fmt.Sprintf("blob store %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *BlobUnavailable) Unwrap() error { return e.Err }

// Store is an opaque byte store addressed by slash-separated keys.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// New picks the backend from the configured base URI: gs://bucket[/prefix]
// for GCS, file://dir or a bare path for the local filesystem.
func New(ctx context.Context, cfg *config.BlobConfig) (Store, error) {
	uri := ""
	if cfg != nil {
		uri = strings.TrimSpace(cfg.BaseURI)
	}
	switch {
	case uri == "":
		return nil, errors.New("blob base_uri is not configured")
	case strings.HasPrefix(uri, "gs://"):
		return NewGCS(ctx, uri)
	case strings.HasPrefix(uri, "file://"):
		return NewLocal(strings.TrimPrefix(uri, "file://"))
	default:
		return NewLocal(uri)
	}
}

// CoverKey is where a session's cover image lives. Owned sessions scope the
// key under the user so per-user cleanup stays a prefix operation.
func CoverKey(userID, sessionID string) string {
	name := sessionID + "_cover.png"
	if userID == "" {
		return path.Join("covers", name)
	}
	return path.Join("users", userID, "covers", name)
}

// BookKey is where a rendered artifact lives.
func BookKey(userID, filename string) string {
	if userID == "" {
		return path.Join("books", filename)
	}
	return path.Join("users", userID, "books", filename)
}

// LegacyKey strips the user scope from a key: blobs stored before user
// scoping live at the bare covers/ and books/ paths. Empty when the key is
// not user-scoped.
func LegacyKey(key string) string {
	parts := strings.SplitN(key, "/", 3)
	if len(parts) == 3 && parts[0] == "users" {
		return parts[2]
	}
	return ""
}

// Fetch reads a key, retrying the unscoped variant on a miss so books and
// covers stored before user scoping stay readable.
func Fetch(ctx context.Context, s Store, key string) ([]byte, error) {
	data, err := s.Get(ctx, key)
	if err == nil || !errors.Is(err, ErrNotExist) {
		return data, err
	}
	if legacy := LegacyKey(key); legacy != "" {
		return s.Get(ctx, legacy)
	}
	return nil, err
}
