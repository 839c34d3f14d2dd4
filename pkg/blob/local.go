package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local stores blobs as files under a root directory. Keys map to relative
// paths; parent directories are created on write.
type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("local blob root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve blob root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &Local{root: abs}, nil
}

func (l *Local) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(l.root, clean), nil
}

func (l *Local) Put(_ context.Context, key string, data []byte, _ string) error {
	p, err := l.path(key)
	if err != nil {
		return &BlobUnavailable{Op: "put", Key: key, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return &BlobUnavailable{Op: "put", Key: key, Err: err}
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return &BlobUnavailable{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (l *Local) Get(_ context.Context, key string) ([]byte, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, &BlobUnavailable{Op: "get", Key: key, Err: err}
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotExist)
	}
	if err != nil {
		return nil, &BlobUnavailable{Op: "get", Key: key, Err: err}
	}
	return data, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	p, err := l.path(key)
	if err != nil {
		return &BlobUnavailable{Op: "delete", Key: key, Err: err}
	}
	err = os.Remove(p)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", key, ErrNotExist)
	}
	if err != nil {
		return &BlobUnavailable{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// URL returns the absolute filesystem path for a key.
func (l *Local) URL(key string) string {
	p, err := l.path(key)
	if err != nil {
		return ""
	}
	return p
}
