package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
)

// GCS stores blobs in a Google Cloud Storage bucket, optionally under a
// key prefix. Credentials come from the ambient environment.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCS parses gs://bucket[/prefix] and opens the client.
func NewGCS(ctx context.Context, baseURI string) (*GCS, error) {
	bucket, prefix, err := splitGCSURI(baseURI)
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("open gcs client: %w", err)
	}
	return &GCS{client: client, bucket: bucket, prefix: prefix}, nil
}

func splitGCSURI(uri string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// uri: %q", uri)
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", "", fmt.Errorf("gs:// uri has no bucket: %q", uri)
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	return bucket, prefix, nil
}

func (g *GCS) object(key string) *storage.ObjectHandle {
	if g.prefix != "" {
		key = path.Join(g.prefix, key)
	}
	return g.client.Bucket(g.bucket).Object(key)
}

func (g *GCS) Put(ctx context.Context, key string, data []byte, contentType string) error {
	w := g.object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return &BlobUnavailable{Op: "put", Key: key, Err: err}
	}
	if err := w.Close(); err != nil {
		return &BlobUnavailable{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (g *GCS) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := g.object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotExist)
	}
	if err != nil {
		return nil, &BlobUnavailable{Op: "get", Key: key, Err: err}
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &BlobUnavailable{Op: "get", Key: key, Err: err}
	}
	return data, nil
}

func (g *GCS) Delete(ctx context.Context, key string) error {
	err := g.object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%s: %w", key, ErrNotExist)
	}
	if err != nil {
		return &BlobUnavailable{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// URL returns the gs:// address of a key.
func (g *GCS) URL(key string) string {
	if g.prefix != "" {
		key = path.Join(g.prefix, key)
	}
	return fmt.Sprintf("gs://%s/%s", g.bucket, key)
}
