package storage

import (
	"context"
	"io"
)

// ObjectStore persists uploaded photos. Keys are opaque relative paths like
// "uploads/<upload-id>.jpg".
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data io.Reader) error

	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	DeleteObject(ctx context.Context, key string) error
}
