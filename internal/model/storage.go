package model

import (
	"context"
	"io"
)

// Storage stores media objects (avatars) and resolves their public URLs.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, reader io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
