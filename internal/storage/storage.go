package storage

import (
	"context"
	"io"
	"time"
)

// Storage abstracts storage of exported documents and site photos. The local
// filesystem implementation serves development; S3 serves production.
type Storage interface {
	// Save writes the object at key (a unique path such as
	// "invoices/<id>.pdf") and returns its URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// SignedURL returns a time-limited retrieval URL for key.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Delete removes the object at key. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, key string) error
}
