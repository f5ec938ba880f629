package port

import (
	"context"
	"io"
	"time"
)

// ObjectStorage abstracts the media object store. Implementations are bound
// to a single bucket at construction time; callers address objects by key
// only.
type ObjectStorage interface {
	// Put streams an object to storage and returns its location URL.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	// Remove deletes an object. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for an object.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
