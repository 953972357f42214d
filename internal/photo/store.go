package photo

import (
	"context"
	"sync"
)

// Store is the durable destination for transcoded photos.
//
//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	// Ensure prepares the destination. Idempotent; cheap after the first success.
	Ensure(ctx context.Context) error
	Save(ctx context.Context, name string, data []byte, contentType string) error
	Delete(ctx context.Context, name string) error
	// PublicURL returns the URL clients use to fetch name. baseURL is the
	// inbound request's scheme://host; stores with their own host ignore it.
	PublicURL(baseURL, name string) string
}

// ensureOnce runs fn until it succeeds once. Unlike sync.Once a failure is retried on the next call.
type ensureOnce struct {
	mu   sync.Mutex
	done bool
}

func (e *ensureOnce) Do(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return nil
	}
	if err := fn(); err != nil {
		return err
	}
	e.done = true
	return nil
}
