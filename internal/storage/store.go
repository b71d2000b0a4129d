package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Store is durable key-value byte storage. Repositories load their key once
// at construction and save the whole serialized collection after every
// mutation. Load returns ErrNotFound when the key has never been saved.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}
