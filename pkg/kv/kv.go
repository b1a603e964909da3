package kv

import (
	"context"
	"errors"
)

// ErrNotFound signals that a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal key-value contract. Values are whole-document snapshots,
// written and read verbatim; the store never interprets them.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
