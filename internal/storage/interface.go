// Package storage provides the persisted key-value store behind pairup's
// engagement state and its backend selection.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("storage: store is closed")

// Store is a string-keyed, string-valued persistent store.
//
// Get reports ok=false for a missing key; a missing key is not an error.
// Operations are independent round trips; no multi-key atomicity is offered.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
