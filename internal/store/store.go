// Package store holds the key/value collection store backing all
// persistent state. Each collection is one self-describing JSON blob
// under a well-known key; mutations are whole-collection writes.
package store

import (
	"context"
	"errors"
)

const (
	KeyUsers         = "users"
	KeyEvents        = "events"
	KeyRegistrations = "registrations"
	KeyCurrentUser   = "currentUser"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is the read/write contract the repositories depend on. An
// absent key is reported as ErrKeyNotFound and callers treat it the
// same as an empty collection.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
