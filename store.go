package binkv

import (
	"context"
	"errors"

	"github.com/binkv/go-binkv/wire"
)

// ErrKeyNotFound is returned by Store.Get when no record exists at the
// requested key.
var ErrKeyNotFound = errors.New("binkv: key not found")

// Getter reads a single record from the store.
type Getter interface {
	Get(ctx context.Context, key string) (wire.Record, error)
}

// Putter writes a set of bins to the record at the given key.
type Putter interface {
	Put(ctx context.Context, key string, bins []wire.Bin) error
}

// Store is the boundary to the external record store client. Connection
// handling, persistence and the network protocol live behind it; this module
// only exchanges wire shapes across it.
type Store interface {
	Getter
	Putter
}

// FusedStore provides a convenient way to fuse together separate
// implementations of a Getter and a Putter, and use them as a Store.
type FusedStore struct {
	Getter
	Putter
}
