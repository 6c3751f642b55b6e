// Package inmemory provides in-memory binkv.Store implementations,
// primarily useful for testing purposes.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	binkv "github.com/binkv/go-binkv"
	"github.com/binkv/go-binkv/wire"
)

// Store is an in-memory binkv.Store implementation. Put merges the given
// bins into the existing record at the key and bumps its generation, the
// way the storage engine this models does.
//
// Use NewStore to create a new instance of this type.
type Store struct {
	mx      sync.RWMutex
	records map[string]wire.Record
}

// NewStore creates a new, empty in-memory Store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]wire.Record),
	}
}

// Get implements the binkv.Getter interface.
func (s *Store) Get(_ context.Context, key string) (wire.Record, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	rec, ok := s.records[key]
	if !ok {
		return wire.Record{}, fmt.Errorf("inmemory.Store: '%s', %w", key, binkv.ErrKeyNotFound)
	}

	bins := make(map[string]wire.Value, len(rec.Bins))
	for name, value := range rec.Bins {
		bins[name] = value
	}

	return wire.Record{
		Bins:       bins,
		Generation: rec.Generation,
		Expiration: rec.Expiration,
	}, nil
}

// Put implements the binkv.Putter interface.
func (s *Store) Put(_ context.Context, key string, bins []wire.Bin) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	rec, ok := s.records[key]
	if !ok {
		rec = wire.Record{Bins: make(map[string]wire.Value)}
	}

	for _, bin := range bins {
		rec.Bins[bin.Name] = bin.Value
	}

	rec.Generation++
	s.records[key] = rec

	return nil
}
