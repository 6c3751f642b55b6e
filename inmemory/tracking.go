package inmemory

import (
	"context"
	"sync"

	binkv "github.com/binkv/go-binkv"
	"github.com/binkv/go-binkv/wire"
)

// Write is one recorded Put operation: the key written and the bins sent.
type Write struct {
	Key  string
	Bins []wire.Bin
}

// TrackingStore is a binkv.Store wrapper to keep track of the writes
// performed through it, useful for assertions in tests.
type TrackingStore struct {
	binkv.Store

	mx       sync.Mutex
	recorded []Write
}

// NewTrackingStore wraps the given store to track its writes.
func NewTrackingStore(store binkv.Store) *TrackingStore {
	return &TrackingStore{Store: store}
}

// Recorded returns the writes recorded so far, in order.
func (ts *TrackingStore) Recorded() []Write {
	ts.mx.Lock()
	defer ts.mx.Unlock()

	return ts.recorded
}

// Put implements the binkv.Putter interface, recording the write when the
// wrapped store accepts it.
func (ts *TrackingStore) Put(ctx context.Context, key string, bins []wire.Bin) error {
	err := ts.Store.Put(ctx, key, bins)

	if err == nil {
		ts.mx.Lock()
		ts.recorded = append(ts.recorded, Write{Key: key, Bins: bins})
		ts.mx.Unlock()
	}

	return err
}
