package binkv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	binkv "github.com/binkv/go-binkv"
	"github.com/binkv/go-binkv/codec"
	"github.com/binkv/go-binkv/inmemory"
	"github.com/binkv/go-binkv/record"
	"github.com/binkv/go-binkv/wire"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("it round-trips typed fields through the store", func(t *testing.T) {
		repository := binkv.NewRepository(inmemory.NewStore(), record.New(codec.Int64))

		require.NoError(t, repository.Put(ctx, "counters", map[string]int64{
			"visits": 10,
			"errors": 2,
		}))

		decoded, err := repository.Get(ctx, "counters")
		require.NoError(t, err)

		assert.Equal(t, record.Field[int64]{Value: 10, Valid: true}, decoded.Fields["visits"])
		assert.Equal(t, record.Field[int64]{Value: 2, Valid: true}, decoded.Fields["errors"])
		assert.Equal(t, uint32(1), decoded.Generation)
	})

	t.Run("it propagates store misses", func(t *testing.T) {
		repository := binkv.NewRepository(inmemory.NewStore(), record.New(codec.Int64))

		_, err := repository.Get(ctx, "missing")
		assert.ErrorIs(t, err, binkv.ErrKeyNotFound)
	})

	t.Run("it surfaces a codec mismatch as a hard failure", func(t *testing.T) {
		store := inmemory.NewStore()

		require.NoError(t, store.Put(ctx, "k", []wire.Bin{
			{Name: "a", Value: wire.String("not an int")},
		}))

		repository := binkv.NewRepository(store, record.New(codec.Int64))

		_, err := repository.Get(ctx, "k")
		assert.ErrorIs(t, err, record.ErrTypeMismatch)
	})

	t.Run("it returns encode failures from PutOne", func(t *testing.T) {
		tracking := inmemory.NewTrackingStore(inmemory.NewStore())
		repository := binkv.NewRepository(tracking, record.New(codec.Int64))

		err := repository.PutOne(ctx, "k", "name-is-way-too-long", 1)
		assert.ErrorIs(t, err, wire.ErrInvalidName)
		assert.Empty(t, tracking.Recorded())
	})
}
