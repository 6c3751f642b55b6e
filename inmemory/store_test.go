package inmemory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	binkv "github.com/binkv/go-binkv"
	"github.com/binkv/go-binkv/inmemory"
	"github.com/binkv/go-binkv/wire"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("it misses on unknown keys", func(t *testing.T) {
		store := inmemory.NewStore()

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, binkv.ErrKeyNotFound)
	})

	t.Run("it merges bins and bumps the generation on put", func(t *testing.T) {
		store := inmemory.NewStore()

		require.NoError(t, store.Put(ctx, "k", []wire.Bin{
			{Name: "a", Value: wire.Integer(1)},
		}))
		require.NoError(t, store.Put(ctx, "k", []wire.Bin{
			{Name: "b", Value: wire.Integer(2)},
		}))

		rec, err := store.Get(ctx, "k")
		require.NoError(t, err)

		assert.Equal(t, uint32(2), rec.Generation)
		assert.Equal(t, wire.Integer(1), rec.Bins["a"])
		assert.Equal(t, wire.Integer(2), rec.Bins["b"])
	})

	t.Run("it hands out copies, not its own state", func(t *testing.T) {
		store := inmemory.NewStore()

		require.NoError(t, store.Put(ctx, "k", []wire.Bin{
			{Name: "a", Value: wire.Integer(1)},
		}))

		rec, err := store.Get(ctx, "k")
		require.NoError(t, err)

		rec.Bins["a"] = wire.Integer(99)

		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, wire.Integer(1), again.Bins["a"])
	})
}

func TestTrackingStore(t *testing.T) {
	ctx := context.Background()

	t.Run("it records successful writes in order", func(t *testing.T) {
		tracking := inmemory.NewTrackingStore(inmemory.NewStore())

		first := []wire.Bin{{Name: "a", Value: wire.Integer(1)}}
		second := []wire.Bin{{Name: "b", Value: wire.String("x")}}

		require.NoError(t, tracking.Put(ctx, "k1", first))
		require.NoError(t, tracking.Put(ctx, "k2", second))

		recorded := tracking.Recorded()
		require.Len(t, recorded, 2)
		assert.Equal(t, inmemory.Write{Key: "k1", Bins: first}, recorded[0])
		assert.Equal(t, inmemory.Write{Key: "k2", Bins: second}, recorded[1])
	})

	t.Run("it still reads through to the wrapped store", func(t *testing.T) {
		tracking := inmemory.NewTrackingStore(inmemory.NewStore())

		require.NoError(t, tracking.Put(ctx, "k", []wire.Bin{{Name: "a", Value: wire.Integer(1)}}))

		rec, err := tracking.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, wire.Integer(1), rec.Bins["a"])
	})
}
