package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binkv/go-binkv/codec"
	"github.com/binkv/go-binkv/wire"
)

func TestNewPair(t *testing.T) {
	pair := codec.NewPair(codec.String, codec.Int64)

	t.Run("it encodes as an index-keyed map, not a list", func(t *testing.T) {
		v, err := pair.Encode(codec.Pair[string, int64]{First: "a", Second: 1})
		require.NoError(t, err)

		assert.Equal(t, wire.Map{
			{Key: wire.String("0"), Value: wire.String("a")},
			{Key: wire.String("1"), Value: wire.Integer(1)},
		}, v)
	})

	t.Run("it round-trips", func(t *testing.T) {
		original := codec.Pair[string, int64]{First: "a", Second: 1}

		v, err := pair.Encode(original)
		require.NoError(t, err)

		decoded, ok := pair.Decode(v)
		require.True(t, ok)
		assert.Equal(t, original, decoded)
	})

	t.Run("it misses when an index key is absent", func(t *testing.T) {
		_, ok := pair.Decode(wire.Map{
			{Key: wire.String("0"), Value: wire.String("a")},
		})
		assert.False(t, ok)
	})

	t.Run("it misses on a list wire shape", func(t *testing.T) {
		_, ok := pair.Decode(wire.List{wire.String("a"), wire.Integer(1)})
		assert.False(t, ok)
	})
}

func TestNewTriple(t *testing.T) {
	triple := codec.NewTriple(codec.String, codec.Int64, codec.Bool)

	t.Run("it produces keys exactly 0 1 2 in value order", func(t *testing.T) {
		v, err := triple.Encode(codec.Triple[string, int64, bool]{First: "x", Second: 9, Third: true})
		require.NoError(t, err)

		assert.Equal(t, wire.Map{
			{Key: wire.String("0"), Value: wire.String("x")},
			{Key: wire.String("1"), Value: wire.Integer(9)},
			{Key: wire.String("2"), Value: wire.Integer(1)},
		}, v)
	})

	t.Run("it misses when any expected index key is missing", func(t *testing.T) {
		_, ok := triple.Decode(wire.Map{
			{Key: wire.String("0"), Value: wire.String("x")},
			{Key: wire.String("2"), Value: wire.Integer(1)},
		})
		assert.False(t, ok)
	})
}

func TestNewQuad(t *testing.T) {
	quad := codec.NewQuad(codec.Int64, codec.Int64, codec.Int64, codec.Int64)

	t.Run("it round-trips", func(t *testing.T) {
		original := codec.Quad[int64, int64, int64, int64]{First: 1, Second: 2, Third: 3, Fourth: 4}

		v, err := quad.Encode(original)
		require.NoError(t, err)

		decoded, ok := quad.Decode(v)
		require.True(t, ok)
		assert.Equal(t, original, decoded)
	})
}
