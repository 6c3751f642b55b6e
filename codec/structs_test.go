package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binkv/go-binkv/codec"
	"github.com/binkv/go-binkv/wire"
)

type player struct {
	Name  string
	Score int64
}

var playerCodec = codec.NewStruct(
	codec.NewField("name",
		func(p player) string { return p.Name },
		func(p *player, v string) { p.Name = v },
		codec.String,
	),
	codec.NewField("score",
		func(p player) int64 { return p.Score },
		func(p *player, v int64) { p.Score = v },
		codec.Int64,
	),
)

func TestNewStruct(t *testing.T) {
	t.Run("it encodes as a map keyed by field name", func(t *testing.T) {
		v, err := playerCodec.Encode(player{Name: "ada", Score: 42})
		require.NoError(t, err)

		assert.Equal(t, wire.Map{
			{Key: wire.String("name"), Value: wire.String("ada")},
			{Key: wire.String("score"), Value: wire.Integer(42)},
		}, v)
	})

	t.Run("it round-trips", func(t *testing.T) {
		original := player{Name: "ada", Score: 42}

		v, err := playerCodec.Encode(original)
		require.NoError(t, err)

		decoded, ok := playerCodec.Decode(v)
		require.True(t, ok)
		assert.Equal(t, original, decoded)
	})

	t.Run("it misses when a declared field is absent", func(t *testing.T) {
		_, ok := playerCodec.Decode(wire.Map{
			{Key: wire.String("name"), Value: wire.String("ada")},
		})
		assert.False(t, ok)
	})

	t.Run("it misses when a field has the wrong shape", func(t *testing.T) {
		_, ok := playerCodec.Decode(wire.Map{
			{Key: wire.String("name"), Value: wire.String("ada")},
			{Key: wire.String("score"), Value: wire.String("forty-two")},
		})
		assert.False(t, ok)
	})
}

type match struct {
	Home player
	Away player
	Year int32
}

var matchCodec = codec.NewSlots(
	codec.NewSlot(
		func(m match) player { return m.Home },
		func(m *match, v player) { m.Home = v },
		playerCodec,
	),
	codec.NewSlot(
		func(m match) player { return m.Away },
		func(m *match, v player) { m.Away = v },
		playerCodec,
	),
	codec.NewSlot(
		func(m match) int32 { return m.Year },
		func(m *match, v int32) { m.Year = v },
		codec.Int32,
	),
)

func TestNewSlots(t *testing.T) {
	t.Run("it uses the tuple wire shape, recursively", func(t *testing.T) {
		v, err := matchCodec.Encode(match{
			Home: player{Name: "ada", Score: 3},
			Away: player{Name: "bob", Score: 1},
			Year: 1951,
		})
		require.NoError(t, err)

		assert.Equal(t, wire.Map{
			{Key: wire.String("0"), Value: wire.Map{
				{Key: wire.String("name"), Value: wire.String("ada")},
				{Key: wire.String("score"), Value: wire.Integer(3)},
			}},
			{Key: wire.String("1"), Value: wire.Map{
				{Key: wire.String("name"), Value: wire.String("bob")},
				{Key: wire.String("score"), Value: wire.Integer(1)},
			}},
			{Key: wire.String("2"), Value: wire.Integer(1951)},
		}, v)
	})

	t.Run("it round-trips nested structures", func(t *testing.T) {
		original := match{
			Home: player{Name: "ada", Score: 3},
			Away: player{Name: "bob", Score: 1},
			Year: 1951,
		}

		v, err := matchCodec.Encode(original)
		require.NoError(t, err)

		decoded, ok := matchCodec.Decode(v)
		require.True(t, ok)
		assert.Equal(t, original, decoded)
	})

	t.Run("it misses when a slot is absent", func(t *testing.T) {
		_, ok := matchCodec.Decode(wire.Map{
			{Key: wire.String("0"), Value: wire.Map{
				{Key: wire.String("name"), Value: wire.String("ada")},
				{Key: wire.String("score"), Value: wire.Integer(3)},
			}},
		})
		assert.False(t, ok)
	})
}
