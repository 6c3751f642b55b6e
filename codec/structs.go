package codec

import (
	"fmt"
	"strconv"

	"github.com/binkv/go-binkv/wire"
)

// Field describes one named field of a struct Codec: how to read it from a
// value of T, how to write it back into one, and the Codec for its type.
// Build instances with NewField.
type Field[T any] struct {
	name   string
	encode func(T) (wire.Value, error)
	decode func(wire.Value, *T) bool
}

// NewField binds a field name to its accessor pair and element Codec.
//
// Accessors take the place of reflection: the full field set of a type is
// enumerated once, where its Codec is built, and the resulting Codec carries
// no runtime type inspection.
func NewField[T, F any](name string, get func(T) F, set func(*T, F), c Codec[F]) Field[T] {
	return Field[T]{
		name: name,
		encode: func(v T) (wire.Value, error) {
			return c.Encode(get(v))
		},
		decode: func(v wire.Value, dst *T) bool {
			decoded, ok := c.Decode(v)
			if ok {
				set(dst, decoded)
			}

			return ok
		},
	}
}

// NewStruct returns a Codec for T encoded as a wire map keyed by field name.
// Field order on the wire follows the order fields are listed here.
//
// Decoding requires the wire value to be a map containing every declared
// field, each decodable by its own Codec; anything less fails the decode.
func NewStruct[T any](fields ...Field[T]) Codec[T] {
	return Fuse[T](
		AsEncoderFunc(func(v T) (wire.Value, error) {
			entries := make(wire.Map, 0, len(fields))

			for _, field := range fields {
				encoded, err := field.encode(v)
				if err != nil {
					return nil, fmt.Errorf("codec.Struct: failed to encode field '%s', %w", field.name, err)
				}

				entries = append(entries, wire.MapEntry{
					Key:   wire.String(field.name),
					Value: encoded,
				})
			}

			return entries, nil
		}),
		AsDecoderFunc(func(v wire.Value) (T, bool) {
			var value T

			entries, ok := v.(wire.Map)
			if !ok {
				return value, false
			}

			for _, field := range fields {
				fieldValue, found := entries.Lookup(wire.String(field.name))
				if !found || !field.decode(fieldValue, &value) {
					var zeroValue T
					return zeroValue, false
				}
			}

			return value, true
		}),
	)
}

// Slot describes one position of a positional Codec built with NewSlots.
type Slot[T any] struct {
	encode func(T) (wire.Value, error)
	decode func(wire.Value, *T) bool
}

// NewSlot binds a positional slot to its accessor pair and element Codec.
func NewSlot[T, F any](get func(T) F, set func(*T, F), c Codec[F]) Slot[T] {
	field := NewField("", get, set, c)

	return Slot[T]{
		encode: field.encode,
		decode: field.decode,
	}
}

// NewSlots returns a Codec for a heterogeneous fixed-length sequence: an
// ordered run of possibly different-typed slots, encoded with the same
// index-keyed map shape as tuples. The arity and per-slot types are fixed
// here, when the Codec is built; decoding never infers them from wire data.
//
// Slots nest: a slot's Codec may itself be built with NewSlots, giving
// recursively structured sequences.
func NewSlots[T any](slots ...Slot[T]) Codec[T] {
	fields := make([]Field[T], 0, len(slots))

	for i, slot := range slots {
		fields = append(fields, Field[T]{
			name:   strconv.Itoa(i),
			encode: slot.encode,
			decode: slot.decode,
		})
	}

	return NewStruct(fields...)
}
