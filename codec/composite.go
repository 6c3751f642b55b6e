package codec

import (
	"fmt"

	"github.com/binkv/go-binkv/wire"
)

// NewList returns a Codec for slices of E, built by composing the given
// element Codec. Encoding preserves element order.
//
// Decoding requires the wire value to be a list whose every element decodes
// through the element Codec: a single incompatible element fails the whole
// decode, it never yields a partial slice. Lists written as plain integers
// under older formats still decode into float or narrow-integer slices,
// because the element Codecs accept the integer wire shape themselves.
func NewList[E any](element Codec[E]) Codec[[]E] {
	return Fuse[[]E](
		AsEncoderFunc(func(values []E) (wire.Value, error) {
			list := make(wire.List, 0, len(values))

			for i, v := range values {
				encoded, err := element.Encode(v)
				if err != nil {
					return nil, fmt.Errorf("codec.List: failed to encode element %d, %w", i, err)
				}

				list = append(list, encoded)
			}

			return list, nil
		}),
		AsDecoderFunc(func(v wire.Value) ([]E, bool) {
			list, ok := v.(wire.List)
			if !ok {
				return nil, false
			}

			values := make([]E, 0, len(list))

			for _, elem := range list {
				decoded, ok := element.Decode(elem)
				if !ok {
					return nil, false
				}

				values = append(values, decoded)
			}

			return values, true
		}),
	)
}

// NewArray returns a Codec for fixed-length sequences of E, represented as
// slices of exactly the given size. Encoding fails on a slice of any other
// length; decoding additionally requires the wire list to have exactly that
// many elements.
func NewArray[E any](element Codec[E], size int) Codec[[]E] {
	list := NewList(element)

	return Fuse[[]E](
		AsEncoderFunc(func(values []E) (wire.Value, error) {
			if len(values) != size {
				return nil, fmt.Errorf("codec.Array: expected %d elements, got %d", size, len(values))
			}

			return list.Encode(values)
		}),
		AsDecoderFunc(func(v wire.Value) ([]E, bool) {
			values, ok := list.Decode(v)
			if !ok || len(values) != size {
				return nil, false
			}

			return values, true
		}),
	)
}

// NewMap returns a Codec for maps from K to V, built by composing the given
// key and value Codecs.
//
// Decoding requires the wire value to be a map and every key/value pair to
// decode: one incompatible pair fails the whole map decode. This is stricter
// than list decoding on purpose, as a partially-decoded map would silently
// lose entries.
func NewMap[K comparable, V any](key Codec[K], value Codec[V]) Codec[map[K]V] {
	return Fuse[map[K]V](
		AsEncoderFunc(func(values map[K]V) (wire.Value, error) {
			entries := make(wire.Map, 0, len(values))

			for k, v := range values {
				encodedKey, err := key.Encode(k)
				if err != nil {
					return nil, fmt.Errorf("codec.Map: failed to encode key %v, %w", k, err)
				}

				encodedValue, err := value.Encode(v)
				if err != nil {
					return nil, fmt.Errorf("codec.Map: failed to encode value for key %v, %w", k, err)
				}

				entries = append(entries, wire.MapEntry{Key: encodedKey, Value: encodedValue})
			}

			return entries, nil
		}),
		AsDecoderFunc(func(v wire.Value) (map[K]V, bool) {
			entries, ok := v.(wire.Map)
			if !ok {
				return nil, false
			}

			values := make(map[K]V, len(entries))

			for _, entry := range entries {
				decodedKey, ok := key.Decode(entry.Key)
				if !ok {
					return nil, false
				}

				decodedValue, ok := value.Decode(entry.Value)
				if !ok {
					return nil, false
				}

				values[decodedKey] = decodedValue
			}

			return values, true
		}),
	)
}
