package codec

import (
	"fmt"

	"github.com/binkv/go-binkv/wire"
)

// Transformed is a Codec for T that rides on a Codec for an underlying type
// U, mapping values across the two with a caller-supplied function pair.
// Useful for domain types that are a validated or renamed view of a type
// that already has a Codec.
type Transformed[T, U any] struct {
	inner Codec[U]
	to    func(T) (U, error)
	from  func(U) (T, bool)
}

// Encode implements the codec.Encoder interface.
func (t Transformed[T, U]) Encode(value T) (wire.Value, error) {
	mapped, err := t.to(value)
	if err != nil {
		return nil, fmt.Errorf("codec.Transformed: failed to map value, %w", err)
	}

	encoded, err := t.inner.Encode(mapped)
	if err != nil {
		return nil, fmt.Errorf("codec.Transformed: inner encoder failed, %w", err)
	}

	return encoded, nil
}

// Decode implements the codec.Decoder interface.
func (t Transformed[T, U]) Decode(value wire.Value) (T, bool) {
	var zeroValue T

	decoded, ok := t.inner.Decode(value)
	if !ok {
		return zeroValue, false
	}

	mapped, ok := t.from(decoded)
	if !ok {
		return zeroValue, false
	}

	return mapped, true
}

// Transform derives a Codec for T from a Codec for U and a to/from mapping
// pair. The from mapping reports false for underlying values with no valid
// T counterpart, which surfaces as a decode miss.
func Transform[T, U any](
	inner Codec[U],
	to func(value T) (U, error),
	from func(value U) (T, bool),
) Transformed[T, U] {
	return Transformed[T, U]{
		inner: inner,
		to:    to,
		from:  from,
	}
}
