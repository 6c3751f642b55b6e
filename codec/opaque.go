package codec

import (
	"fmt"

	"github.com/binkv/go-binkv/wire"
)

// NewOpaque returns a Codec for types whose canonical wire representation is
// an opaque serialized byte payload, such as externally-defined structured
// messages. The serialize/parse pair is supplied by the caller per concrete
// type; it cannot be derived here.
//
// Encoding serializes the value and wraps it as a wire byte-array. Decoding
// requires the wire value to be a byte-array and the parser to accept it;
// a parse failure surfaces as a plain decode miss.
func NewOpaque[T any](
	serialize func(value T) ([]byte, error),
	parse func(data []byte) (T, error),
) Codec[T] {
	return Fuse[T](
		AsEncoderFunc(func(v T) (wire.Value, error) {
			data, err := serialize(v)
			if err != nil {
				return nil, fmt.Errorf("codec.Opaque: failed to serialize value, %w", err)
			}

			return wire.Bytes(data), nil
		}),
		AsDecoderFunc(func(v wire.Value) (T, bool) {
			var zeroValue T

			data, ok := v.(wire.Bytes)
			if !ok {
				return zeroValue, false
			}

			value, err := parse(data)
			if err != nil {
				return zeroValue, false
			}

			return value, true
		}),
	)
}
