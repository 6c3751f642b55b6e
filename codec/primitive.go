package codec

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/binkv/go-binkv/wire"
)

// Int64 is the Codec for 64-bit signed integers, the native integer width of
// the wire format.
var Int64 Codec[int64] = Fuse[int64](
	AsInfallibleEncoderFunc(func(v int64) wire.Value { return wire.Integer(v) }),
	AsDecoderFunc(func(v wire.Value) (int64, bool) {
		i, ok := v.(wire.Integer)
		return int64(i), ok
	}),
)

// Int32 is the Codec for 32-bit signed integers. Values are widened to the
// wire's 64-bit integer on encode and truncated back on decode.
var Int32 Codec[int32] = Fuse[int32](
	AsInfallibleEncoderFunc(func(v int32) wire.Value { return wire.Integer(int64(v)) }),
	AsDecoderFunc(func(v wire.Value) (int32, bool) {
		i, ok := v.(wire.Integer)
		return int32(i), ok
	}),
)

// Int16 is the Codec for 16-bit signed integers, stored as wire integers with
// truncating narrowing on decode.
var Int16 Codec[int16] = Fuse[int16](
	AsInfallibleEncoderFunc(func(v int16) wire.Value { return wire.Integer(int64(v)) }),
	AsDecoderFunc(func(v wire.Value) (int16, bool) {
		i, ok := v.(wire.Integer)
		return int16(i), ok
	}),
)

// Int8 is the Codec for 8-bit signed integers, stored as wire integers with
// truncating narrowing on decode.
var Int8 Codec[int8] = Fuse[int8](
	AsInfallibleEncoderFunc(func(v int8) wire.Value { return wire.Integer(int64(v)) }),
	AsDecoderFunc(func(v wire.Value) (int8, bool) {
		i, ok := v.(wire.Integer)
		return int8(i), ok
	}),
)

// Bool is the Codec for booleans. Booleans are stored as wire integers
// (1 for true, 0 for false) rather than the native boolean variant, for
// compatibility with records written before the engine supported booleans.
//
// Decoding maps integer 1 to true and any other integer to false. Treating
// e.g. 2 as false rather than a shape mismatch is long-standing behavior
// that stored data may depend on.
var Bool Codec[bool] = Fuse[bool](
	AsInfallibleEncoderFunc(func(v bool) wire.Value {
		if v {
			return wire.Integer(1)
		}

		return wire.Integer(0)
	}),
	AsDecoderFunc(func(v wire.Value) (bool, bool) {
		i, ok := v.(wire.Integer)
		if !ok {
			return false, false
		}

		return i == 1, true
	}),
)

// Float64 is the Codec for double-precision floats.
//
// Decoding accepts either a wire double, or a wire integer whose raw 64-bit
// pattern is reinterpreted as a double. The integer path reads records
// written under the historical storage format, where doubles were persisted
// as their bit pattern; both paths must stay supported.
var Float64 Codec[float64] = Fuse[float64](
	AsInfallibleEncoderFunc(func(v float64) wire.Value { return wire.Double(v) }),
	AsDecoderFunc(decodeFloat64),
)

// Float32 is the Codec for single-precision floats. Values are widened to a
// wire double on encode and narrowed back on decode, with the same dual
// decode path as Float64.
var Float32 Codec[float32] = Fuse[float32](
	AsInfallibleEncoderFunc(func(v float32) wire.Value { return wire.Double(float64(v)) }),
	AsDecoderFunc(func(v wire.Value) (float32, bool) {
		f, ok := decodeFloat64(v)
		return float32(f), ok
	}),
)

func decodeFloat64(v wire.Value) (float64, bool) {
	switch value := v.(type) {
	case wire.Double:
		return float64(value), true
	case wire.Integer:
		return math.Float64frombits(uint64(value)), true
	default:
		return 0, false
	}
}

// String is the Codec for strings.
var String Codec[string] = Fuse[string](
	AsInfallibleEncoderFunc(func(v string) wire.Value { return wire.String(v) }),
	AsDecoderFunc(func(v wire.Value) (string, bool) {
		s, ok := v.(wire.String)
		return string(s), ok
	}),
)

// Rune is the Codec for single characters, stored as one-rune strings.
// Decoding takes the first code point of the wire string and fails on an
// empty string.
var Rune Codec[rune] = Fuse[rune](
	AsInfallibleEncoderFunc(func(v rune) wire.Value { return wire.String(string(v)) }),
	AsDecoderFunc(func(v wire.Value) (rune, bool) {
		s, ok := v.(wire.String)
		if !ok || len(s) == 0 {
			return 0, false
		}

		r, _ := utf8.DecodeRuneInString(string(s))

		return r, true
	}),
)

// Bytes is the Codec for raw byte buffers.
var Bytes Codec[[]byte] = Fuse[[]byte](
	AsInfallibleEncoderFunc(func(v []byte) wire.Value { return wire.Bytes(v) }),
	AsDecoderFunc(decodeBytes),
)

// SlicedBytes returns a Codec for byte buffers that encodes only the window
// starting at the given offset and spanning the given length. Encoding fails
// if the window falls outside the buffer. Decoding returns the stored bytes
// whole, since the wire format does not preserve the original window.
func SlicedBytes(offset, length int) Codec[[]byte] {
	return Fuse[[]byte](
		AsEncoderFunc(func(v []byte) (wire.Value, error) {
			if offset < 0 || length < 0 || offset+length > len(v) {
				return nil, fmt.Errorf(
					"codec.SlicedBytes: window [%d:%d] out of range for buffer of %d bytes",
					offset, offset+length, len(v),
				)
			}

			return wire.Bytes(v[offset : offset+length]), nil
		}),
		AsDecoderFunc(decodeBytes),
	)
}

func decodeBytes(v wire.Value) ([]byte, bool) {
	b, ok := v.(wire.Bytes)
	return []byte(b), ok
}
