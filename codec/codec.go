package codec

import "github.com/binkv/go-binkv/wire"

// Encoder is used to encode an application value into its wire representation.
//
// Encoding is total for any properly-constructed value of a supported type:
// a resolved Codec guarantees a matching wire shape exists. The error return
// covers per-value failures only (e.g. an opaque payload that fails to
// serialize), never unsupported types, which fail at resolution time instead.
type Encoder[T any] interface {
	Encode(value T) (wire.Value, error)
}

// EncoderFunc is a functional implementation of the Encoder interface.
type EncoderFunc[T any] func(value T) (wire.Value, error)

// Encode implements the codec.Encoder interface.
func (fn EncoderFunc[T]) Encode(value T) (wire.Value, error) { return fn(value) }

// AsEncoderFunc casts the given encoding function into a compatible
// Encoder interface type.
func AsEncoderFunc[T any](f func(value T) (wire.Value, error)) EncoderFunc[T] {
	return EncoderFunc[T](f)
}

// AsInfallibleEncoderFunc casts the given infallible encoding function
// into a compatible Encoder interface type.
func AsInfallibleEncoderFunc[T any](f func(value T) wire.Value) EncoderFunc[T] {
	return EncoderFunc[T](func(value T) (wire.Value, error) {
		return f(value), nil
	})
}

// Decoder is used to decode a wire value back into an application value.
//
// Decoding is partial: it reports false, rather than failing, when the wire
// value's runtime shape does not match what T expects. A record may be read
// by multiple differently-typed readers over its lifetime, so a shape
// mismatch is an expected outcome, not an error.
type Decoder[T any] interface {
	Decode(value wire.Value) (T, bool)
}

// DecoderFunc is a functional implementation of the Decoder interface.
type DecoderFunc[T any] func(value wire.Value) (T, bool)

// Decode implements the codec.Decoder interface.
func (fn DecoderFunc[T]) Decode(value wire.Value) (T, bool) { return fn(value) }

// AsDecoderFunc casts the given decoding function into a compatible
// Decoder interface type.
func AsDecoderFunc[T any](f func(value wire.Value) (T, bool)) DecoderFunc[T] {
	return DecoderFunc[T](f)
}

// Codec is a paired encode/decode capability for one application type.
//
// Codec instances are immutable once constructed and safe for concurrent use.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// Fused provides a convenient way to fuse together separate implementations
// of an Encoder and a Decoder, and use them as a Codec.
type Fused[T any] struct {
	Encoder[T]
	Decoder[T]
}

// Fuse combines an Encoder and a Decoder for the same type and returns a
// Codec implementation through codec.Fused.
func Fuse[T any](encoder Encoder[T], decoder Decoder[T]) Fused[T] {
	return Fused[T]{
		Encoder: encoder,
		Decoder: decoder,
	}
}
