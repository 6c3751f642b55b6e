package codec

import (
	"google.golang.org/protobuf/proto"
)

// NewProto returns an opaque Codec where values of T travel as Protobuf
// byte-array payloads.
//
// A data factory function is required for creating new instances of type `T`
// (proto messages use pointer semantics).
func NewProto[T proto.Message](factory func() T) Codec[T] {
	return NewOpaque(
		func(v T) ([]byte, error) {
			return proto.Marshal(v)
		},
		func(data []byte) (T, error) {
			model := factory()
			if err := proto.Unmarshal(data, model); err != nil {
				var zeroValue T
				return zeroValue, err
			}

			return model, nil
		},
	)
}
