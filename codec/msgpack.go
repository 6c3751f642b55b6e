package codec

import (
	"github.com/vmihailenco/msgpack/v5"
)

// NewMsgpack returns an opaque Codec where values of T travel as MessagePack
// byte-array payloads.
//
// A data factory function is required for creating new instances of the type
// (especially if pointer semantics is used).
func NewMsgpack[T any](factory func() T) Codec[T] {
	return NewOpaque(
		func(v T) ([]byte, error) {
			return msgpack.Marshal(v)
		},
		func(data []byte) (T, error) {
			model := factory()
			if err := msgpack.Unmarshal(data, &model); err != nil {
				var zeroValue T
				return zeroValue, err
			}

			return model, nil
		},
	)
}
