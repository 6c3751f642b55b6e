package codec

import (
	"encoding/json"
)

// NewJSON returns an opaque Codec where values of T travel as JSON
// byte-array payloads.
//
// A data factory function is required for creating new instances of the type
// (especially if pointer semantics is used).
func NewJSON[T any](factory func() T) Codec[T] {
	return NewOpaque(
		func(v T) ([]byte, error) {
			return json.Marshal(v)
		},
		func(data []byte) (T, error) {
			model := factory()
			if err := json.Unmarshal(data, &model); err != nil {
				var zeroValue T
				return zeroValue, err
			}

			return model, nil
		},
	)
}
