package wire

import (
	"errors"
	"fmt"
)

// MaxBinNameLen is the maximum length, in bytes, of a bin name accepted by
// the storage engine.
const MaxBinNameLen = 14

// ErrInvalidName is returned when a bin name exceeds MaxBinNameLen.
// Names are never truncated to fit.
var ErrInvalidName = errors.New("wire.Bin: name exceeds maximum length")

// Bin is a single named field of a record.
type Bin struct {
	Name  string
	Value Value
}

// NewBin validates the bin name and returns the resulting Bin. The name is
// checked before any encoding work so that oversized names fail fast.
func NewBin(name string, value Value) (Bin, error) {
	if err := ValidateName(name); err != nil {
		return Bin{}, err
	}

	return Bin{Name: name, Value: value}, nil
}

// ValidateName reports whether a bin name fits the storage engine's limit.
func ValidateName(name string) error {
	if len(name) > MaxBinNameLen {
		return fmt.Errorf("%w: '%s' is %d bytes, maximum is %d", ErrInvalidName, name, len(name), MaxBinNameLen)
	}

	return nil
}
