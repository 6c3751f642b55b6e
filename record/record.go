package record

import (
	"errors"
	"fmt"
	"sort"

	"github.com/binkv/go-binkv/codec"
	"github.com/binkv/go-binkv/wire"
)

// ErrTypeMismatch is returned by Codec.Decode when a non-empty record yields
// no decodable field at all: the configured Codec does not match the shape of
// the data actually stored. This is a configuration error, not a data error —
// retrying would produce the same result.
var ErrTypeMismatch = errors.New("record.Codec: no bin decoded, stored data does not match the configured codec")

// Field is the per-bin outcome of a record decode: the decoded value when
// Valid is true, or a zero value marking a shape mismatch for that bin.
type Field[T any] struct {
	Value T
	Valid bool
}

// Decoded is a fully-decoded record: per-bin decode outcomes keyed by bin
// name, plus the generation and expiration metadata carried over unchanged.
type Decoded[T any] struct {
	Fields     map[string]Field[T]
	Generation uint32
	Expiration uint32
}

// Codec converts whole records between their wire shape and typed per-bin
// values, using one bin-level codec.Codec for every field.
type Codec[T any] struct {
	bin codec.Codec[T]
}

// New returns a record Codec backed by the given bin-level Codec.
func New[T any](bin codec.Codec[T]) Codec[T] {
	return Codec[T]{bin: bin}
}

// Decode converts a wire record into its typed counterpart, decoding every
// bin independently. A bin whose stored shape does not match T is reported
// as an invalid Field rather than aborting the whole record, so that records
// with a few stale or foreign bins still decode.
//
// If the record is non-empty and every single bin fails, Decode returns
// ErrTypeMismatch instead: wholesale failure means the wrong Codec was
// configured for this data, and must not be silently swallowed.
func (c Codec[T]) Decode(rec wire.Record) (Decoded[T], error) {
	decoded := Decoded[T]{
		Fields:     make(map[string]Field[T], len(rec.Bins)),
		Generation: rec.Generation,
		Expiration: rec.Expiration,
	}

	anyValid := false

	for name, value := range rec.Bins {
		v, ok := c.bin.Decode(value)
		anyValid = anyValid || ok

		decoded.Fields[name] = Field[T]{Value: v, Valid: ok}
	}

	if len(rec.Bins) > 0 && !anyValid {
		return Decoded[T]{}, fmt.Errorf("%w (%d bins)", ErrTypeMismatch, len(rec.Bins))
	}

	return decoded, nil
}

// EncodeOne encodes a single named field into a Bin. The bin name is
// validated before any encoding work; an oversized name fails with
// wire.ErrInvalidName and is never truncated.
func (c Codec[T]) EncodeOne(name string, value T) (wire.Bin, error) {
	if err := wire.ValidateName(name); err != nil {
		return wire.Bin{}, err
	}

	encoded, err := c.bin.Encode(value)
	if err != nil {
		return wire.Bin{}, fmt.Errorf("record.Codec: failed to encode bin '%s', %w", name, err)
	}

	return wire.Bin{Name: name, Value: encoded}, nil
}

// EncodeMany encodes a set of named fields for a bulk write. Encoding is
// best-effort: a field that fails to encode, for its name or its value, is
// silently dropped from the output. Bins are sorted by name so the same
// input always produces the same output.
//
// This leniency is deliberately asymmetric with Decode, which treats
// whole-record failure as fatal.
func (c Codec[T]) EncodeMany(fields map[string]T) []wire.Bin {
	bins := make([]wire.Bin, 0, len(fields))

	for name, value := range fields {
		bin, err := c.EncodeOne(name, value)
		if err != nil {
			continue
		}

		bins = append(bins, bin)
	}

	sort.Slice(bins, func(i, j int) bool { return bins[i].Name < bins[j].Name })

	return bins
}
