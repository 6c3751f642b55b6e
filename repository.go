package binkv

import (
	"context"
	"fmt"

	"github.com/binkv/go-binkv/record"
	"github.com/binkv/go-binkv/wire"
)

// Repository is a typed facade over a Store: it pairs the store client with
// a record.Codec so that callers read and write application values instead
// of wire shapes.
type Repository[T any] struct {
	store Store
	codec record.Codec[T]
}

// NewRepository returns a Repository using the given store client and
// record Codec.
func NewRepository[T any](store Store, codec record.Codec[T]) Repository[T] {
	return Repository[T]{
		store: store,
		codec: codec,
	}
}

// Get reads the record at the given key and decodes it. Bins whose stored
// shape does not match T come back as invalid fields; a non-empty record
// with no decodable bin at all surfaces record.ErrTypeMismatch.
func (r Repository[T]) Get(ctx context.Context, key string) (record.Decoded[T], error) {
	rec, err := r.store.Get(ctx, key)
	if err != nil {
		return record.Decoded[T]{}, fmt.Errorf("binkv.Repository: failed to get record, %w", err)
	}

	decoded, err := r.codec.Decode(rec)
	if err != nil {
		return record.Decoded[T]{}, fmt.Errorf("binkv.Repository: failed to decode record at key '%s', %w", key, err)
	}

	return decoded, nil
}

// Put bulk-writes the given fields to the record at the given key. Fields
// that fail to encode are dropped, matching record.Codec.EncodeMany.
func (r Repository[T]) Put(ctx context.Context, key string, fields map[string]T) error {
	bins := r.codec.EncodeMany(fields)

	if err := r.store.Put(ctx, key, bins); err != nil {
		return fmt.Errorf("binkv.Repository: failed to put record, %w", err)
	}

	return nil
}

// PutOne writes a single field to the record at the given key. Unlike Put,
// an encode failure — an oversized bin name included — is returned to the
// caller.
func (r Repository[T]) PutOne(ctx context.Context, key, name string, value T) error {
	bin, err := r.codec.EncodeOne(name, value)
	if err != nil {
		return fmt.Errorf("binkv.Repository: failed to encode bin, %w", err)
	}

	if err := r.store.Put(ctx, key, []wire.Bin{bin}); err != nil {
		return fmt.Errorf("binkv.Repository: failed to put record, %w", err)
	}

	return nil
}
