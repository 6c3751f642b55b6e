// Package resolver selects the codec.Codec for a given application type.
//
// Resolution is a startup-time concern: a Registry is populated once, while
// the process wires itself up, and is read-only afterwards. Given the
// current limitation of Go with generics, the only way to key a dispatch
// table by type is reflect.Type; it is used here strictly as a map key for
// type identity — values are never inspected through reflection.
//
// Resolution follows a fixed priority order, first applicable match wins:
// explicitly registered Codecs, then the built-in scalar table, then failure
// with a diagnostic naming the unsupported type. Tuple, struct, slot and
// opaque Codecs are synthesized with their codec constructors and enter the
// table through Register.
package resolver

import (
	"fmt"
	"reflect"

	"github.com/binkv/go-binkv/codec"
)

// UnresolvedTypeError is returned by Resolve when no strategy applies to the
// requested type.
type UnresolvedTypeError struct {
	Type reflect.Type
}

func (err UnresolvedTypeError) Error() string {
	return fmt.Sprintf("resolver: no codec resolved for type '%s'", err.Type)
}

// Registry is the dispatch table mapping application types to their Codecs.
//
// The zero value is not usable; create instances with New. A Registry must
// not be shared with concurrent readers until registration is finished.
type Registry struct {
	registered map[reflect.Type]any
	builtin    map[reflect.Type]any
}

// New returns a Registry seeded with the built-in scalar Codecs:
// int64/int32/int16/int8, bool, float64/float32, string, rune, []byte and
// uuid.UUID.
func New() *Registry {
	builtin := make(map[reflect.Type]any)

	seed(builtin, codec.Int64)
	seed(builtin, codec.Int32)
	seed(builtin, codec.Int16)
	seed(builtin, codec.Int8)
	seed(builtin, codec.Bool)
	seed(builtin, codec.Float64)
	seed(builtin, codec.Float32)
	seed(builtin, codec.String)
	seed(builtin, codec.Rune)
	seed(builtin, codec.Bytes)
	seed(builtin, codec.UUID)

	return &Registry{
		registered: make(map[reflect.Type]any),
		builtin:    builtin,
	}
}

func seed[T any](table map[reflect.Type]any, c codec.Codec[T]) {
	table[typeOf[T]()] = c
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register adds an explicit Codec for T to the registry. Explicit entries
// take priority over the built-in table, so a built-in Codec can be
// overridden on purpose.
//
// An error is returned when T has already been registered: two competing
// strategies for one type is a wiring mistake, never resolved silently.
func Register[T any](r *Registry, c codec.Codec[T]) error {
	t := typeOf[T]()

	if _, ok := r.registered[t]; ok {
		return fmt.Errorf("resolver: type '%s' has already been registered", t)
	}

	r.registered[t] = c

	return nil
}

// Resolve returns the Codec for T, trying explicitly registered entries
// first and the built-in scalar table second. An UnresolvedTypeError is
// returned when neither applies.
func Resolve[T any](r *Registry) (codec.Codec[T], error) {
	t := typeOf[T]()

	if c, ok := r.registered[t]; ok {
		return c.(codec.Codec[T]), nil
	}

	if c, ok := r.builtin[t]; ok {
		return c.(codec.Codec[T]), nil
	}

	return nil, UnresolvedTypeError{Type: t}
}
