package wire

// Value is the wire-level representation of a single bin value, as understood
// by the record store. It is a closed union: the only implementations are the
// types defined in this package.
//
// A Value carries no type information beyond its own variant, so decoding back
// into an application type is always a best-effort operation.
type Value interface {
	isValue()
}

// Integer is a 64-bit signed integer wire value. All narrower integer types,
// and booleans, are stored through this variant.
type Integer int64

// Double is a 64-bit floating point wire value. Single-precision values are
// widened to this variant on write.
type Double float64

// String is a UTF-8 string wire value.
type String string

// Boolean is a native boolean wire value.
//
// Note that the built-in boolean codec does not produce this variant: booleans
// are written as Integer 1/0 for compatibility with records stored before the
// engine grew a native boolean type.
type Boolean bool

// Bytes is an opaque byte-array wire value.
type Bytes []byte

// List is an ordered sequence of wire values.
type List []Value

// MapEntry is a single key/value pair of a wire Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an ordered collection of key/value pairs. Order is preserved as
// given: encoders that require a specific entry order (such as the tuple
// codec, which sorts by numeric index) are responsible for producing it.
type Map []MapEntry

func (Integer) isValue() {}
func (Double) isValue()  {}
func (String) isValue()  {}
func (Boolean) isValue() {}
func (Bytes) isValue()   {}
func (List) isValue()    {}
func (Map) isValue()     {}

// Lookup returns the value paired with the given key, scanning entries in
// order. The second return value reports whether the key was found.
func (m Map) Lookup(key Value) (Value, bool) {
	for _, entry := range m {
		if Equal(entry.Key, key) {
			return entry.Value, true
		}
	}

	return nil, false
}

// Equal reports whether two wire values are structurally equal.
func Equal(a, b Value) bool {
	switch va := a.(type) {
	case Integer:
		vb, ok := b.(Integer)
		return ok && va == vb
	case Double:
		vb, ok := b.(Double)
		return ok && va == vb
	case String:
		vb, ok := b.(String)
		return ok && va == vb
	case Boolean:
		vb, ok := b.(Boolean)
		return ok && va == vb
	case Bytes:
		vb, ok := b.(Bytes)
		if !ok || len(va) != len(vb) {
			return false
		}

		for i := range va {
			if va[i] != vb[i] {
				return false
			}
		}

		return true
	case List:
		vb, ok := b.(List)
		if !ok || len(va) != len(vb) {
			return false
		}

		for i := range va {
			if !Equal(va[i], vb[i]) {
				return false
			}
		}

		return true
	case Map:
		vb, ok := b.(Map)
		if !ok || len(va) != len(vb) {
			return false
		}

		for i := range va {
			if !Equal(va[i].Key, vb[i].Key) || !Equal(va[i].Value, vb[i].Value) {
				return false
			}
		}

		return true
	case nil:
		return b == nil
	}

	return false
}
