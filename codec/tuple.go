package codec

// Tuples travel on the wire as a map from stringified zero-based index to
// value ("0", "1", ...), with entries in index order — not as a list. This is
// a compatibility requirement: records written by earlier clients use the
// index-keyed map shape, and changing it would break their decode. Decoding
// requires every index key to be present.

// Pair is an ordered couple of possibly different-typed values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is an ordered group of three possibly different-typed values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is an ordered group of four possibly different-typed values.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// NewPair returns a Codec for Pair values, composing the two element Codecs
// into the index-keyed map wire shape.
func NewPair[A, B any](first Codec[A], second Codec[B]) Codec[Pair[A, B]] {
	return NewSlots(
		NewSlot(func(v Pair[A, B]) A { return v.First }, func(dst *Pair[A, B], v A) { dst.First = v }, first),
		NewSlot(func(v Pair[A, B]) B { return v.Second }, func(dst *Pair[A, B], v B) { dst.Second = v }, second),
	)
}

// NewTriple returns a Codec for Triple values using the tuple wire shape.
func NewTriple[A, B, C any](first Codec[A], second Codec[B], third Codec[C]) Codec[Triple[A, B, C]] {
	return NewSlots(
		NewSlot(func(v Triple[A, B, C]) A { return v.First }, func(dst *Triple[A, B, C], v A) { dst.First = v }, first),
		NewSlot(func(v Triple[A, B, C]) B { return v.Second }, func(dst *Triple[A, B, C], v B) { dst.Second = v }, second),
		NewSlot(func(v Triple[A, B, C]) C { return v.Third }, func(dst *Triple[A, B, C], v C) { dst.Third = v }, third),
	)
}

// NewQuad returns a Codec for Quad values using the tuple wire shape.
func NewQuad[A, B, C, D any](
	first Codec[A],
	second Codec[B],
	third Codec[C],
	fourth Codec[D],
) Codec[Quad[A, B, C, D]] {
	return NewSlots(
		NewSlot(func(v Quad[A, B, C, D]) A { return v.First }, func(dst *Quad[A, B, C, D], v A) { dst.First = v }, first),
		NewSlot(func(v Quad[A, B, C, D]) B { return v.Second }, func(dst *Quad[A, B, C, D], v B) { dst.Second = v }, second),
		NewSlot(func(v Quad[A, B, C, D]) C { return v.Third }, func(dst *Quad[A, B, C, D], v C) { dst.Third = v }, third),
		NewSlot(func(v Quad[A, B, C, D]) D { return v.Fourth }, func(dst *Quad[A, B, C, D], v D) { dst.Fourth = v }, fourth),
	)
}
