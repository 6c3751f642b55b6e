// Package codec provides paired encode/decode capabilities between
// application types and the wire values of the record store.
//
// A Codec is built once, at startup, for each application type — from the
// primitive Codecs (Int64, Float64, String, ...), the composite constructors
// (NewList, NewMap, NewPair, NewStruct, ...) or the opaque byte-payload
// constructors (NewJSON, NewProto, NewMsgpack) — and is immutable and safe
// for concurrent use afterwards.
//
// Encoding is total for supported types; decoding is best-effort and reports
// a miss, rather than an error, when the stored wire shape does not match
// the requested type.
package codec
