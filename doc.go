// Package binkv contains typed, reflection-free converters between
// application values and the schema-less record format of a key-value
// record store.
//
// The library contains multiple packages, you might want to start from
// `codec` to build Codecs for your application types, and `record` to
// convert whole records. `resolver` holds the startup-time dispatch table
// selecting a Codec per type, and this root package defines the Store
// boundary to the external store client along with a typed Repository
// over it.
package binkv
