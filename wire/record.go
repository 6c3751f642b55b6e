package wire

// Record is the store's unit of storage: a set of named bins plus the
// generation and expiration metadata maintained by the storage engine.
//
// Records are owned by the store client; this module only reads and
// produces this shape.
type Record struct {
	Bins       map[string]Value
	Generation uint32
	Expiration uint32
}
