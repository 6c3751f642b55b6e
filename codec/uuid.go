package codec

import (
	"github.com/google/uuid"
)

// UUID is the Codec for UUIDs, stored as their canonical string form.
// Decoding fails on wire values that are not strings or do not parse as
// UUIDs.
var UUID Codec[uuid.UUID] = Transform(
	String,
	func(v uuid.UUID) (string, error) {
		return v.String(), nil
	},
	func(v string) (uuid.UUID, bool) {
		id, err := uuid.Parse(v)
		return id, err == nil
	},
)
