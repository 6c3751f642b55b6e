// Package wire defines the schema-less value representation used by the
// record store at the (de)serialization boundary: the Value tagged union,
// named Bins, and the Record shape exchanged with the store client.
package wire
