package store

import "github.com/oklog/ulid/v2"

// NewID returns a ULID. IDs sort lexicographically by creation time,
// which the history retention query relies on.
func NewID() string {
	return ulid.Make().String()
}
