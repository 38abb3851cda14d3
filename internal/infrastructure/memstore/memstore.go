// Package memstore provides the seeded in-memory repositories backing the
// console. There is deliberately no persistence: the seed data is rebuilt on
// every process start and runtime writes live only as long as the process.
package memstore

import "github.com/oklog/ulid/v2"

// newID mints a sortable unique id for records created at runtime. Seeded
// records keep their original small numeric ids.
func newID() string {
	return ulid.Make().String()
}
