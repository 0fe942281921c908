// Package store owns the authoritative collections of drawing entities,
// dimensions and annotations, plus selection bookkeeping and change
// notification. Ids are UUIDs, unique across all three collections and
// never reused.
//
// The store is single-threaded by design: every mutation runs to
// completion before returning and no method suspends or performs I/O.
// Hosts embedding the kernel in a multi-threaded program must serialize
// access themselves (the filter-based operations iterate while mutating).
package store
