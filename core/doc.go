// Package core defines the central Key, Direction, Offset, and Graph types
// for keyboard adjacency graphs.
//
// A Key is one physical key: the character it produces unshifted (Value)
// and the character it produces with shift held (Shifted), or Sentinel when
// the key has no shift variant (numpad digits). Keys are immutable once
// constructed; a graph never mutates a key's fields, only its edge set.
//
// Graph is a directed graph whose node identity is Key.Value alone —
// no two keys in one graph share an unshifted character, so lookup by
// value is unambiguous and the map that backs the node set compares and
// "hashes" on exactly the field it deduplicates by. Shifted travels as
// metadata. Each directed edge carries an Offset: the relative position
// {horizontal, vertical} of the target key as seen from the source key
// at construction time.
//
// Graph carries no internal locking. The intended lifecycle is
// build-then-read: a single goroutine populates the graph, after which it
// is treated as immutable and may be shared by any number of concurrent
// readers. The layout package enforces this with a one-time initialization
// guard per named layout.
//
// Errors:
//
//	ErrSentinelKey  - key value is the reserved sentinel.
//	ErrDuplicateKey - value already registered with a different shift mapping.
//	ErrKeyNotFound  - requested key does not exist.
//	ErrSelfLoop     - edge endpoints are the same key.
//	ErrZeroOffset   - edge offset is {Same, Same}.
package core
