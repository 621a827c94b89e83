// File: types.go
// Role: Key, Direction, Offset value types and core sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel is the reserved "no character here" marker. It plays two roles:
// as Key.Shifted it means the key has no shift variant; as a grid cell it
// marks a deliberately empty column (row staggering). It is never a
// printable key and never resolves to a node.
const Sentinel rune = '\x00'

// Sentinel errors for core graph operations.
var (
	// ErrSentinelKey indicates an attempt to register the sentinel as a key.
	ErrSentinelKey = errors.New("core: key value is the sentinel")

	// ErrDuplicateKey indicates a value already registered with a different shift mapping.
	ErrDuplicateKey = errors.New("core: key value already registered")

	// ErrKeyNotFound indicates an operation referenced a non-existent key.
	ErrKeyNotFound = errors.New("core: key not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same key.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrZeroOffset indicates an edge labeled {Same, Same}.
	ErrZeroOffset = errors.New("core: zero offset not allowed")
)

// Key represents one physical key on a keyboard.
//
// Value is the character produced unshifted; Shifted the character produced
// with the shift modifier, or Sentinel when the key has none.
type Key struct {
	// Value is the character produced unshifted. Unique within a Graph.
	Value rune

	// Shifted is the character produced with shift held, or Sentinel.
	Shifted rune
}

// HasShift reports whether the key has a shift variant.
func (k Key) HasShift() bool { return k.Shifted != Sentinel }

// Matches reports whether c is either character form of the key.
// The sentinel never matches.
func (k Key) Matches(c rune) bool {
	if c == Sentinel {
		return false
	}

	return c == k.Value || c == k.Shifted
}

// String renders the key as "value" or "value/shifted".
func (k Key) String() string {
	if !k.HasShift() {
		return string(k.Value)
	}

	return string(k.Value) + "/" + string(k.Shifted)
}

// Direction is a relative position on a single axis.
type Direction int8

const (
	// Previous refers to above or left of the reference key.
	Previous Direction = -1
	// Same refers to the same row or column as the reference key.
	Same Direction = 0
	// Next refers to below or right of the reference key.
	Next Direction = 1
)

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case Previous:
		return "Previous"
	case Next:
		return "Next"
	default:
		return "Same"
	}
}

// Offset describes where a neighboring key sits relative to a reference
// key: one Direction per axis. It labels every edge in a Graph.
type Offset struct {
	// Horizontal is the column direction (Previous = left, Next = right).
	Horizontal Direction

	// Vertical is the row direction (Previous = up, Next = down).
	Vertical Direction
}

// IsZero reports whether the offset is {Same, Same}.
func (o Offset) IsZero() bool { return o.Horizontal == Same && o.Vertical == Same }

// Negate returns the reciprocal offset, pointing from the neighbor back
// to the reference key.
func (o Offset) Negate() Offset {
	return Offset{Horizontal: -o.Horizontal, Vertical: -o.Vertical}
}

// String renders the offset as "(h,v)" with signed unit components.
func (o Offset) String() string {
	return fmt.Sprintf("(%+d,%+d)", int8(o.Horizontal), int8(o.Vertical))
}
