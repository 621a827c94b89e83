// File: presets.go
// Role: data-only tables for the four built-in layouts.
//
// Row blocks are transcriptions of the physical boards: the sentinel token
// on rows 2-4 of the alphabetic layouts encodes the row stagger, and on
// the numpads it aligns the visually offset top and bottom rows.
package layout

import (
	"github.com/katalvlaran/keygraph/connect"
	"github.com/katalvlaran/keygraph/core"
	"github.com/katalvlaran/keygraph/geometry"
)

const (
	qwertyRows = "` 1 2 3 4 5 6 7 8 9 0 - =\n" +
		"\x00 q w e r t y u i o p [ ] \\\n" +
		"\x00 a s d f g h j k l ; '\n" +
		"\x00 z x c v b n m , . /"

	dvorakRows = "` 1 2 3 4 5 6 7 8 9 0 [ ]\n" +
		"\x00 ' , . p y f g c r l / = \\\n" +
		"\x00 a o e u i d h t n s -\n" +
		"\x00 ; q j k x b m w v z"

	standardNumpadRows = "\x00 / * -\n" +
		"7 8 9 +\n" +
		"4 5 6\n" +
		"1 2 3\n" +
		"\x00 0 ."

	macNumpadRows = "\x00 = / *\n" +
		"7 8 9 -\n" +
		"4 5 6 +\n" +
		"1 2 3\n" +
		"\x00 0 ."
)

// ansiShiftPairs lists the non-alphabetic keys of a US ANSI board with
// their shifted characters. QWERTY and Dvorak move these keys around but
// keep the same value/shift pairings.
var ansiShiftPairs = []core.Key{
	{Value: '`', Shifted: '~'},
	{Value: '1', Shifted: '!'},
	{Value: '2', Shifted: '@'},
	{Value: '3', Shifted: '#'},
	{Value: '4', Shifted: '$'},
	{Value: '5', Shifted: '%'},
	{Value: '6', Shifted: '^'},
	{Value: '7', Shifted: '&'},
	{Value: '8', Shifted: '*'},
	{Value: '9', Shifted: '('},
	{Value: '0', Shifted: ')'},
	{Value: '-', Shifted: '_'},
	{Value: '=', Shifted: '+'},
	{Value: '[', Shifted: '{'},
	{Value: ']', Shifted: '}'},
	{Value: '\\', Shifted: '|'},
	{Value: ';', Shifted: ':'},
	{Value: '\'', Shifted: '"'},
	{Value: ',', Shifted: '<'},
	{Value: '.', Shifted: '>'},
	{Value: '/', Shifted: '?'},
}

// qwertySpec describes the US QWERTY layout. The key table is
// known-complete, so connection is pre-registered: a typo in the row
// block cannot grow the graph.
var qwertySpec = Spec{
	Name:        "qwerty-us",
	Style:       geometry.Slanted,
	Rows:        qwertyRows,
	Alphabetics: true,
	Keys:        ansiShiftPairs,
	Policy:      connect.Preregistered,
}

// dvorakSpec describes the Dvorak layout; same key set as QWERTY,
// rearranged rows.
var dvorakSpec = Spec{
	Name:        "dvorak",
	Style:       geometry.Slanted,
	Rows:        dvorakRows,
	Alphabetics: true,
	Keys:        ansiShiftPairs,
	Policy:      connect.Preregistered,
}

// standardNumpadSpec describes the PC numpad. Digits are pre-populated
// unshifted; the operator keys are auto-created during connection.
var standardNumpadSpec = Spec{
	Name:   "standard-numpad",
	Style:  geometry.Aligned,
	Rows:   standardNumpadRows,
	Digits: true,
	Policy: connect.AutoCreate,
}

// macNumpadSpec describes the Apple numpad. Nothing is pre-populated;
// every key is auto-created shiftless from the row block.
var macNumpadSpec = Spec{
	Name:   "mac-numpad",
	Style:  geometry.Aligned,
	Rows:   macNumpadRows,
	Policy: connect.AutoCreate,
}
