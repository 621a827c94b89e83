// File: manifest.go
// Role: TOML manifests for user-supplied layouts.
//
// The manifest mirrors Spec field-for-field, with strings standing in for
// the enum and rune fields:
//
//	name        = "qwerty-uk"
//	style       = "slanted"        # or "aligned"
//	rows        = "` 1 2\n# q w"
//	gap         = "#"              # optional printable stand-in for the sentinel
//	alphabetics = true
//	digits      = false
//	policy      = "preregistered"  # or "auto-create"; default preregistered
//
//	[[keys]]
//	value   = "`"
//	shifted = "¬"
//
// The gap token exists because the sentinel is a NUL control character,
// awkward to write in TOML; every occurrence of the token in rows is
// rewritten to core.Sentinel during decoding.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/keygraph/connect"
	"github.com/katalvlaran/keygraph/core"
	"github.com/katalvlaran/keygraph/geometry"
)

// Sentinel errors for manifest decoding.
var (
	// ErrBadStyle indicates an unknown geometry style name.
	ErrBadStyle = errors.New("layout: unknown style in manifest")

	// ErrBadPolicy indicates an unknown missing-key policy name.
	ErrBadPolicy = errors.New("layout: unknown policy in manifest")

	// ErrBadKey indicates a key entry whose value or shifted field is not
	// a single character.
	ErrBadKey = errors.New("layout: invalid key in manifest")
)

// manifest is the TOML wire form of a Spec.
type manifest struct {
	Name        string        `toml:"name"`
	Style       string        `toml:"style"`
	Rows        string        `toml:"rows"`
	Gap         string        `toml:"gap"`
	Alphabetics bool          `toml:"alphabetics"`
	Digits      bool          `toml:"digits"`
	Policy      string        `toml:"policy"`
	Keys        []manifestKey `toml:"keys"`
}

type manifestKey struct {
	Value   string `toml:"value"`
	Shifted string `toml:"shifted"`
}

// LoadSpec decodes a TOML layout manifest from r.
// Returns ErrBadStyle, ErrBadPolicy, or ErrBadKey on invalid field values;
// TOML syntax errors pass through from the decoder.
func LoadSpec(r io.Reader) (Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Spec{}, fmt.Errorf("layout: reading manifest: %w", err)
	}

	var m manifest
	if err = toml.Unmarshal(data, &m); err != nil {
		return Spec{}, fmt.Errorf("layout: decoding manifest: %w", err)
	}

	return m.toSpec()
}

// LoadSpecFile decodes a TOML layout manifest from a file.
func LoadSpecFile(path string) (Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return Spec{}, fmt.Errorf("layout: opening manifest: %w", err)
	}
	defer f.Close()

	return LoadSpec(f)
}

// toSpec validates the wire form and converts it into a Spec.
func (m manifest) toSpec() (Spec, error) {
	s := Spec{
		Name:        m.Name,
		Alphabetics: m.Alphabetics,
		Digits:      m.Digits,
	}

	switch m.Style {
	case "slanted":
		s.Style = geometry.Slanted
	case "aligned":
		s.Style = geometry.Aligned
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrBadStyle, m.Style)
	}

	switch m.Policy {
	case "", "preregistered":
		s.Policy = connect.Preregistered
	case "auto-create":
		s.Policy = connect.AutoCreate
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrBadPolicy, m.Policy)
	}

	s.Rows = m.Rows
	if m.Gap != "" {
		gap, err := singleRune(m.Gap)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: gap %q", ErrBadKey, m.Gap)
		}
		s.Rows = strings.ReplaceAll(s.Rows, string(gap), string(core.Sentinel))
	}

	for _, mk := range m.Keys {
		value, err := singleRune(mk.Value)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: value %q", ErrBadKey, mk.Value)
		}
		shifted := core.Sentinel
		if mk.Shifted != "" {
			if shifted, err = singleRune(mk.Shifted); err != nil {
				return Spec{}, fmt.Errorf("%w: shifted %q", ErrBadKey, mk.Shifted)
			}
		}
		s.Keys = append(s.Keys, core.Key{Value: value, Shifted: shifted})
	}

	return s, nil
}

// singleRune returns the sole rune of s, or an error when s is empty or
// longer than one character.
func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}

	return r, nil
}
