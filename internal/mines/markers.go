package mines

import (
	"fmt"
	"unicode"
)

type Markers struct {
	Mine  rune
	Empty rune
}

func DefaultMarkers() Markers {
	return Markers{Mine: '*', Empty: ' '}
}

func (m Markers) Validate() error {
	if m.Mine == m.Empty {
		return fmt.Errorf("%w: mine and empty markers are both %q", ErrInvalidMarkers, m.Mine)
	}
	for _, r := range []rune{m.Mine, m.Empty} {
		if unicode.IsDigit(r) {
			return fmt.Errorf("%w: %q is a digit", ErrInvalidMarkers, r)
		}
		if !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %q is not printable", ErrInvalidMarkers, r)
		}
	}
	return nil
}

// ParseMarker accepts a single-rune string, or "" for def.
func ParseMarker(s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: marker %q is not a single character", ErrInvalidMarkers, s)
	}
	return r[0], nil
}
