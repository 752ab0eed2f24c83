package cell

import (
	"errors"
	"testing"
)

// parseFailures is every error Parse is allowed to return.
var parseFailures = []error{
	ErrEmptyInput,
	ErrInputTooLong,
	ErrInvalidStart,
	ErrUnexpectedCharacter,
	ErrLeadingZero,
	ErrTooManyDimensions,
	ErrIndexOutOfRange,
}

// FuzzParse feeds the scanner arbitrary bytes: it must never panic, every
// failure must be one of the closed error kinds, and every accepted input
// must satisfy the codec laws.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"", "a", "iv", "e4", "a256", "a1A", "iv256IV",
		"a0", "aA", "a1Aa", "a257", "zz", "iv256IVx",
		"*", "a 1", "a\x001", "а", "a​1",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		c, err := Parse(s)
		if err != nil {
			for _, known := range parseFailures {
				if errors.Is(err, known) {
					return
				}
			}
			t.Fatalf("Parse(%q): error outside the closed set: %v", s, err)
		}

		if s != c.String() {
			t.Errorf("Parse(%q) accepted a non-canonical encoding of %v", s, c.Indices())
		}
		back, err := Parse(c.String())
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", c.String(), err)
		}
		if back != c {
			t.Errorf("round trip through %q changed the coordinate", c.String())
		}
		if d := c.Dimensions(); d < 1 || d > MaxDimensions {
			t.Errorf("Parse(%q): %d dimensions", s, d)
		}
	})
}
