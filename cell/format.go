package cell

import (
	"strconv"
	"strings"
)

// Format encodes 0-based indices into their CELL string. It is shorthand
// for constructing a Coord with New and calling String, and fails with the
// same errors.
func Format(indices ...int) (string, error) {
	c, err := New(indices...)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// formatIndices renders indices already validated to [0, MaxIndexValue].
// Total for any length 0..MaxDimensions; each call allocates a fresh string.
func formatIndices(indices []uint8) string {
	var sb strings.Builder
	sb.Grow(MaxStringLength)
	for i, v := range indices {
		switch slot(i % slotCount) {
		case slotLower:
			appendLetters(&sb, int(v), 'a')
		case slotInteger:
			sb.WriteString(strconv.Itoa(int(v) + 1))
		case slotUpper:
			appendLetters(&sb, int(v), 'A')
		}
	}
	return sb.String()
}

// appendLetters writes the letter encoding of v: one letter for 0..25, two
// for 26..255. base is 'a' or 'A'.
func appendLetters(sb *strings.Builder, v int, base byte) {
	if v < letterCount {
		sb.WriteByte(base + byte(v))
		return
	}
	v -= letterCount
	sb.WriteByte(base + byte(v/letterCount))
	sb.WriteByte(base + byte(v%letterCount))
}
