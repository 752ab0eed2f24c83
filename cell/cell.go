package cell

// Codec limits. The string bound follows from the other two: the longest
// encoding is two letters + three digits + two letters ("iv256IV").
const (
	MaxDimensions   = 3
	MaxIndexValue   = 255
	MaxStringLength = 7
)

const letterCount = 26

// slot is the cyclic character class assigned to a dimension by its
// 0-based position modulo 3.
type slot uint8

const (
	slotLower slot = iota
	slotInteger
	slotUpper
	slotCount = 3
)

func (s slot) next() slot {
	return (s + 1) % slotCount
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
