package cell

// Parse decodes a CELL string into a Coord. It scans the raw bytes left to
// right in a single pass and fails fast with the first violated rule; see
// the package errors for the possible failures.
func Parse(s string) (Coord, error) {
	indices, err := parseIndices(s)
	if err != nil {
		return Coord{}, err
	}
	var c Coord
	c.n = uint8(len(indices))
	copy(c.idx[:], indices)
	return c, nil
}

// parseIndices is the scanner behind Parse and Valid. All class tests are
// byte-range tests, so any byte outside ASCII is rejected as unexpected
// rather than decoded.
func parseIndices(s string) ([]uint8, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	if len(s) > MaxStringLength {
		return nil, ErrInputTooLong
	}
	if !isLower(s[0]) {
		return nil, ErrInvalidStart
	}

	indices := make([]uint8, 0, MaxDimensions)
	expect := slotLower
	for pos := 0; pos < len(s); {
		start := pos
		var v int
		switch expect {
		case slotLower:
			for pos < len(s) && isLower(s[pos]) {
				pos++
			}
			if pos == start {
				return nil, ErrUnexpectedCharacter
			}
			v = decodeLetters(s[start:pos], 'a')
		case slotInteger:
			for pos < len(s) && isDigit(s[pos]) {
				pos++
			}
			if pos == start {
				return nil, ErrUnexpectedCharacter
			}
			if s[start] == '0' {
				return nil, ErrLeadingZero
			}
			// At most 6 digits inside a 7-byte string; cannot overflow.
			n := 0
			for i := start; i < pos; i++ {
				n = n*10 + int(s[i]-'0')
			}
			v = n - 1
		case slotUpper:
			for pos < len(s) && isUpper(s[pos]) {
				pos++
			}
			if pos == start {
				return nil, ErrUnexpectedCharacter
			}
			v = decodeLetters(s[start:pos], 'A')
		}
		if v > MaxIndexValue {
			return nil, ErrIndexOutOfRange
		}
		indices = append(indices, uint8(v))
		if len(indices) > MaxDimensions {
			return nil, ErrTooManyDimensions
		}
		expect = expect.next()
	}
	return indices, nil
}

// decodeLetters decodes a run of same-case letters into a 0-based index:
// one letter covers 0..25, two letters 26..701, and longer runs continue
// the same scheme (positional base-26 plus the count of all shorter
// encodings). Runs of 3+ letters always decode above MaxIndexValue, but the
// general formula keeps the scanner free of length special cases.
func decodeLetters(run string, base byte) int {
	offset, span := 0, 1
	for i := 1; i < len(run); i++ {
		span *= letterCount
		offset += span
	}
	v := 0
	for i := 0; i < len(run); i++ {
		v = v*letterCount + int(run[i]-base)
	}
	return offset + v
}
