package cell

import "errors"

// The closed set of validation failures. Messages are fixed so callers can
// match with errors.Is or by message equality; no error carries interpolated
// context.
var (
	ErrEmptyInput          = errors.New("empty input")
	ErrInputTooLong        = errors.New("input exceeds 7 characters")
	ErrInvalidStart        = errors.New("must start with lowercase letter")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrLeadingZero         = errors.New("leading zero")
	ErrTooManyDimensions   = errors.New("exceeds 3 dimensions")
	ErrIndexOutOfRange     = errors.New("index exceeds 255")
	ErrNoIndices           = errors.New("at least one index required")
)
