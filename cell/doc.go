// Package cell implements CELL, a compact coordinate notation for abstract
// strategy board games.
//
// A CELL string encodes an ordered sequence of one to three 0-based indices,
// one per board dimension. The character class cycles with the dimension's
// position:
//
//	slot 0: lowercase letters  (a..z, aa..iv)
//	slot 1: 1-based integer    (1..256)
//	slot 2: uppercase letters  (A..Z, AA..IV)
//
// The encoded pieces are concatenated with no separators:
//
//	"a"       → [0]
//	"e4"      → [4 3]
//	"a1A"     → [0 0 0]
//	"iv256IV" → [255 255 255]
//
// # Letter Encoding
//
// Indices 0..25 encode as a single letter. Indices 26..255 encode as exactly
// two letters: first = (index-26)/26, second = (index-26)%26, each mapped
// 0..25 → letter. The same scheme applies to both cases; only the alphabet
// differs.
//
// # Limits
//
//   - At most 3 dimensions (MaxDimensions)
//   - Every index in [0, 255] (MaxIndexValue)
//   - Encoded strings never exceed 7 bytes (MaxStringLength, worst case
//     "iv256IV")
//
// # Codec Laws
//
// Formatting then parsing yields an equal coordinate, and parsing then
// formatting yields the same string: every coordinate has exactly one
// encoding, and every valid string decodes to exactly one coordinate.
//
// # Errors
//
// Parse, New, and Format fail with one of the package's fixed sentinel
// errors (ErrEmptyInput, ErrLeadingZero, ...). Match them with errors.Is.
// Validation is byte-level: non-ASCII input is always rejected, so Unicode
// look-alikes cannot slip through.
package cell
