package cell

// Coord is an immutable board coordinate of 1 to 3 dimensions, each index
// in [0, MaxIndexValue]. The zero Coord has no dimensions and is not
// producible by New or Parse.
//
// Coord is a comparable value type: == compares dimension count and every
// index, and a Coord can be used directly as a map key.
type Coord struct {
	n   uint8
	idx [MaxDimensions]uint8
}

// New builds a Coord from 0-based indices. It fails with ErrNoIndices for
// an empty argument list, ErrTooManyDimensions for more than three, and
// ErrIndexOutOfRange for any index outside [0, MaxIndexValue].
func New(indices ...int) (Coord, error) {
	if len(indices) == 0 {
		return Coord{}, ErrNoIndices
	}
	if len(indices) > MaxDimensions {
		return Coord{}, ErrTooManyDimensions
	}
	var c Coord
	c.n = uint8(len(indices))
	for i, v := range indices {
		if v < 0 || v > MaxIndexValue {
			return Coord{}, ErrIndexOutOfRange
		}
		c.idx[i] = uint8(v)
	}
	return c, nil
}

// MustNew is New for statically known indices; it panics on invalid input.
func MustNew(indices ...int) Coord {
	c, err := New(indices...)
	if err != nil {
		panic("cell: MustNew: " + err.Error())
	}
	return c
}

// Dimensions returns the number of indices (1..3; 0 only for the zero Coord).
func (c Coord) Dimensions() int {
	return int(c.n)
}

// Indices returns a fresh copy of the index sequence. Mutating the returned
// slice does not affect the Coord.
func (c Coord) Indices() []int {
	out := make([]int, c.n)
	for i := range out {
		out[i] = int(c.idx[i])
	}
	return out
}

// Index returns the index at 0-based position i. It panics if i is outside
// [0, Dimensions()), like slice indexing.
func (c Coord) Index(i int) int {
	if i < 0 || i >= int(c.n) {
		panic("cell: Index out of range")
	}
	return int(c.idx[i])
}

// Equal reports whether c and other have the same dimension count and
// indices. It is equivalent to ==.
func (c Coord) Equal(other Coord) bool {
	return c == other
}

// String returns the canonical CELL encoding. The zero Coord encodes as "".
func (c Coord) String() string {
	return formatIndices(c.idx[:c.n])
}
