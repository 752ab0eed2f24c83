package cell

// Valid reports whether s is a well-formed CELL string. It applies exactly
// the rules of Parse and discards the result. For the reason a string is
// invalid, use Parse and match the returned error with errors.Is.
func Valid(s string) bool {
	_, err := parseIndices(s)
	return err == nil
}
