package uuidv6

// RawSequence is an unbounded stream of raw identifiers backed by exclusive
// access to one generator. It never signals end of sequence: every pull
// produces a new value.
type RawSequence struct {
	gen *RawGenerator
}

// Next produces the next raw identifier, advancing the underlying generator.
func (s *RawSequence) Next() ([Size]byte, error) {
	return s.gen.Create()
}

// StringSequence is an unbounded stream of canonical identifier strings
// backed by exclusive access to one generator. It never signals end of
// sequence: every pull produces a new value.
type StringSequence struct {
	gen *StringGenerator
}

// Next produces the next identifier string, advancing the underlying
// generator.
func (s *StringSequence) Next() (string, error) {
	return s.gen.Create()
}
