// Package uuidv6 generates time-ordered, spatially unique 128-bit
// identifiers following the UUIDv6 layout: a 60-bit timestamp counted in
// 100ns ticks since 1582-10-15, the version nibble, a 16-bit monotonic
// counter reseeded on wraparound, and a 48-bit node identifier.
//
// Identifiers are produced either as raw 16-byte values or as canonical
// 36-character lowercase hex strings:
//
//	node, err := uuidv6.NewNode()
//	if err != nil { ... }
//	gen, err := node.StringGenerator()
//	if err != nil { ... }
//	id, err := gen.Create() // "1efa3c52-1d80-6b20-7f41-010203040506"
//
// Both generator kinds also expose an unbounded sequence view:
//
//	seq := gen.Sequence()
//	for {
//		id, err := seq.Next()
//		...
//	}
//
// A generator bounds each timestamp/counter epoch to 65536 identifiers:
// when the counter cycles back to its random seed the generator reseeds
// itself with a fresh timestamp and counter before producing further values.
//
// Generators are not safe for concurrent use. Give each concurrent producer
// its own generator, preferably constructed from a distinct node identifier.
package uuidv6
