package uuidv6

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/viant/uuidv6/internal/clock"
	"github.com/viant/uuidv6/internal/entropy"
)

// Size is the width of a raw identifier in bytes.
const Size = 16

// epochShiftNanos shifts Unix-epoch nanoseconds to the UUID timestamp epoch
// (1582-10-15) before the division into 100ns ticks.
const epochShiftNanos = 1221929280000000

// RawGenerator produces raw 16-byte UUIDv6 values for a single node. Each
// instance must be exclusively owned by one caller; there is no internal
// locking.
type RawGenerator struct {
	ts             uint64
	counter        uint16
	initialCounter uint16
	node           Node
}

// NewRawGenerator creates a generator for the given node, seeded with the
// current timestamp and a random counter.
func NewRawGenerator(node Node) (RawGenerator, error) {
	nanos := clock.UnixNano()
	if nanos < 0 || nanos > math.MaxInt64-epochShiftNanos {
		return RawGenerator{}, fmt.Errorf("%w: %d ns since the unix epoch is outside the encodable range", ErrClockFault, nanos)
	}
	ts := uint64(nanos+epochShiftNanos) / 100

	var seed [2]byte
	if err := entropy.Read(seed[:]); err != nil {
		return RawGenerator{}, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	counter := binary.BigEndian.Uint16(seed[:])
	return RawGenerator{
		ts:             ts,
		counter:        counter,
		initialCounter: counter,
		node:           node,
	}, nil
}

// Create returns the next identifier and advances the generator.
//
// Bytes [0,8) hold the 60-bit timestamp left-shifted by 4, with the version
// nibble 0x6 overlaid on the high bits of byte 6. Bytes [8,10) hold the
// counter, bytes [10,16) the node. When the incremented counter cycles back
// to its seed value the whole generator state is replaced with a freshly
// constructed one for the same node, so one timestamp/counter epoch yields
// at most 65536 identifiers.
//
// Create fails only when that reseed fails; a generator that returned an
// error must be discarded.
func (g *RawGenerator) Create() ([Size]byte, error) {
	var buf [Size]byte
	binary.BigEndian.PutUint64(buf[0:8], g.ts<<4)
	// Overlay the version nibble, carrying the displaced timestamp bits
	// forward into the low 12 bits.
	overlay := uint16(0x6)<<12 | binary.BigEndian.Uint16(buf[6:8])>>4
	binary.BigEndian.PutUint16(buf[6:8], overlay)

	binary.BigEndian.PutUint16(buf[8:10], g.counter)
	g.counter++
	if g.counter == g.initialCounter {
		fresh, err := NewRawGenerator(g.node)
		if err != nil {
			return [Size]byte{}, err
		}
		*g = fresh
	}

	copy(buf[10:], g.node.id[:])
	return buf, nil
}

// Sequence returns an unbounded view over this generator. Pulling from the
// sequence mutates the generator; a fresh sequence needs a fresh generator.
func (g *RawGenerator) Sequence() *RawSequence {
	return &RawSequence{gen: g}
}
