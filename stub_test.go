package uuidv6

import (
	"errors"
	"time"

	"github.com/viant/uuidv6/internal/clock"
	"github.com/viant/uuidv6/internal/entropy"
)

// pinClock pins the clock to a fixed nanosecond instant. The returned
// function restores the real clock.
func pinClock(nanos int64) func() {
	prev := clock.NowFunc
	clock.NowFunc = func() time.Time { return time.Unix(0, nanos) }
	return func() { clock.NowFunc = prev }
}

// pinEntropy serves one chunk per entropy read, in order, and fails once
// the chunks run out. The returned function restores the real source.
func pinEntropy(chunks ...[]byte) func() {
	prev := entropy.ReadFunc
	entropy.ReadFunc = func(b []byte) error {
		if len(chunks) == 0 {
			return errors.New("stub entropy exhausted")
		}
		copy(b, chunks[0])
		chunks = chunks[1:]
		return nil
	}
	return func() { entropy.ReadFunc = prev }
}

// failEntropy makes every entropy read fail. The returned function restores
// the real source.
func failEntropy() func() {
	prev := entropy.ReadFunc
	entropy.ReadFunc = func([]byte) error { return errors.New("stub entropy failure") }
	return func() { entropy.ReadFunc = prev }
}
