package uuidv6

import "errors"

var (
	// ErrEntropyUnavailable indicates the secure random source could not
	// supply bytes. Construction cannot be retried meaningfully.
	ErrEntropyUnavailable = errors.New("uuidv6: entropy source unavailable")

	// ErrClockFault indicates the system clock reported a time before the
	// Unix epoch, or the epoch shift overflowed.
	ErrClockFault = errors.New("uuidv6: clock fault")
)
