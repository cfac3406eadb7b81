// Package clock wraps the system clock so generator timestamps can be
// pinned in tests. It lives under `internal` because callers must not
// depend on how the current time is obtained.
package clock

import "time"

// NowFunc returns the current time. Override in tests for determinism.
var NowFunc = time.Now

// UnixNano returns the current time as nanoseconds since the Unix epoch.
func UnixNano() int64 { return NowFunc().UnixNano() }
