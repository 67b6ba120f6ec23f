// Package metrics holds process-wide diagnostic counters. Nothing here feeds
// back into request handling; the counters exist only to be read out.
package metrics

import "sync/atomic"

var bytesWritten atomic.Int64

// AddBytesWritten records n serialized response bytes.
func AddBytesWritten(n int) {
	bytesWritten.Add(int64(n))
}

// BytesWritten reports the total since process start (or the last Reset).
func BytesWritten() int64 {
	return bytesWritten.Load()
}

// Reset zeroes the counters. Called at startup and from tests.
func Reset() {
	bytesWritten.Store(0)
}
