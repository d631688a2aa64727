// Package scratch keeps reusable type buffers for short-lived projections.
// Buffers are scoped to a single call: rent, fill, copy out, release.
package scratch

import (
	"reflect"
	"sync"
)

// maxRetained caps the capacity of buffers returned to the pool so one very
// wide signature does not pin a large backing array.
const maxRetained = 64

// Buffer is a rented scratch slice. Callers must not retain Types after
// calling Release.
type Buffer struct {
	Types []reflect.Type
}

var pool = sync.Pool{
	New: func() any {
		return &Buffer{Types: make([]reflect.Type, 0, 8)}
	},
}

// Rent returns a buffer whose Types slice has length n.
func Rent(n int) *Buffer {
	buf := pool.Get().(*Buffer)
	if cap(buf.Types) < n {
		buf.Types = make([]reflect.Type, n)
		return buf
	}
	buf.Types = buf.Types[:n]
	return buf
}

// Release clears the buffer and hands it back to the pool. A nil buffer is
// ignored.
func Release(buf *Buffer) {
	if buf == nil {
		return
	}
	clear(buf.Types)
	if cap(buf.Types) > maxRetained {
		return
	}
	buf.Types = buf.Types[:0]
	pool.Put(buf)
}
