package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/log11/core"
)

// Formatter serializes a record into bytes. The returned slice is owned by
// the caller; sink writers enqueue it without copying.
type Formatter interface {
	Format(rec *core.Record) ([]byte, error)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
