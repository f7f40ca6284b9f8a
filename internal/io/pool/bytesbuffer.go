package pool

import (
	"bytes"
	"sync"

	"github.com/linecast/nextline/internal/constants"
)

// BytesBuffer is there to optimize memory allocations. Retained buffers
// come and go with every line boundary, so recycling them matters on
// streams with many short lines.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		b := bytes.Buffer{}
		b.Grow(constants.LineBufferInitialCapacity)
		return &b
	},
}

// GetBytesBuffer returns an empty buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	return BytesBuffer.Get().(*bytes.Buffer)
}

// RecycleBytesBuffer recycles the buffer again.
func RecycleBytesBuffer(b *bytes.Buffer) {
	if b == nil {
		return
	}
	b.Reset()
	BytesBuffer.Put(b)
}
