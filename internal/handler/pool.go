package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize covers the largest routine payload (a full history page)
const responseBufferSize = 1024

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool.
// Oversized buffers are dropped so one large response does not pin memory.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*responseBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
