package generator

import (
	"bytes"
	"sync"
)

// maxPooledBuffer caps the buffers kept for reuse; a single-file declaration
// for a large backend can grow far past the usual unit size.
const maxPooledBuffer = 1 << 20

// unitBufferSize is the initial capacity of a rendering buffer, sized for
// one mod with a few dozen operations.
const unitBufferSize = 16 * 1024

var bufferPool = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, unitBufferSize)) },
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	bufferPool.Put(buf)
}
