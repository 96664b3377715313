package pool

import "github.com/valyala/bytebufferpool"

// BufferPool hands out reusable byte buffers for rendering reports.
// The underlying bytebufferpool calibrates its default size from usage.
type BufferPool struct {
	pool bytebufferpool.Pool
}

// NewBufferPool creates a new buffer pool
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

// Get retrieves an empty buffer from the pool
func (bp *BufferPool) Get() *bytebufferpool.ByteBuffer {
	return bp.pool.Get()
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buf *bytebufferpool.ByteBuffer) {
	bp.pool.Put(buf)
}
