// Package buffers pools the fixed-size byte slices used by the
// streaming transform path.
package buffers

import (
	"sync"
)

const (
	// StreamBlockSize is the read-block size for streaming payload
	// processing. It must stay a multiple of the sieve chunk size so
	// that blockwise sieving equals whole-payload sieving.
	StreamBlockSize = 4096
)

// BufferPool maintains a pool of byte slices to reduce GC pressure.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a pool handing out buffers of the given size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, size)
				return &buf
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool, sized to the pool's standard
// length. Callers only read or write the portions they fill.
func (p *BufferPool) Get() []byte {
	buffer := *(p.pool.Get().(*[]byte))
	if cap(buffer) < p.size {
		buffer = make([]byte, p.size)
	} else {
		buffer = buffer[:p.size]
	}
	return buffer
}

// Put returns a buffer to the pool. Undersized buffers are dropped.
func (p *BufferPool) Put(buffer []byte) {
	if buffer == nil || cap(buffer) < p.size {
		return
	}
	buffer = buffer[:p.size]
	p.pool.Put(&buffer)
}

// StreamBufferPool serves the mask/unmask streaming loops.
var StreamBufferPool = NewBufferPool(StreamBlockSize)
