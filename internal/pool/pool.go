// Package pool recycles the encoder's scratch pixel buffers. Packing
// an image into the codec's row-major byte layout needs a buffer the
// size of the whole frame; pooling it keeps repeated encodes from
// hammering the allocator.
package pool

import "sync"

var buffers = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// GetBuffer returns a byte slice of length size. The contents are
// undefined; callers overwrite every byte.
func GetBuffer(size int) []byte {
	bp := buffers.Get().(*[]byte)
	if cap(*bp) < size {
		// Too small for this frame; let the old one go.
		*bp = make([]byte, size)
	}
	return (*bp)[:size]
}

// PutBuffer returns a buffer obtained from GetBuffer. The caller must
// not retain any reference to it.
func PutBuffer(b []byte) {
	if cap(b) == 0 {
		return
	}
	b = b[:0]
	buffers.Put(&b)
}
