package pool

import "sync"

const (
	// TagBufferDefaultSize is the default capacity of a pooled ByteBuffer.
	// Sized for typical tag payloads (a schematic root compound with its
	// block arrays usually lands in the tens of KiB).
	TagBufferDefaultSize = 1024 * 4
	// TagBufferMaxThreshold is the largest buffer returned to the pool;
	// anything bigger is dropped so one huge tree does not pin memory.
	TagBufferMaxThreshold = 1024 * 1024
)

// ByteBuffer is an append-oriented byte buffer reused through a sync.Pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. If the buffer already has sufficient spare capacity, Grow
// does nothing.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	curLen := len(bb.B)
	if cap(bb.B)-curLen >= requiredBytes {
		return
	}

	grown := make([]byte, curLen, growCap(cap(bb.B), curLen+requiredBytes))
	copy(grown, bb.B)
	bb.B = grown
}

// growCap picks the new capacity: at least need, doubling small buffers
// and growing large ones by 25% to bound copy costs.
func growCap(curCap, need int) int {
	newCap := curCap * 2
	if curCap >= 1024*32 {
		newCap = curCap + curCap/4
	}
	if newCap < need {
		newCap = need
	}
	if newCap < TagBufferDefaultSize {
		newCap = TagBufferDefaultSize
	}

	return newCap
}

var tagBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(TagBufferDefaultSize)
	},
}

// GetTagBuffer obtains a reset ByteBuffer from the pool.
func GetTagBuffer() *ByteBuffer {
	buf := tagBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutTagBuffer returns a ByteBuffer to the pool. Oversized buffers are
// dropped instead of pooled.
func PutTagBuffer(buf *ByteBuffer) {
	if buf == nil || buf.Cap() > TagBufferMaxThreshold {
		return
	}
	tagBufferPool.Put(buf)
}
