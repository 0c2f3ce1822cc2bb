package arraylist

import (
	"fmt"
	"math"

	"github.com/imgk/memory-go"
)

// DefaultCapacity is the initial capacity used by NewDefault and
// NewDefaultList, and the fallback for a non-positive initial capacity.
const DefaultCapacity = 8

// Allocator provides the backing buffers of a ByteList. Alloc returns a
// zeroed buffer of exactly n bytes together with the function that frees it.
// The free function is called exactly once, when the buffer is replaced by a
// larger one or when the list is released.
type Allocator interface {
	Alloc(n int) (buf []byte, free func(), err error)
}

// ManualAllocator allocates outside the Go heap's normal lifecycle through
// memory-go. Buffers must be freed explicitly, which ByteList does on growth
// and on Release. It is the default allocator.
type ManualAllocator struct{}

// Alloc implements Allocator.
func (ManualAllocator) Alloc(n int) ([]byte, func(), error) {
	ptr, buf, err := memory.Alloc[byte](n)
	if err != nil {
		return nil, nil, err
	}
	if len(buf) < n {
		memory.Free(ptr)
		return nil, nil, fmt.Errorf("short buffer: got %d bytes, want %d", len(buf), n)
	}
	buf = buf[:n:n]
	// Manual memory is not guaranteed to be zeroed
	clear(buf)
	return buf, func() { memory.Free(ptr) }, nil
}

// HeapAllocator allocates with make and leaves reclamation to the garbage
// collector. Its free function is a no-op.
type HeapAllocator struct{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(n int) ([]byte, func(), error) {
	return make([]byte, n), func() {}, nil
}

// nextCapacity returns the capacity after one growth step.
func nextCapacity(capacity int) (int, bool) {
	if capacity <= 0 {
		return DefaultCapacity, true
	}
	if capacity > math.MaxInt/2 {
		return 0, false
	}
	return capacity * 2, true
}

// bufferSize returns capacity*elemSize, reporting false on overflow.
func bufferSize(capacity, elemSize int) (int, bool) {
	if capacity < 0 || elemSize <= 0 {
		return 0, false
	}
	if capacity > math.MaxInt/elemSize {
		return 0, false
	}
	return capacity * elemSize, true
}
