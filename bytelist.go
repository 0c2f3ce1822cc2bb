package arraylist

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/samber/mo"
	"go.uber.org/zap"
)

// Comparator orders two elements of a ByteList. It returns a negative number
// when a sorts before b, zero when they are equivalent and a positive number
// otherwise. Both slices are exactly ElementSize bytes long and must not be
// retained or modified.
type Comparator func(a, b []byte) int

// ByteList is a type-erased array list of fixed-width byte records.
// Elements are copied in and out; the caller never holds a reference into the
// list's storage. Not goroutine-safe. Use SafeByteList for concurrent access.
//
// A ByteList owns a manually allocated buffer and must be released with
// Release once it is no longer needed.
type ByteList struct {
	data     []byte // capacity*elemSize bytes, nil after Release
	free     func() // frees data
	size     int
	capacity int
	elemSize int
	cmp      Comparator
	grows    int
	cfg      config
}

// New creates a ByteList holding elements of elementSize bytes with room for
// initialCapacity elements. If initialCapacity <= 0, DefaultCapacity is used.
func New(cmp Comparator, initialCapacity, elementSize int, opts ...Option) (*ByteList, error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	if elementSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrElementSize, elementSize)
	}
	if initialCapacity <= 0 {
		initialCapacity = DefaultCapacity
	}

	l := &ByteList{
		elemSize: elementSize,
		cmp:      cmp,
		cfg:      newConfig(opts),
	}
	if err := l.resize(initialCapacity); err != nil {
		return nil, err
	}
	return l, nil
}

// NewDefault creates a ByteList with DefaultCapacity.
func NewDefault(cmp Comparator, elementSize int, opts ...Option) (*ByteList, error) {
	return New(cmp, DefaultCapacity, elementSize, opts...)
}

// Add appends a copy of elem. The capacity doubles when the list is full.
// On error the list is left unchanged.
func (l *ByteList) Add(elem []byte) error {
	l.panicIfReleased()
	if len(elem) != l.elemSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrElementSize, len(elem), l.elemSize)
	}
	if l.size == l.capacity {
		if err := l.grow(); err != nil {
			return err
		}
	}
	copy(l.slot(l.size), elem)
	l.size++
	return nil
}

// Get copies the element at index into buf and returns it. buf is reused
// when its capacity is large enough, otherwise a new slice is allocated.
// Returns None and leaves buf untouched if index is out of range.
func (l *ByteList) Get(index int, buf []byte) mo.Option[[]byte] {
	l.panicIfReleased()
	if index < 0 || index >= l.size {
		return mo.None[[]byte]()
	}
	if cap(buf) < l.elemSize {
		buf = make([]byte, l.elemSize)
	}
	buf = buf[:l.elemSize]
	copy(buf, l.slot(index))
	return mo.Some(buf)
}

// Contains reports whether an element byte-equal to target is in the list.
func (l *ByteList) Contains(target []byte) bool {
	l.panicIfReleased()
	return l.indexOf(target) >= 0
}

// IndexOf returns the index of the first element byte-equal to target.
func (l *ByteList) IndexOf(target []byte) mo.Option[int] {
	l.panicIfReleased()
	if i := l.indexOf(target); i >= 0 {
		return mo.Some(i)
	}
	return mo.None[int]()
}

// RemoveAt removes the element at index, shifting later elements down by
// one. Returns false if index is out of range.
func (l *ByteList) RemoveAt(index int) bool {
	l.panicIfReleased()
	if index < 0 || index >= l.size {
		return false
	}
	l.compact(index)
	return true
}

// RemoveElem removes the first element byte-equal to target. Returns false
// if there is no such element.
func (l *ByteList) RemoveElem(target []byte) bool {
	l.panicIfReleased()
	i := l.indexOf(target)
	if i < 0 {
		return false
	}
	l.compact(i)
	return true
}

// Replace overwrites the element at index with a copy of elem. It does
// nothing if index is out of range.
func (l *ByteList) Replace(index int, elem []byte) error {
	l.panicIfReleased()
	if len(elem) != l.elemSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrElementSize, len(elem), l.elemSize)
	}
	if index < 0 || index >= l.size {
		return nil
	}
	copy(l.slot(index), elem)
	return nil
}

// Clear removes all elements but keeps the allocated capacity.
func (l *ByteList) Clear() {
	l.panicIfReleased()
	if l.cfg.zeroOnClear {
		clear(l.data[:l.size*l.elemSize])
	}
	l.size = 0
}

// Size returns the number of elements in the list.
func (l *ByteList) Size() int {
	return l.size
}

// Cap returns the number of elements the list can hold before growing.
func (l *ByteList) Cap() int {
	return l.capacity
}

// ElementSize returns the width in bytes of every element.
func (l *ByteList) ElementSize() int {
	return l.elemSize
}

// Sort sorts the list in ascending order defined by the comparator.
// The sort is not stable.
func (l *ByteList) Sort() {
	l.panicIfReleased()
	sort.Sort(l.sorter())
}

// SortStable sorts the list like Sort while keeping equal elements in their
// original order.
func (l *ByteList) SortStable() {
	l.panicIfReleased()
	sort.Stable(l.sorter())
}

// Values returns a copy of every element, in order.
func (l *ByteList) Values() [][]byte {
	l.panicIfReleased()
	out := make([][]byte, l.size)
	for i := range out {
		out[i] = bytes.Clone(l.slot(i))
	}
	return out
}

// Release frees the backing buffer and makes the list unusable.
// Any subsequent operation, including a second Release, panics. Size, Cap,
// ElementSize and the metrics accessors keep working and report an empty
// list.
func (l *ByteList) Release() {
	l.panicIfReleased()
	l.free()
	l.cfg.logger.Debug("arraylist released",
		zap.Int("capacity", l.capacity),
		zap.Int("element_size", l.elemSize))
	l.data = nil
	l.free = nil
	l.size = 0
	l.capacity = 0
}

// slot returns the storage of the element at index i.
func (l *ByteList) slot(i int) []byte {
	off := i * l.elemSize
	return l.data[off : off+l.elemSize : off+l.elemSize]
}

func (l *ByteList) indexOf(target []byte) int {
	if len(target) != l.elemSize {
		return -1
	}
	for i := 0; i < l.size; i++ {
		if bytes.Equal(l.slot(i), target) {
			return i
		}
	}
	return -1
}

// compact closes the gap at index by shifting the tail left one slot.
func (l *ByteList) compact(index int) {
	off := index * l.elemSize
	end := l.size * l.elemSize
	copy(l.data[off:end-l.elemSize], l.data[off+l.elemSize:end])
	clear(l.data[end-l.elemSize : end])
	l.size--
}

// grow doubles the capacity.
func (l *ByteList) grow() error {
	old := l.capacity
	next, ok := nextCapacity(old)
	if !ok {
		return fmt.Errorf("%w: capacity %d cannot double", ErrAlloc, old)
	}
	if err := l.resize(next); err != nil {
		return err
	}
	l.grows++
	l.cfg.logger.Debug("arraylist grown",
		zap.Int("old_capacity", old),
		zap.Int("new_capacity", next),
		zap.Int("element_size", l.elemSize))
	return nil
}

// resize moves the live elements into a new buffer of capacity elements and
// frees the old one.
func (l *ByteList) resize(capacity int) error {
	n, ok := bufferSize(capacity, l.elemSize)
	if !ok {
		return fmt.Errorf("%w: %d elements of %d bytes overflow", ErrAlloc, capacity, l.elemSize)
	}
	buf, free, err := l.cfg.allocator.Alloc(n)
	if err != nil {
		l.cfg.logger.Warn("arraylist allocation failed",
			zap.Int("bytes", n),
			zap.Error(err))
		return fmt.Errorf("%w: %d bytes: %v", ErrAlloc, n, err)
	}
	if l.data != nil {
		copy(buf, l.data[:l.size*l.elemSize])
		l.free()
	}
	l.data = buf
	l.free = free
	l.capacity = capacity
	return nil
}

// panicIfReleased panics if the list has been released.
func (l *ByteList) panicIfReleased() {
	if l.data == nil {
		panic(errUseAfterRelease)
	}
}
