package arraylist

import (
	"sync"

	"github.com/samber/mo"
)

// SafeByteList is a mutex-protected wrapper around ByteList for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking.
type SafeByteList struct {
	mu sync.Mutex
	l  *ByteList
}

// NewSafeByteList creates a thread-safe ByteList. See New.
func NewSafeByteList(cmp Comparator, initialCapacity, elementSize int, opts ...Option) (*SafeByteList, error) {
	l, err := New(cmp, initialCapacity, elementSize, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeByteList{l: l}, nil
}

// Add thread-safely appends a copy of elem.
func (s *SafeByteList) Add(elem []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Add(elem)
}

// Get thread-safely copies the element at index into buf.
func (s *SafeByteList) Get(index int, buf []byte) mo.Option[[]byte] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Get(index, buf)
}

// Contains thread-safely reports whether target is in the list.
func (s *SafeByteList) Contains(target []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Contains(target)
}

// IndexOf thread-safely returns the index of the first match of target.
func (s *SafeByteList) IndexOf(target []byte) mo.Option[int] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.IndexOf(target)
}

// RemoveAt thread-safely removes the element at index.
func (s *SafeByteList) RemoveAt(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(index)
}

// RemoveElem thread-safely removes the first match of target.
func (s *SafeByteList) RemoveElem(target []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveElem(target)
}

// Replace thread-safely overwrites the element at index.
func (s *SafeByteList) Replace(index int, elem []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Replace(index, elem)
}

// Clear thread-safely removes all elements.
func (s *SafeByteList) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Size thread-safely returns the number of elements.
func (s *SafeByteList) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Size()
}

// Sort thread-safely sorts the list.
func (s *SafeByteList) Sort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Sort()
}

// SortStable thread-safely sorts the list, keeping equal elements in order.
func (s *SafeByteList) SortStable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.SortStable()
}

// Values thread-safely returns a copy of every element.
func (s *SafeByteList) Values() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Values()
}

// Metrics thread-safely returns a snapshot of list statistics.
func (s *SafeByteList) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Metrics()
}

// Release thread-safely frees the list. Subsequent operations panic.
func (s *SafeByteList) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Release()
}

// SafeList is a mutex-protected wrapper around List.
type SafeList[T comparable] struct {
	mu sync.Mutex
	l  *List[T]
}

// NewSafeList creates a thread-safe List. See NewList.
func NewSafeList[T comparable](cmp func(a, b T) int, initialCapacity int, opts ...Option) (*SafeList[T], error) {
	l, err := NewList(cmp, initialCapacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeList[T]{l: l}, nil
}

// Add thread-safely appends v.
func (s *SafeList[T]) Add(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Add(v)
}

// Get thread-safely returns the element at index.
func (s *SafeList[T]) Get(index int) mo.Option[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Get(index)
}

// Contains thread-safely reports whether v is in the list.
func (s *SafeList[T]) Contains(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Contains(v)
}

// IndexOf thread-safely returns the index of the first element equal to v.
func (s *SafeList[T]) IndexOf(v T) mo.Option[int] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.IndexOf(v)
}

// RemoveAt thread-safely removes the element at index.
func (s *SafeList[T]) RemoveAt(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(index)
}

// RemoveElem thread-safely removes the first element equal to v.
func (s *SafeList[T]) RemoveElem(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveElem(v)
}

// Replace thread-safely overwrites the element at index.
func (s *SafeList[T]) Replace(index int, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Replace(index, v)
}

// Clear thread-safely removes all elements.
func (s *SafeList[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Size thread-safely returns the number of elements.
func (s *SafeList[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Size()
}

// Sort thread-safely sorts the list.
func (s *SafeList[T]) Sort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Sort()
}

// SortStable thread-safely sorts the list, keeping equal elements in order.
func (s *SafeList[T]) SortStable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.SortStable()
}

// Values thread-safely returns a copy of the elements.
func (s *SafeList[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Values()
}

// Metrics thread-safely returns a snapshot of list statistics.
func (s *SafeList[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Metrics()
}
