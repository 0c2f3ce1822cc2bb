package arraylist

import (
	"fmt"

	"github.com/samber/mo"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// List is a generic array list with value semantics. Elements are compared
// with == for searching and ordered by the comparator for sorting.
// The zero value is not usable; create lists with NewList or NewDefaultList.
// Not goroutine-safe. Use SafeList for concurrent access.
type List[T comparable] struct {
	data  []T // len(data) is the capacity
	size  int
	cmp   func(a, b T) int
	grows int
	cfg   config
}

// NewList creates a List with room for initialCapacity elements.
// If initialCapacity <= 0, DefaultCapacity is used.
func NewList[T comparable](cmp func(a, b T) int, initialCapacity int, opts ...Option) (*List[T], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	if initialCapacity <= 0 {
		initialCapacity = DefaultCapacity
	}
	if _, ok := bufferSize(initialCapacity, elemWidth[T]()); !ok {
		return nil, fmt.Errorf("%w: %d elements overflow", ErrAlloc, initialCapacity)
	}
	return &List[T]{
		data: make([]T, initialCapacity),
		cmp:  cmp,
		cfg:  newConfig(opts),
	}, nil
}

// NewDefaultList creates a List with DefaultCapacity.
func NewDefaultList[T comparable](cmp func(a, b T) int, opts ...Option) (*List[T], error) {
	return NewList(cmp, DefaultCapacity, opts...)
}

// Add appends v, doubling the capacity when the list is full.
func (l *List[T]) Add(v T) error {
	if l.size == len(l.data) {
		if err := l.grow(); err != nil {
			return err
		}
	}
	l.data[l.size] = v
	l.size++
	return nil
}

// Get returns the element at index, or None if index is out of range.
func (l *List[T]) Get(index int) mo.Option[T] {
	if index < 0 || index >= l.size {
		return mo.None[T]()
	}
	return mo.Some(l.data[index])
}

// Contains reports whether v is in the list.
func (l *List[T]) Contains(v T) bool {
	return slices.Contains(l.live(), v)
}

// IndexOf returns the index of the first element equal to v.
func (l *List[T]) IndexOf(v T) mo.Option[int] {
	if i := slices.Index(l.live(), v); i >= 0 {
		return mo.Some(i)
	}
	return mo.None[int]()
}

// RemoveAt removes the element at index, keeping the order of the others.
// Returns false if index is out of range.
func (l *List[T]) RemoveAt(index int) bool {
	if index < 0 || index >= l.size {
		return false
	}
	l.compact(index)
	return true
}

// RemoveElem removes the first element equal to v.
func (l *List[T]) RemoveElem(v T) bool {
	i := slices.Index(l.live(), v)
	if i < 0 {
		return false
	}
	l.compact(i)
	return true
}

// Replace overwrites the element at index with v. Returns false if index is
// out of range.
func (l *List[T]) Replace(index int, v T) bool {
	if index < 0 || index >= l.size {
		return false
	}
	l.data[index] = v
	return true
}

// Clear removes all elements but keeps the allocated capacity.
func (l *List[T]) Clear() {
	if l.cfg.zeroOnClear {
		clear(l.live())
	}
	l.size = 0
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.size
}

// Cap returns the number of elements the list can hold before growing.
func (l *List[T]) Cap() int {
	return len(l.data)
}

// Sort sorts the list in ascending order. The sort is not stable.
func (l *List[T]) Sort() {
	slices.SortFunc(l.live(), l.cmp)
}

// SortStable sorts the list keeping equal elements in their original order.
func (l *List[T]) SortStable() {
	slices.SortStableFunc(l.live(), l.cmp)
}

// Values returns a copy of the elements, in order.
func (l *List[T]) Values() []T {
	return slices.Clone(l.live())
}

func (l *List[T]) live() []T {
	return l.data[:l.size]
}

func (l *List[T]) compact(index int) {
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	var zero T
	l.data[l.size-1] = zero
	l.size--
}

func (l *List[T]) grow() error {
	old := len(l.data)
	next, ok := nextCapacity(old)
	if ok {
		_, ok = bufferSize(next, elemWidth[T]())
	}
	if !ok {
		return fmt.Errorf("%w: capacity %d cannot double", ErrAlloc, old)
	}
	data := make([]T, next)
	copy(data, l.live())
	l.data = data
	l.grows++
	l.cfg.logger.Debug("arraylist grown",
		zap.Int("old_capacity", old),
		zap.Int("new_capacity", next))
	return nil
}

// elemWidth is the size of T, counting zero-size types as one byte so the
// overflow check still bounds the element count.
func elemWidth[T any]() int {
	return max(sizeOf[T](), 1)
}
