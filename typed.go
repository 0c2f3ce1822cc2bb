package arraylist

import (
	"fmt"
	"unsafe"

	"github.com/samber/mo"
)

// The functions in this file view a ByteList as a list of T. T must be a
// pointer-free type whose size equals the list's element size; elements are
// compared byte for byte, so padding inside T takes part in equality.

// NewFor creates a ByteList sized for values of type T, ordered by cmp.
// If initialCapacity <= 0, DefaultCapacity is used.
func NewFor[T any](cmp func(a, b T) int, initialCapacity int, opts ...Option) (*ByteList, error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	return New(TypedComparator(cmp), initialCapacity, sizeOf[T](), opts...)
}

// TypedComparator adapts an ordering over T into a Comparator over the raw
// bytes of T.
func TypedComparator[T any](cmp func(a, b T) int) Comparator {
	return func(a, b []byte) int {
		var x, y T
		copy(bytesOf(&x), a)
		copy(bytesOf(&y), b)
		return cmp(x, y)
	}
}

// AddValue appends a copy of v to l.
func AddValue[T any](l *ByteList, v T) error {
	checkSize[T](l)
	return l.Add(bytesOf(&v))
}

// GetValue returns a copy of the element at index, or None if index is out
// of range.
func GetValue[T any](l *ByteList, index int) mo.Option[T] {
	checkSize[T](l)
	var v T
	if l.Get(index, bytesOf(&v)).IsAbsent() {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// ContainsValue reports whether v is in l.
func ContainsValue[T any](l *ByteList, v T) bool {
	checkSize[T](l)
	return l.Contains(bytesOf(&v))
}

// IndexOfValue returns the index of the first element equal to v.
func IndexOfValue[T any](l *ByteList, v T) mo.Option[int] {
	checkSize[T](l)
	return l.IndexOf(bytesOf(&v))
}

// ReplaceValue overwrites the element at index with v. Out of range indexes
// are ignored.
func ReplaceValue[T any](l *ByteList, index int, v T) {
	checkSize[T](l)
	// Width is checked above, Replace cannot fail
	_ = l.Replace(index, bytesOf(&v))
}

// RemoveValue removes the first element equal to v.
func RemoveValue[T any](l *ByteList, v T) bool {
	checkSize[T](l)
	return l.RemoveElem(bytesOf(&v))
}

// ValuesOf returns a copy of every element of l as T.
func ValuesOf[T any](l *ByteList) []T {
	checkSize[T](l)
	l.panicIfReleased()
	out := make([]T, l.size)
	for i := range out {
		copy(bytesOf(&out[i]), l.slot(i))
	}
	return out
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bytesOf returns the memory of *v as a byte slice.
func bytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// checkSize panics if T does not match the element size of l.
func checkSize[T any](l *ByteList) {
	if n := sizeOf[T](); n != l.elemSize {
		panic(fmt.Sprintf("arraylist: element size mismatch: %T is %d bytes, list holds %d", *new(T), n, l.elemSize))
	}
}
