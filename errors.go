package arraylist

import "errors"

var (
	// ErrNilComparator is returned when a list is created without a comparator.
	ErrNilComparator = errors.New("arraylist: comparator must not be nil")

	// ErrElementSize is returned for a non-positive element size, or when an
	// element's length does not match the list's element size.
	ErrElementSize = errors.New("arraylist: invalid element size")

	// ErrAlloc is returned when backing storage cannot be allocated.
	ErrAlloc = errors.New("arraylist: allocation failed")

	// ErrCorruptSnapshot is returned when a snapshot cannot be restored.
	ErrCorruptSnapshot = errors.New("arraylist: corrupt snapshot")
)

const errUseAfterRelease = "arraylist: use after Release()"
