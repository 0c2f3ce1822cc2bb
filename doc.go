// Package arraylist implements a dynamically resizable array list for Go.
//
// # Overview
//
// An array list stores its elements contiguously and doubles its capacity
// whenever an insert would overflow it. Elements are copied in and out, so
// callers never hold a reference into the list's storage. The package offers
// two lists with identical semantics:
//
//   - ByteList stores fixed-width byte records of a size chosen at creation.
//     Equality is byte equality and ordering is a caller-supplied Comparator.
//   - List[T] stores values of a comparable type. Equality is == and
//     ordering is a func(a, b T) int.
//
// # Basic Usage
//
//	l, err := arraylist.NewDefaultList(cmp.Compare[int])
//	if err != nil {
//		return err
//	}
//	_ = l.Add(5)
//	_ = l.Add(3)
//	l.Sort()
//	v, ok := l.Get(0).Get() // 3, true
//
// A ByteList owns manually allocated memory and must be released:
//
//	l, err := arraylist.NewFor(cmp.Compare[int32], 0)
//	if err != nil {
//		return err
//	}
//	defer l.Release()
//
//	_ = arraylist.AddValue(l, int32(42))
//	v := arraylist.GetValue[int32](l, 0).MustGet()
//
// # Missing Elements
//
// Out of range indexes are not errors. Get and IndexOf return mo.Option
// values, and RemoveAt, RemoveElem and Replace report whether anything
// changed.
//
// # Thread Safety
//
// ByteList and List are not thread-safe. For concurrent access, use
// SafeByteList or SafeList, which serialize every call with a mutex.
//
// # Memory Layout
//
// A ByteList with element size n and capacity c owns a single buffer of n*c
// bytes. Element i lives at offset i*n. Removal shifts the tail left one slot
// so the relative order of the remaining elements is preserved.
//
// # Performance Characteristics
//
//   - Add: O(1) amortized
//   - Get, Replace, Size: O(1)
//   - Contains, IndexOf, RemoveAt, RemoveElem: O(size)
//   - Sort: O(size log size)
//   - Clear: O(size), or O(1) with WithZeroOnClear(false)
//
// # Important Notes
//
//   - Any use of a ByteList after Release panics, except Size, Cap,
//     ElementSize and the metrics accessors, which report an empty list
//   - Clear keeps the allocated capacity; lists never shrink
//   - Sort is not stable; use SortStable when equal elements must keep
//     their relative order
//
// # Metrics and Snapshots
//
// Metrics reports size, capacity, utilization and the number of growths.
// Snapshot, EncodeList and DecodeList persist lists through the codecs in
// the codec package.
package arraylist
