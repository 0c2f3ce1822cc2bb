package arraylist

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/pavanmanishd/arraylist/codec"
)

// Example demonstrates basic List usage
func Example() {
	l, err := NewDefaultList(cmp.Compare[int])
	if err != nil {
		panic(err)
	}

	for _, v := range []int{5, 3, 8, 1} {
		_ = l.Add(v)
	}
	fmt.Printf("Size: %d\n", l.Size())
	fmt.Printf("Index of 8: %d\n", l.IndexOf(8).OrElse(-1))

	l.Sort()
	fmt.Printf("Sorted: %v\n", l.Values())

	l.RemoveElem(3)
	fmt.Printf("After removing 3: %v\n", l.Values())

	if _, ok := l.Get(10).Get(); !ok {
		fmt.Println("Index 10 is out of range")
	}

	// Output:
	// Size: 4
	// Index of 8: 2
	// Sorted: [1 3 5 8]
	// After removing 3: [1 5 8]
	// Index 10 is out of range
}

// ExampleByteList demonstrates a type-erased list of 4-byte records
func ExampleByteList() {
	le := binary.LittleEndian
	byValue := func(a, b []byte) int {
		return cmp.Compare(int32(le.Uint32(a)), int32(le.Uint32(b)))
	}

	l, err := NewDefault(byValue, 4)
	if err != nil {
		panic(err)
	}
	defer l.Release() // Always clean up

	for _, v := range []int32{5, 3, 8, 1} {
		_ = l.Add(le.AppendUint32(nil, uint32(v)))
	}
	l.Sort()

	buf := make([]byte, 4)
	for i := 0; i < l.Size(); i++ {
		b := l.Get(i, buf).MustGet()
		fmt.Printf("%d ", int32(le.Uint32(b)))
	}
	fmt.Println()

	// Output:
	// 1 3 5 8
}

// ExampleNewFor demonstrates typed access to a ByteList
func ExampleNewFor() {
	type point struct{ X, Y int32 }

	l, err := NewFor(func(a, b point) int { return cmp.Compare(a.X, b.X) }, 0)
	if err != nil {
		panic(err)
	}
	defer l.Release()

	_ = AddValue(l, point{3, 30})
	_ = AddValue(l, point{1, 10})
	_ = AddValue(l, point{2, 20})
	l.Sort()

	fmt.Printf("Element size: %d bytes\n", l.ElementSize())
	fmt.Printf("Points: %v\n", ValuesOf[point](l))
	fmt.Printf("Has {2 20}: %t\n", ContainsValue(l, point{2, 20}))

	// Output:
	// Element size: 8 bytes
	// Points: [{1 10} {2 20} {3 30}]
	// Has {2 20}: true
}

// ExampleList_Clear demonstrates list reuse with Clear
func ExampleList_Clear() {
	l, _ := NewList(cmp.Compare[int64], 4)

	for round := 1; round <= 3; round++ {
		for i := 0; i < 5; i++ {
			_ = l.Add(int64(i))
		}

		fmt.Printf("Round %d - size: %d, capacity: %d\n", round, l.Size(), l.Cap())

		// Capacity is kept for the next round
		l.Clear()
	}

	// Output:
	// Round 1 - size: 5, capacity: 8
	// Round 2 - size: 5, capacity: 8
	// Round 3 - size: 5, capacity: 8
}

// ExampleMetrics demonstrates monitoring list growth
func ExampleMetrics() {
	l, _ := NewList(cmp.Compare[int32], 2)
	for i := int32(0); i < 5; i++ {
		_ = l.Add(i)
	}

	m := l.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Size: %d\n", m.Size)
	fmt.Printf("  Capacity: %d\n", m.Capacity)
	fmt.Printf("  Bytes: %d\n", m.Bytes)
	fmt.Printf("  Grows: %d\n", m.Grows)
	fmt.Printf("  Utilization: %.1f%%\n", m.Utilization*100)

	// Output:
	// Metrics:
	//   Size: 5
	//   Capacity: 8
	//   Bytes: 32
	//   Grows: 2
	//   Utilization: 62.5%
}

// ExampleEncodeList demonstrates persisting a list as JSON
func ExampleEncodeList() {
	l, _ := NewList(cmp.Compare[string], 2)
	_ = l.Add("b")
	_ = l.Add("a")

	c := codec.NewJSONCodec[Snapshot[string]]()
	data, _ := EncodeList(l, c)
	fmt.Println(string(data))

	restored, _ := DecodeList(data, c, cmp.Compare[string])
	restored.Sort()
	fmt.Println(restored.Values())

	// Output:
	// {"capacity":2,"elements":["b","a"]}
	// [a b]
}
