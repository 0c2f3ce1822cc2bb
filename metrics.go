package arraylist

// Metrics contains statistical information about a list.
type Metrics struct {
	Size        int     // Live elements
	Capacity    int     // Allocated element slots
	ElementSize int     // Bytes per element
	Bytes       int     // Bytes of backing storage
	Grows       int     // Number of times the capacity doubled
	Utilization float64 // Ratio of size to capacity (0.0-1.0)
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *ByteList) Utilization() float64 {
	return utilization(l.size, l.capacity)
}

// Grows returns how many times the list has doubled its capacity.
func (l *ByteList) Grows() int {
	return l.grows
}

// Metrics returns a snapshot of list statistics. A released list reports
// zero size and capacity.
func (l *ByteList) Metrics() Metrics {
	return Metrics{
		Size:        l.size,
		Capacity:    l.capacity,
		ElementSize: l.elemSize,
		Bytes:       len(l.data),
		Grows:       l.grows,
		Utilization: l.Utilization(),
	}
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
func (l *List[T]) Utilization() float64 {
	return utilization(l.size, len(l.data))
}

// Grows returns how many times the list has doubled its capacity.
func (l *List[T]) Grows() int {
	return l.grows
}

// Metrics returns a snapshot of list statistics.
func (l *List[T]) Metrics() Metrics {
	es := sizeOf[T]()
	return Metrics{
		Size:        l.size,
		Capacity:    len(l.data),
		ElementSize: es,
		Bytes:       len(l.data) * es,
		Grows:       l.grows,
		Utilization: l.Utilization(),
	}
}

func utilization(size, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(size) / float64(capacity)
}
