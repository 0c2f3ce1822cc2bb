package arraylist

// recordSorter implements sort.Interface over the fixed-width records of a
// ByteList.
type recordSorter struct {
	l   *ByteList
	tmp []byte
}

func (l *ByteList) sorter() *recordSorter {
	return &recordSorter{l: l, tmp: make([]byte, l.elemSize)}
}

func (s *recordSorter) Len() int {
	return s.l.size
}

func (s *recordSorter) Less(i, j int) bool {
	return s.l.cmp(s.l.slot(i), s.l.slot(j)) < 0
}

func (s *recordSorter) Swap(i, j int) {
	a, b := s.l.slot(i), s.l.slot(j)
	copy(s.tmp, a)
	copy(a, b)
	copy(b, s.tmp)
}
