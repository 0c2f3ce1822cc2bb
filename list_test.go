package arraylist

import (
	"cmp"
	"fmt"
	"strings"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newIntList(t *testing.T, capacity int, values ...int) *List[int] {
	t.Helper()
	l, err := NewList(cmp.Compare[int], capacity)
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, l.Add(v))
	}
	return l
}

func TestNewList(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"default capacity", 0, DefaultCapacity},
		{"negative capacity", -5, DefaultCapacity},
		{"custom capacity", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewList(cmp.Compare[int], tt.capacity)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.Cap())
			assert.Equal(t, 0, l.Size())
		})
	}

	_, err := NewList[int](nil, 4)
	assert.ErrorIs(t, err, ErrNilComparator)

	l, err := NewDefaultList(strings.Compare)
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, l.Cap())
}

func TestListScenario(t *testing.T) {
	// arrange
	l, err := NewDefaultList(cmp.Compare[int32])
	require.NoError(t, err)

	// act
	for _, v := range []int32{5, 3, 8, 1} {
		require.NoError(t, l.Add(v))
	}

	// assert
	assert.Equal(t, 4, l.Size())
	assert.Equal(t, mo.Some(2), l.IndexOf(8))

	l.Sort()
	assert.Equal(t, []int32{1, 3, 5, 8}, l.Values())

	assert.True(t, l.RemoveElem(3))
	assert.Equal(t, []int32{1, 5, 8}, l.Values())
}

func TestListGrowth(t *testing.T) {
	l := newIntList(t, 1)

	for i := 0; i < 9; i++ {
		require.NoError(t, l.Add(i))
	}

	assert.Equal(t, 9, l.Size())
	assert.Equal(t, 16, l.Cap())
	assert.Equal(t, 4, l.Grows())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, l.Values())
}

func TestListGet(t *testing.T) {
	l := newIntList(t, 4, 10, 20)

	assert.Equal(t, mo.Some(10), l.Get(0))
	assert.Equal(t, mo.Some(20), l.Get(1))
	assert.Equal(t, mo.None[int](), l.Get(2))
	assert.Equal(t, mo.None[int](), l.Get(-1))
}

func TestListSearch(t *testing.T) {
	l := newIntList(t, 4, 4, 5, 4)

	assert.True(t, l.Contains(5))
	assert.False(t, l.Contains(6))
	assert.Equal(t, mo.Some(0), l.IndexOf(4))
	assert.Equal(t, mo.None[int](), l.IndexOf(6))
}

func TestListRemoveAt(t *testing.T) {
	for k := 0; k < 4; k++ {
		t.Run(fmt.Sprintf("index-%d", k), func(t *testing.T) {
			l := newIntList(t, 4, 0, 1, 2, 3)

			require.True(t, l.RemoveAt(k))

			want := []int{0, 1, 2, 3}
			want = append(want[:k], want[k+1:]...)
			assert.Equal(t, want, l.Values())
			assert.Zero(t, l.data[3])
		})
	}

	l := newIntList(t, 4, 1)
	assert.False(t, l.RemoveAt(1))
	assert.False(t, l.RemoveAt(-1))
}

func TestListRemoveElemSingleOccurrence(t *testing.T) {
	l := newIntList(t, 4, 7, 1, 7, 7)

	assert.True(t, l.RemoveElem(7))
	assert.Equal(t, []int{1, 7, 7}, l.Values())
	assert.False(t, l.RemoveElem(2))
	assert.Equal(t, 3, l.Size())
}

func TestListReplace(t *testing.T) {
	l := newIntList(t, 4, 1, 2)

	assert.True(t, l.Replace(0, 10))
	assert.False(t, l.Replace(2, 30))
	assert.Equal(t, []int{10, 2}, l.Values())
}

func TestListClear(t *testing.T) {
	l, err := NewList(strings.Compare, 2)
	require.NoError(t, err)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, l.Add(s))
	}
	capacity := l.Cap()

	l.Clear()

	assert.Equal(t, 0, l.Size())
	assert.Equal(t, capacity, l.Cap())
	assert.Equal(t, []string{"", "", "", ""}, l.data)

	require.NoError(t, l.Add("z"))
	assert.Equal(t, []string{"z"}, l.Values())
}

func TestListSortStable(t *testing.T) {
	type entry struct {
		key, seq int
	}
	l, err := NewList(func(a, b entry) int { return cmp.Compare(a.key, b.key) }, 0)
	require.NoError(t, err)
	for i, k := range []int{2, 1, 2, 1, 0} {
		require.NoError(t, l.Add(entry{k, i}))
	}

	l.SortStable()

	assert.Equal(t, []entry{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}}, l.Values())
}

func TestListValuesIsCopy(t *testing.T) {
	l := newIntList(t, 4, 1, 2)

	v := l.Values()
	v[0] = 100

	assert.Equal(t, mo.Some(1), l.Get(0))
}

func TestListLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l, err := NewList(cmp.Compare[int], 1, WithLogger(zap.New(core)))
	require.NoError(t, err)

	require.NoError(t, l.Add(1))
	require.NoError(t, l.Add(2))
	require.NoError(t, l.Add(3))

	assert.Equal(t, 2, logs.FilterMessage("arraylist grown").Len())
}
