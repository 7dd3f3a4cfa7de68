package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Cursor[span, int] = span(0)

// span is a cursor over a run of integers: the position and the
// element are the same number, so span(lo), span(hi) bounds the range
// [lo, hi). It keeps the tests here independent of any real container.
type span int

func (s span) Advance() span {
	return s + 1
}

func (s span) NotEqual(other span) bool {
	return s != other
}

func (s span) Item() int {
	return int(s)
}

func TestEach(t *testing.T) {
	tests := []struct {
		name       string
		begin, end span
		stopAt     int // stop once this element is seen; 0 walks everything
		want       []int
	}{
		{
			name:  "empty",
			begin: 0,
			end:   0,
			want:  nil,
		},
		{
			name:  "one",
			begin: 0,
			end:   1,
			want:  []int{0},
		},
		{
			name:  "full range",
			begin: 2,
			end:   7,
			want:  []int{2, 3, 4, 5, 6},
		},
		{
			name:   "early stop",
			begin:  0,
			end:    100,
			stopAt: 3,
			want:   []int{0, 1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			Each(tt.begin, tt.end, func(n int) bool {
				got = append(got, n)
				return tt.stopAt == 0 || n < tt.stopAt
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollect(t *testing.T) {
	t.Run("empty range is nil", func(t *testing.T) {
		assert.Nil(t, Collect[int](span(5), span(5)))
	})

	t.Run("full range", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, Collect[int](span(1), span(5)))
	})
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count[int](span(0), span(0)), "empty")
	assert.Equal(t, 1, Count[int](span(9), span(10)), "one")
	assert.Equal(t, 10, Count[int](span(0), span(10)), "ten")
}
