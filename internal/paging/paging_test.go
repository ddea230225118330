package paging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		pageSize   int
		want       int
	}{
		{name: "empty", totalCount: 0, pageSize: 10, want: 0},
		{name: "exact multiple", totalCount: 10, pageSize: 5, want: 2},
		{name: "remainder", totalCount: 23, pageSize: 10, want: 3},
		{name: "single partial page", totalCount: 1, pageSize: 10, want: 1},
		{name: "one full page", totalCount: 5, pageSize: 5, want: 1},
		{name: "one over", totalCount: 11, pageSize: 5, want: 3},
		{name: "non-positive page size", totalCount: 11, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalCount, tt.pageSize))
		})
	}
}

func TestTotalPages_MatchesCeilForRange(t *testing.T) {
	for pageSize := 1; pageSize <= 12; pageSize++ {
		for total := 0; total <= 200; total++ {
			want := total / pageSize
			if total%pageSize != 0 {
				want++
			}
			require.Equal(t, want, TotalPages(total, pageSize), "total=%d pageSize=%d", total, pageSize)
		}
	}
}

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "absent defaults to first page", raw: "", want: 1},
		{name: "plain number", raw: "3", want: 3},
		{name: "surrounding spaces", raw: " 7 ", want: 7},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-2", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "fraction", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePage(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWindow(t *testing.T) {
	assert.Equal(t, Window{Start: 1, End: 10}, NewWindow(1, 10))
	assert.Equal(t, Window{Start: 21, End: 30}, NewWindow(3, 10))
	assert.Equal(t, Window{Start: 1, End: 5}, NewWindow(1, 5))

	// windows past the data are still well formed
	assert.Equal(t, Window{Start: 991, End: 1000}, NewWindow(100, 10))
}

func TestMaxPage(t *testing.T) {
	for _, size := range []int{1, 3, 10, 25} {
		last := MaxPage(size)
		w := NewWindow(last, size)

		assert.Positive(t, w.Start, "size=%d", size)
		assert.GreaterOrEqual(t, w.End, w.Start, "size=%d", size)
		assert.Equal(t, last*size, w.End, "size=%d", size)
		assert.Less(t, math.MaxInt-w.End, size, "size=%d: next page would overflow", size)
	}
	assert.Equal(t, 0, MaxPage(0))
}

func TestNavigationBlock(t *testing.T) {
	tests := []struct {
		name        string
		totalPages  int
		blockSize   int
		currentPage int
		want        Block
	}{
		{name: "first block", totalPages: 23, blockSize: 10, currentPage: 1, want: Block{Start: 1, End: 10}},
		{name: "last page of first block", totalPages: 23, blockSize: 10, currentPage: 10, want: Block{Start: 1, End: 10}},
		{name: "second block", totalPages: 23, blockSize: 10, currentPage: 11, want: Block{Start: 11, End: 20}},
		{name: "partial final block", totalPages: 23, blockSize: 10, currentPage: 22, want: Block{Start: 21, End: 23}},
		{name: "no pages", totalPages: 0, blockSize: 10, currentPage: 1, want: Block{Start: 1, End: 0}},
		{name: "huge page far past the end", totalPages: 3, blockSize: 10, currentPage: math.MaxInt, want: Block{Start: (math.MaxInt-1)/10*10 + 1, End: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NavigationBlock(tt.totalPages, tt.blockSize, tt.currentPage))
		})
	}
}

func TestNewNavigation(t *testing.T) {
	t.Run("middle block has both neighbours", func(t *testing.T) {
		nav := NewNavigation(23, 5, 7)

		assert.Equal(t, []int{6, 7, 8, 9, 10}, nav.Pages)
		assert.True(t, nav.HasPrevBlock)
		assert.Equal(t, 5, nav.PrevBlockPage)
		assert.True(t, nav.HasNextBlock)
		assert.Equal(t, 11, nav.NextBlockPage)
	})

	t.Run("single block", func(t *testing.T) {
		nav := NewNavigation(3, 10, 2)

		assert.Equal(t, []int{1, 2, 3}, nav.Pages)
		assert.False(t, nav.HasPrevBlock)
		assert.False(t, nav.HasNextBlock)
	})

	t.Run("huge page far past the end", func(t *testing.T) {
		nav := NewNavigation(3, 10, math.MaxInt)

		assert.Empty(t, nav.Pages)
		assert.True(t, nav.HasPrevBlock)
		assert.False(t, nav.HasNextBlock)
	})

	t.Run("no pages", func(t *testing.T) {
		nav := NewNavigation(0, 10, 1)

		assert.Empty(t, nav.Pages)
		assert.NotNil(t, nav.Pages)
		assert.False(t, nav.HasPrevBlock)
		assert.False(t, nav.HasNextBlock)
	})
}
