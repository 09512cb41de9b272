package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func labels(pages ...int) []PageLabel {
	out := make([]PageLabel, len(pages))
	for i, p := range pages {
		out[i] = PageLabel(p)
	}
	return out
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 5))
	assert.Equal(t, 1, PageCount(4, 5))
	assert.Equal(t, 2, PageCount(4, 2))
	assert.Equal(t, 2, PageCount(10, 5))
	assert.Equal(t, 3, PageCount(11, 5))
	assert.Equal(t, 0, PageCount(10, 0))
}

func TestPageSlice(t *testing.T) {
	customers := []string{"C1", "C2", "C3", "C4"}

	// 4 rows, page size 5: one page holding everything
	assert.Equal(t, customers, PageSlice(customers, 1, 5))
	assert.Nil(t, PageSlice(customers, 2, 5))

	// page size 2, page 2 shows rows [2, 4)
	assert.Equal(t, []string{"C3", "C4"}, PageSlice(customers, 2, 2))
	assert.Nil(t, PageSlice(customers, 3, 2))

	assert.Nil(t, PageSlice(customers, 0, 2))
	assert.Nil(t, PageSlice([]string{}, 1, 5))
}

func TestPageSliceClipsLastPage(t *testing.T) {
	rows := make([]int, 11)
	for i := range rows {
		rows[i] = i
	}
	assert.Len(t, PageSlice(rows, 3, 5), 1)
	assert.Equal(t, []int{10}, PageSlice(rows, 3, 5))
}

func TestWindowPagesSmallTotals(t *testing.T) {
	// five or fewer pages: dense, no ellipses, no duplicates
	assert.Nil(t, WindowPages(0, 1, 3))
	assert.Equal(t, labels(1), WindowPages(1, 1, 3))
	assert.Equal(t, labels(1, 2, 3, 4, 5), WindowPages(5, 1, 3))
	assert.Equal(t, labels(1, 2, 3, 4, 5), WindowPages(5, 5, 3))
}

func TestWindowPagesSixTotal(t *testing.T) {
	// six pages leave no gap between the leading and trailing runs
	for current := 1; current <= 6; current++ {
		assert.Equal(t, labels(1, 2, 3, 4, 5, 6), WindowPages(6, current, 3), "current=%d", current)
	}
}

func TestWindowPagesTenTotal(t *testing.T) {
	assert.Equal(t,
		[]PageLabel{1, 2, 3, Ellipsis, 8, 9, 10},
		WindowPages(10, 1, 3))

	assert.Equal(t,
		[]PageLabel{1, 2, 3, 4, 5, 6, Ellipsis, 8, 9, 10},
		WindowPages(10, 5, 3))

	assert.Equal(t,
		[]PageLabel{1, 2, 3, Ellipsis, 8, 9, 10},
		WindowPages(10, 10, 3))
}

func TestWindowPagesHundredTotal(t *testing.T) {
	assert.Equal(t,
		[]PageLabel{1, 2, 3, Ellipsis, 98, 99, 100},
		WindowPages(100, 1, 3))

	assert.Equal(t,
		[]PageLabel{1, 2, 3, Ellipsis, 49, 50, 51, Ellipsis, 98, 99, 100},
		WindowPages(100, 50, 3))

	assert.Equal(t,
		[]PageLabel{1, 2, 3, Ellipsis, 98, 99, 100},
		WindowPages(100, 100, 3))
}

func TestWindowPagesClampsCurrent(t *testing.T) {
	assert.Equal(t, WindowPages(10, 10, 3), WindowPages(10, 99, 3))
	assert.Equal(t, WindowPages(10, 1, 3), WindowPages(10, -4, 3))
}

func TestWindowPagesNeverDuplicates(t *testing.T) {
	for _, total := range []int{1, 5, 6, 10, 100} {
		for current := 1; current <= total; current++ {
			seen := map[PageLabel]bool{}
			prev := PageLabel(0)
			for _, l := range WindowPages(total, current, 3) {
				if l == Ellipsis {
					continue
				}
				assert.False(t, seen[l], "total=%d current=%d duplicate page %d", total, current, l)
				assert.Greater(t, l, prev, "total=%d current=%d pages out of order", total, current)
				seen[l] = true
				prev = l
			}
		}
	}
}
