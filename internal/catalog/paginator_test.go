package catalog_test

import (
	"testing"

	"katalog/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, k, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{23, 8, 3},
		{24, 8, 3},
		{25, 8, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, catalog.TotalPages(c.n, c.k), "n=%d k=%d", c.n, c.k)
	}
}

func TestBounds_TwentyThreeByEight(t *testing.T) {
	start, end := catalog.Bounds(23, 3, 8)
	assert.Equal(t, 16, start)
	assert.Equal(t, 23, end)
	assert.Equal(t, 7, end-start)

	start, end = catalog.Bounds(23, 1, 8)
	assert.Equal(t, 0, start)
	assert.Equal(t, 8, end)

	start, end = catalog.Bounds(23, 4, 8)
	assert.Equal(t, start, end, "page 4 is out of range")
}

func TestBounds_Degenerate(t *testing.T) {
	start, end := catalog.Bounds(0, 1, 5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	start, end = catalog.Bounds(10, 0, 5)
	assert.Equal(t, start, end)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	page := catalog.Paginate(items, 3, 8)
	assert.Equal(t, []int{16, 17, 18, 19, 20, 21, 22}, page.Items)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 23, page.TotalItems)

	empty := catalog.Paginate([]int(nil), 1, 5)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.TotalPages)

	page.Items[0] = -1
	assert.Equal(t, 16, items[16])
}

func TestValidPageSize(t *testing.T) {
	for k := 5; k <= 10; k++ {
		assert.True(t, catalog.ValidPageSize(k))
	}
	for _, k := range []int{-1, 0, 4, 11, 100} {
		assert.False(t, catalog.ValidPageSize(k))
	}
	assert.True(t, catalog.ValidPageSize(catalog.DefaultPageSize))
}
