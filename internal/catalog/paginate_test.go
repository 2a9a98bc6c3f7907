package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerRevealsInPageSteps(t *testing.T) {
	items := make([]int, 14)
	for i := range items {
		items[i] = i
	}

	p := NewPager(0)
	assert.Equal(t, DefaultPageSize, p.Visible)

	window, hasMore := Window(items, p.Visible)
	assert.Len(t, window, 6)
	assert.True(t, hasMore)

	p.Advance(len(items))
	window, hasMore = Window(items, p.Visible)
	assert.Len(t, window, 12)
	assert.True(t, hasMore)

	p.Advance(len(items))
	window, hasMore = Window(items, p.Visible)
	assert.Len(t, window, 14)
	assert.False(t, hasMore)

	// advancing past the end is a no-op
	p.Advance(len(items))
	window, hasMore = Window(items, p.Visible)
	assert.Len(t, window, 14)
	assert.False(t, hasMore)
}

func TestPagerResetAfterFilterChange(t *testing.T) {
	p := NewPager(6)
	p.Advance(20)
	assert.Equal(t, 12, p.Visible)

	p.Reset()
	assert.Equal(t, 6, p.Visible)
}

func TestPagerVisibleFloorsAtOnePage(t *testing.T) {
	p := NewPager(6)
	// shrinking result set never drops visible below one page
	p.Advance(3)
	assert.Equal(t, 6, p.Visible)
}

func TestWindowOnShortResult(t *testing.T) {
	window, hasMore := Window([]int{1, 2, 3}, 6)
	assert.Equal(t, []int{1, 2, 3}, window)
	assert.False(t, hasMore)

	window, hasMore = Window([]int{}, 6)
	assert.NotNil(t, window)
	assert.Empty(t, window)
	assert.False(t, hasMore)
}
