package catalog

// DefaultPageSize is the number of items revealed per "load more" step.
const DefaultPageSize = 6

// Pager tracks the incremental-reveal state for a filtered listing.
// Changing any filter predicate must Reset the pager.
type Pager struct {
	PageSize int
	Visible  int
}

// NewPager returns a pager showing the first page.
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{PageSize: pageSize, Visible: pageSize}
}

// Reset returns the pager to the first page.
func (p *Pager) Reset() {
	p.Visible = p.PageSize
}

// Advance reveals one more page, never exceeding the filtered length.
func (p *Pager) Advance(filteredLen int) {
	next := p.Visible + p.PageSize
	if next > filteredLen {
		next = filteredLen
	}
	if next < p.PageSize {
		next = p.PageSize
	}
	p.Visible = next
}

// Window returns the first visible items of a filtered result and whether
// more remain. hasMore is false exactly when visible >= len(filtered).
func Window[T any](filtered []T, visible int) ([]T, bool) {
	if visible < 0 {
		visible = 0
	}
	if visible > len(filtered) {
		visible = len(filtered)
	}
	return filtered[:visible:visible], visible < len(filtered)
}
