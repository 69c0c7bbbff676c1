package views

// Paginator tracks a cursor over a result list shown one page at a time
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	total      int
}

// NewPaginator creates a paginator; non-positive sizes default to 10
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal replaces the item count and rewinds to the first item
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.cursor = 0
	p.pageOffset = 0
}

// Cursor returns the absolute index of the selected item
func (p *Paginator) Cursor() int {
	return p.cursor
}

// Up moves the cursor up, crossing into the previous page when needed
func (p *Paginator) Up() {
	if p.cursor > 0 {
		p.cursor--
		p.follow()
	}
}

// Down moves the cursor down, crossing into the next page when needed
func (p *Paginator) Down() {
	if p.cursor < p.total-1 {
		p.cursor++
		p.follow()
	}
}

// NextPage jumps to the first item of the next page
func (p *Paginator) NextPage() {
	if p.pageOffset+p.pageSize < p.total {
		p.pageOffset += p.pageSize
		p.cursor = p.pageOffset
	}
}

// PrevPage jumps to the first item of the previous page
func (p *Paginator) PrevPage() {
	if p.pageOffset > 0 {
		p.pageOffset = max(p.pageOffset-p.pageSize, 0)
		p.cursor = p.pageOffset
	}
}

// VisibleRange returns the half-open index range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.total)
}

// Page returns the 1-based current page and the page count
func (p *Paginator) Page() (current, pages int) {
	pages = 1
	if p.total > 0 {
		pages = (p.total + p.pageSize - 1) / p.pageSize
	}
	return p.pageOffset/p.pageSize + 1, pages
}

func (p *Paginator) follow() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
