package inventory

// Pagination is the (page, pageSize, total) triple driving backend
// paging. Page is 1-based. The setters report whether they changed
// anything, and every reported change corresponds to exactly one reload
// through the list fetcher; "all" is modeled as a large finite page size
// upstream, so TotalPages never divides by zero.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}

// NewPagination creates pagination at page 1 with the given page size.
func NewPagination(pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = 25
	}
	return Pagination{Page: 1, PageSize: pageSize}
}

// TotalPages returns ceil(total / pageSize), never less than 1.
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 {
		return 1
	}
	pages := (p.Total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// CanPrev reports whether a previous page exists.
func (p Pagination) CanPrev() bool {
	return p.Page > 1
}

// CanNext reports whether a next page exists.
func (p Pagination) CanNext() bool {
	return p.Page < p.TotalPages()
}

// Prev moves to the previous page. Returns true when the page changed
// and a reload is required.
func (p *Pagination) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.Page--
	return true
}

// Next moves to the next page. Returns true when the page changed and a
// reload is required.
func (p *Pagination) Next() bool {
	if !p.CanNext() {
		return false
	}
	p.Page++
	return true
}

// SetPageSize changes the page size and resets to page 1 (the old page
// offset is meaningless under a new size). Returns true when anything
// changed and a reload is required.
func (p *Pagination) SetPageSize(size int) bool {
	if size <= 0 || size == p.PageSize {
		return false
	}
	p.PageSize = size
	p.Page = 1
	return true
}

// SetTotal records the backend-reported total and clamps the current
// page back into range (the total can shrink under us between fetches).
func (p *Pagination) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.Total = total
	if p.Page > p.TotalPages() {
		p.Page = p.TotalPages()
	}
}

// RowNumber returns the continuous 1-based row number for a zero-based
// index on the current page.
func (p Pagination) RowNumber(index int) int {
	return (p.Page-1)*p.PageSize + index + 1
}
