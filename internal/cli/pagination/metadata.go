package pagination

// Meta describes the page a list response holds.
type Meta struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// NewMeta computes page metadata for total items under p. Without a limit
// the whole list is one page.
func NewMeta(p Params, total int) Meta {
	offset, size := p.Window()
	if size == 0 {
		size = total
	}

	current, pages := 1, 0
	if size > 0 {
		current = offset/size + 1
		pages = (total + size - 1) / size
	}

	return Meta{
		CurrentPage: current,
		PageSize:    size,
		TotalPages:  pages,
		TotalItems:  total,
		HasPrevious: current > 1,
		HasNext:     current < pages,
	}
}
