package pager

// Page describes one slice of an ordered listing.
type Page struct {
	Number   int   `json:"number"`
	NumPages int   `json:"num_pages"`
	Total    int64 `json:"total"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_previous"`

	// Offset/Limit are what the repository query should apply.
	Offset int `json:"-"`
	Limit  int `json:"-"`
}

// Paginate clamps a requested 1-indexed page number to the valid range and
// computes the query window. A page below 1 becomes 1, a page past the end
// becomes the last page. An empty collection still has one (empty) page.
func Paginate(page, pageSize int, total int64) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	numPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if numPages < 1 {
		numPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}

	return Page{
		Number:   page,
		NumPages: numPages,
		Total:    total,
		HasNext:  page < numPages,
		HasPrev:  page > 1,
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	}
}
