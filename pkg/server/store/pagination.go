package store

// Pagination describes one window of a listing response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the pagination envelope for a result window.
// TotalPages is ceil(total/limit).
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Limits holds the page-size convention for listing requests. Missing or
// out-of-range values degrade to these rather than erroring, so a request
// with no pagination parameters always succeeds.
type Limits struct {
	Default int
	Max     int
}

// Window normalizes a requested page/limit pair and returns the effective
// page, limit and row offset. page < 1 becomes 1; limit < 1 becomes the
// default; limit above the maximum is clamped.
func (l Limits) Window(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = l.Default
	}
	if l.Max > 0 && limit > l.Max {
		limit = l.Max
	}
	return page, limit, (page - 1) * limit
}
