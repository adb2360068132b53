package model

// Pagination summarizes an offset/limit page of results.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the summary for a 1-based page over total rows.
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

// SearchPagination is the summary attached to search results. Search bypasses
// paging and returns a single capped page, so totalPages is always 1.
func SearchPagination(matches int) Pagination {
	return Pagination{
		Total:      int64(matches),
		Page:       1,
		Limit:      matches,
		TotalPages: 1,
	}
}
