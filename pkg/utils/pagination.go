package utils

import "math"

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

// GetPaginationParams clamps page and limit to sane values.
func GetPaginationParams(page, limit, defaultLimit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}

// Offset returns the SQL offset
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta generates pagination metadata for a page of `count` items.
func CalculateMeta(total int64, page, limit, count int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	offset := (page - 1) * limit
	return PaginationMeta{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasMore:    int64(offset+count) < total,
	}
}
