package pagination

import "strconv"

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// Params is a sanitized page/limit pair. Page is floored at 1 and limit is
// clamped into [1, MaxLimit], whatever the client asked for.
type Params struct {
	Page  int
	Limit int
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Parse builds Params from raw query strings. Unparseable or missing values
// fall back to the defaults rather than erroring; bounds are enforced after.
func Parse(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = DefaultLimit
	}
	return New(page, limit)
}

func New(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	} else if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta derives the response meta block. TotalPages is at least 1 even for
// an empty result set.
func (p Params) Meta(total int64) Meta {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if pages < 1 {
		pages = 1
	}
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}
