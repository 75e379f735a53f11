package services

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination reads raw page/limit query values. Values that do not parse,
// or are zero or negative, fall back to the defaults; limit is capped at MaxLimit
// and page at the last one whose skip fits in an int64.
func ParsePagination(rawPage, rawLimit string) Pagination {
	p := Pagination{
		Page:  positiveOr(rawPage, DefaultPage),
		Limit: min(positiveOr(rawLimit, DefaultLimit), MaxLimit),
	}
	if maxPage := math.MaxInt64 / int64(p.Limit); int64(p.Page) > maxPage {
		p.Page = int(maxPage)
	}
	return p
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (p Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Pages is ceil(total/limit).
func (p Pagination) Pages(total int64) int {
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T
	Page  int
	Pages int
}
