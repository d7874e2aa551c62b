package pkg

import (
	"errors"
	"math"
	"net/http"
	"strconv"
)

var ErrInvalidPage = errors.New("invalid page parameters")

// PageSizing holds per-resource page size limits.
type PageSizing struct {
	Default int
	Max     int
}

var (
	StandardPageSizing = PageSizing{Default: 20, Max: 100}
	LargePageSizing    = PageSizing{Default: 50, Max: 200}
)

type Page struct {
	Page int
	Size int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Size
}

// PageResponse is the envelope used by all paginated list endpoints.
type PageResponse[T any] struct {
	Count   int `json:"count"`
	Page    int `json:"page"`
	Size    int `json:"size"`
	Results []T `json:"results"`
}

func NewPageResponse[T any](results []T, count int, page Page) PageResponse[T] {
	if results == nil {
		results = make([]T, 0)
	}
	return PageResponse[T]{
		Count:   count,
		Page:    page.Page,
		Size:    page.Size,
		Results: results,
	}
}

// ParsePage reads the page and page_size query params. Sizes over the
// maximum are clamped, non-numeric or non-positive values are rejected,
// and so are pages whose offset would not fit in an int.
func ParsePage(r *http.Request, sizing PageSizing) (Page, error) {
	page := Page{Page: 1, Size: sizing.Default}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return Page{}, ErrInvalidPage
		}
		page.Page = p
	}

	if sizeStr := r.URL.Query().Get("page_size"); sizeStr != "" {
		s, err := strconv.Atoi(sizeStr)
		if err != nil || s < 1 {
			return Page{}, ErrInvalidPage
		}
		page.Size = min(s, sizing.Max)
	}

	if page.Page-1 > math.MaxInt/page.Size {
		return Page{}, ErrInvalidPage
	}

	return page, nil
}
