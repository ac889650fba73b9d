package dto

import (
	"strconv"
	"strings"
)

// FirstPage is the page served when none, or an invalid one, is requested.
const FirstPage = 1

// ListingQuery is the query string of the blog listing.
type ListingQuery struct {
	// Page is the raw page parameter. Invalid values fall back to FirstPage.
	Page string `form:"page"`

	// Filter is the category name to filter by. "all" means no filter.
	Filter string `form:"filter"`
}

// PageNumber parses Page, returning FirstPage for missing, malformed, or
// non-positive values.
func (q *ListingQuery) PageNumber() int {
	n, err := strconv.Atoi(strings.TrimSpace(q.Page))
	if err != nil || n < FirstPage {
		return FirstPage
	}

	return n
}

// Pagination is the page navigation shown under the listing.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PrevPage    int `json:"prevPage,omitempty"`
	NextPage    int `json:"nextPage,omitempty"`
}

// NewPagination derives previous and next links from the current position.
// A zero PrevPage or NextPage means there is no such page.
func NewPagination(current, total int) Pagination {
	p := Pagination{CurrentPage: current, TotalPages: total}

	if current > FirstPage {
		p.PrevPage = current - 1
	}

	if current < total {
		p.NextPage = current + 1
	}

	return p
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.PrevPage > 0
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.NextPage > 0
}
