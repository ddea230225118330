// Package paging holds the page arithmetic behind board listings.
// Everything here is pure: no I/O, no shared state.
package paging

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPage is returned when a requested page is present but not a positive integer.
var ErrInvalidPage = errors.New("page must be a positive integer")

// Window is the 1-based inclusive range of global ranks to fetch for one page.
// End may exceed the number of matching rows.
type Window struct {
	Start int
	End   int
}

// Block is the range of page numbers rendered together in the pagination controls.
type Block struct {
	Start int
	End   int
}

// Navigation is the pagination metadata handed to the rendering layer.
type Navigation struct {
	Pages         []int `json:"pages"`
	BlockStart    int   `json:"block_start"`
	BlockEnd      int   `json:"block_end"`
	HasPrevBlock  bool  `json:"has_prev_block"`
	PrevBlockPage int   `json:"prev_block_page,omitempty"`
	HasNextBlock  bool  `json:"has_next_block"`
	NextBlockPage int   `json:"next_block_page,omitempty"`
}

// TotalPages returns ceil(totalCount/pageSize) in integer arithmetic.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// ResolvePage parses the requested page number. An empty value means page 1.
func ResolvePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, ErrInvalidPage
	}
	return n, nil
}

// MaxPage is the largest page number whose window end still fits in an int.
func MaxPage(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return math.MaxInt / pageSize
}

// NewWindow returns the global rank range covered by pageNumber.
// pageNumber must be within 1..MaxPage(pageSize).
func NewWindow(pageNumber, pageSize int) Window {
	return Window{
		Start: (pageNumber-1)*pageSize + 1,
		End:   pageNumber * pageSize,
	}
}

// NavigationBlock returns the block of page links containing currentPage.
// With no pages at all, End is 0 and the block is empty.
func NavigationBlock(totalPages, blockSize, currentPage int) Block {
	start := ((currentPage-1)/blockSize)*blockSize + 1
	// compared as a difference so start+blockSize cannot overflow for huge pages
	end := totalPages
	if totalPages-start >= blockSize-1 {
		end = start + blockSize - 1
	}
	return Block{Start: start, End: end}
}

// NewNavigation builds the page links for the block containing currentPage.
func NewNavigation(totalPages, blockSize, currentPage int) Navigation {
	b := NavigationBlock(totalPages, blockSize, currentPage)

	pages := make([]int, 0, blockSize)
	for p := b.Start; p <= b.End; p++ {
		pages = append(pages, p)
	}

	nav := Navigation{
		Pages:      pages,
		BlockStart: b.Start,
		BlockEnd:   b.End,
	}
	if b.Start > 1 {
		nav.HasPrevBlock = true
		nav.PrevBlockPage = b.Start - 1
	}
	if b.End < totalPages {
		nav.HasNextBlock = true
		nav.NextBlockPage = b.End + 1
	}
	return nav
}
