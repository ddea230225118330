// Package search validates user supplied listing filters.
package search

import (
	"strings"

	"boardapi/internal/model"
)

var allowedColumns = map[model.SearchColumn]struct{}{
	model.SearchByAuthor:   {},
	model.SearchByTitle:    {},
	model.SearchByContents: {},
}

// IsAllowed reports whether column may be used in a listing filter.
func IsAllowed(column model.SearchColumn) bool {
	_, ok := allowedColumns[column]
	return ok
}

// Normalize turns a raw (column, term) pair into a filter.
// It returns nil, meaning an unfiltered listing, when the term is blank or the
// column is not searchable. Unknown columns are not an error.
func Normalize(column, term string) *model.SearchCriteria {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	col := model.SearchColumn(strings.ToLower(strings.TrimSpace(column)))
	if !IsAllowed(col) {
		return nil
	}
	return &model.SearchCriteria{Column: col, Term: term}
}
