package model

// SearchColumn names a post field that listing searches may filter on.
type SearchColumn string

const (
	SearchByAuthor   SearchColumn = "author"
	SearchByTitle    SearchColumn = "title"
	SearchByContents SearchColumn = "contents"
)

// SearchCriteria is a validated listing filter. A nil *SearchCriteria means "no filter".
type SearchCriteria struct {
	Column SearchColumn `json:"column"`
	Term   string       `json:"term"`
}
