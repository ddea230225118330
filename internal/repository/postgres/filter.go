package postgres

import (
	"fmt"
	"strings"

	"boardapi/internal/model"
)

// searchColumnSQL maps each searchable column to its SQL identifier.
// Only these constants are ever spliced into query text; search terms are always bound.
var searchColumnSQL = map[model.SearchColumn]string{
	model.SearchByAuthor:   "author",
	model.SearchByTitle:    "title",
	model.SearchByContents: "contents",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// wherePredicate renders criteria as a WHERE clause whose first placeholder is $argPos.
// A nil criteria yields an empty clause and no arguments.
func wherePredicate(criteria *model.SearchCriteria, argPos int) (string, []any, error) {
	if criteria == nil {
		return "", nil, nil
	}
	col, ok := searchColumnSQL[criteria.Column]
	if !ok {
		return "", nil, fmt.Errorf("column %q is not searchable", criteria.Column)
	}
	clause := fmt.Sprintf(" WHERE %s ILIKE $%d", col, argPos)
	return clause, []any{"%" + likeEscaper.Replace(criteria.Term) + "%"}, nil
}
