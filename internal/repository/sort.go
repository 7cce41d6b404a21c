package repository

import (
	"strings"

	"gorm.io/gorm"
)

// SortField is one (column, direction) pair of a list query's ordering.
// Callers restrict Field to an allow-listed column name before it
// reaches the repository.
type SortField struct {
	Field string
	Desc  bool
}

// applySort appends ORDER BY clauses for the given fields, in order.
func applySort(q *gorm.DB, sort []SortField) *gorm.DB {
	for _, s := range sort {
		dir := "asc"
		if s.Desc {
			dir = "desc"
		}
		q = q.Order(strings.ToLower(s.Field) + " " + dir)
	}
	return q
}
