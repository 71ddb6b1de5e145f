// Package schema names the tables and columns of the Fyyur database so that
// stores never spell identifiers inline.
package schema

import (
	"strconv"
	"strings"
)

// Qualify prefixes each column with a table alias: Qualify("v", "id", "name") → "v.id, v.name".
func Qualify(alias string, columns ...string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

// List joins bare column names with commas.
func List(columns ...string) string {
	return strings.Join(columns, ", ")
}

// Placeholders renders "$from, $from+1, ..." for count parameters.
func Placeholders(from, count int) string {
	marks := make([]string, count)
	for i := range marks {
		marks[i] = "$" + strconv.Itoa(from+i)
	}
	return strings.Join(marks, ", ")
}

// Assignments renders "col1 = $from, col2 = $from+1, ..." for an UPDATE SET clause.
func Assignments(from int, columns ...string) string {
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = column + " = $" + strconv.Itoa(from+i)
	}
	return strings.Join(parts, ", ")
}
