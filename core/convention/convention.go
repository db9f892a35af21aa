// Package convention derives naming defaults from record type names:
// table names, foreign keys, and the conventional primary key.
package convention

import "strings"

// PrimaryKeyDefault is the conventional primary key column name.
// Downstream code can always address "the primary key" through it,
// whatever the declared name.
const PrimaryKeyDefault = "id"

// TableName derives the table name for a record type: snake_cased and
// pluralized ("BlogPost" -> "blog_posts").
func TableName(record string) string {
	return Pluralize(Snake(record))
}

// ForeignKey derives the conventional foreign key column for a record
// type or table name ("User" -> "user_id", "users" -> "user_id").
func ForeignKey(name string) string {
	return Singularize(Snake(name)) + "_id"
}

// Snake converts a CamelCase identifier to snake_case. Identifiers that
// are already snake_case pass through unchanged.
func Snake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
