// Package migrations holds the goose migrations written in Go. They exist
// where column types differ per driver; everything portable lives in the
// embedded .sql files next to them.
package migrations

var dialect string

// SetDialect selects the goose dialect ("sqlite3", "postgres" or "mysql")
// the Go migrations generate DDL for. Call it before goose.Up.
func SetDialect(d string) {
	dialect = d
}
