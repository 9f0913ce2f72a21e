package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// sessionsDDL holds the visitor session table per dialect. Column types follow
// what each scs store reads back: sqlite3store stores expiry as a Julian REAL,
// postgresstore wants TIMESTAMPTZ and mysqlstore a microsecond TIMESTAMP.
var sessionsDDL = map[string]string{
	"sqlite3": `CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry REAL NOT NULL
)`,
	"postgres": `CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BYTEA NOT NULL,
    expiry TIMESTAMPTZ NOT NULL
)`,
	"mysql": `CREATE TABLE IF NOT EXISTS sessions (
    token  VARCHAR(43) PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry TIMESTAMP(6) NOT NULL
)`,
}

func init() {
	goose.AddMigrationContext(upSessions, downSessions)
}

func upSessions(ctx context.Context, tx *sql.Tx) error {
	ddl, ok := sessionsDDL[dialect]
	if !ok {
		return fmt.Errorf("sessions table: no DDL for dialect %q", dialect)
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	// scs deletes expired rows by expiry on a timer.
	if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`); err != nil {
		return fmt.Errorf("create sessions expiry index: %w", err)
	}
	return nil
}

func downSessions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS sessions`)
	return err
}
