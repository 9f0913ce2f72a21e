package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/oklog/ulid/v2"
)

// Operation statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

const maxErrorLen = 512

// Operation is one recorded encrypt, decrypt, key generation or key exchange.
// Inputs, keys and outputs are never stored, only their sizes.
type Operation struct {
	ID         string    `db:"id" json:"id"`
	VisitorID  string    `db:"visitor_id" json:"-"`
	Algorithm  string    `db:"algorithm" json:"algorithm"`
	Action     string    `db:"action" json:"action"`
	Status     string    `db:"status" json:"status"`
	Error      string    `db:"error_message" json:"error,omitempty"`
	InputLen   int       `db:"input_len" json:"input_len"`
	OutputLen  int       `db:"output_len" json:"output_len"`
	DurationUS int64     `db:"duration_us" json:"duration_us"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Duration returns how long the operation took.
func (o Operation) Duration() time.Duration {
	return time.Duration(o.DurationUS) * time.Microsecond
}

// OperationStore is the sqlx-backed store for operation history.
type OperationStore struct {
	db *sqlx.DB
}

// NewOperationStore creates a new OperationStore.
func NewOperationStore(db *sqlx.DB) *OperationStore {
	return &OperationStore{db: db}
}

// q rebinds ? placeholders to the driver's native format.
func (s *OperationStore) q(query string) string { return s.db.Rebind(query) }

// Record inserts op and returns the stored row. A missing ID or CreatedAt is
// filled in; IDs are ULIDs so they sort by creation time.
func (s *OperationStore) Record(ctx context.Context, op Operation) (*Operation, error) {
	if op.VisitorID == "" {
		return nil, errors.New("operation has no visitor")
	}
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}
	if op.ID == "" {
		op.ID = ulid.MustNew(ulid.Timestamp(op.CreatedAt), ulid.DefaultEntropy()).String()
	}
	if op.Status == "" {
		op.Status = StatusOK
	}
	if len(op.Error) > maxErrorLen {
		op.Error = op.Error[:maxErrorLen]
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO operations (id, visitor_id, algorithm, action, status, error_message,
		                        input_len, output_len, duration_us, created_at)
		VALUES (:id, :visitor_id, :algorithm, :action, :status, :error_message,
		        :input_len, :output_len, :duration_us, :created_at)
	`, op)
	if err != nil {
		return nil, fmt.Errorf("insert operation: %w", err)
	}
	return &op, nil
}

// Get returns a single operation by ID.
func (s *OperationStore) Get(ctx context.Context, id string) (*Operation, error) {
	var op Operation
	err := s.db.GetContext(ctx, &op, s.q(`SELECT * FROM operations WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// ListByVisitor returns up to limit operations for a visitor, newest first.
// When beforeID is set only operations older than it are returned, so the
// last ID of one page is the cursor for the next.
func (s *OperationStore) ListByVisitor(ctx context.Context, visitorID, beforeID string, limit int) ([]*Operation, error) {
	var ops []*Operation
	var err error
	if beforeID == "" {
		err = s.db.SelectContext(ctx, &ops, s.q(`
			SELECT * FROM operations
			WHERE visitor_id = ?
			ORDER BY id DESC
			LIMIT ?
		`), visitorID, limit)
	} else {
		err = s.db.SelectContext(ctx, &ops, s.q(`
			SELECT * FROM operations
			WHERE visitor_id = ? AND id < ?
			ORDER BY id DESC
			LIMIT ?
		`), visitorID, beforeID, limit)
	}
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// AlgorithmCount is the number of operations a visitor ran with one algorithm.
type AlgorithmCount struct {
	Algorithm string `db:"algorithm" json:"algorithm"`
	Count     int64  `db:"n" json:"count"`
}

// CountByAlgorithm returns per-algorithm operation counts for a visitor,
// ordered by algorithm name.
func (s *OperationStore) CountByAlgorithm(ctx context.Context, visitorID string) ([]AlgorithmCount, error) {
	var counts []AlgorithmCount
	err := s.db.SelectContext(ctx, &counts, s.q(`
		SELECT algorithm, COUNT(*) AS n
		FROM operations
		WHERE visitor_id = ?
		GROUP BY algorithm
		ORDER BY algorithm
	`), visitorID)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
