package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

// PostgresStore keeps documents as JSONB rows in a single table keyed by
// (collection, id). Partial updates use the jsonb merge operator so the
// read-modify-write stays inside one statement.
type PostgresStore struct {
	db *sql.DB
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	fields     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (collection, id)
)`

// NewPostgresStore applies the schema and returns a store backed by db.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("apply documents schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// OpenPostgres connects with the lib/pq driver and pings before returning.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) CreateDoc(ctx context.Context, collection string, fields Fields) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, fields, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
		collection, id, payload, now,
	)
	if err != nil {
		return "", storeErr("insert document", err)
	}
	return id, nil
}

func (s *PostgresStore) SetDoc(ctx context.Context, collection, id string, fields Fields) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, fields, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 ON CONFLICT (collection, id) DO UPDATE SET fields = EXCLUDED.fields, updated_at = EXCLUDED.updated_at`,
		collection, id, payload, now,
	)
	if err != nil {
		return storeErr("set document", err)
	}
	return nil
}

func (s *PostgresStore) GetDoc(ctx context.Context, collection, id string) (Fields, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT fields FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("select document", err)
	}
	var fields Fields
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return fields, nil
}

func (s *PostgresStore) UpdateDoc(ctx context.Context, collection, id string, partial Fields) error {
	payload, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("marshal partial document: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET fields = fields || $3, updated_at = $4 WHERE collection = $1 AND id = $2`,
		collection, id, payload, time.Now().UTC(),
	)
	if err != nil {
		return storeErr("update document", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("update document", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteDoc(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return storeErr("delete document", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete document", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) QueryMembership(ctx context.Context, collection string, ids []string) ([]Doc, error) {
	if len(ids) > MaxBatch {
		return nil, ErrBatchTooLarge
	}
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fields FROM documents WHERE collection = $1 AND id = ANY($2)`,
		collection, pq.Array(ids),
	)
	if err != nil {
		return nil, storeErr("membership query", err)
	}
	defer rows.Close()

	var docs []Doc
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, storeErr("scan document", err)
		}
		var fields Fields
		if err := json.Unmarshal(payload, &fields); err != nil {
			return nil, fmt.Errorf("unmarshal document %s: %w", id, err)
		}
		docs = append(docs, Doc{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("membership query", err)
	}
	return docs, nil
}

// storeErr classifies backend I/O failures so callers can tell an outage from
// a logic error.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, op+" timed out")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, op+" failed")
}
