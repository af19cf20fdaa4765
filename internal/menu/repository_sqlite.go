package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// SQLiteRepository stores the document in an embedded SQLite database,
// for single-binary deployments without Postgres.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*Document, error) {
	var data string

	err := r.db.QueryRowContext(ctx, `
		SELECT doc
		FROM menu_documents
		WHERE key = ?
	`, key).Scan(&data)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc := &Document{}
	if err := json.Unmarshal([]byte(data), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, key string, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO menu_documents (key, doc, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET doc = excluded.doc,
		    updated_at = CURRENT_TIMESTAMP
	`, key, string(data))

	return err
}
