package menu

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// GET DOCUMENT
// --------------------------------------------------
func (r *PostgresRepository) Get(
	ctx context.Context,
	key string,
) (*Document, error) {

	var data []byte

	err := r.db.QueryRow(ctx, `
		SELECT doc
		FROM menu_documents
		WHERE key = $1
	`, key).Scan(&data)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// --------------------------------------------------
// PUT DOCUMENT (WHOLE REPLACE, LAST WRITE WINS)
// --------------------------------------------------
func (r *PostgresRepository) Put(
	ctx context.Context,
	key string,
	doc *Document,
) error {

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO menu_documents (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc,
		    updated_at = now()
	`, key, data)

	return err
}
