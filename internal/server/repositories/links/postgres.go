package links

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/linkboard/internal/common"
	"github.com/dmitrijs2005/linkboard/internal/dbx"
	"github.com/dmitrijs2005/linkboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the link and fills in the generated id and timestamp.
// A nonexistent owner surfaces as common.ErrNotFound (foreign key).
func (r *PostgresRepository) Create(ctx context.Context, link *models.Link) (*models.Link, error) {

	query :=
		`INSERT INTO links (url, description, posted_by)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		link.URL, link.Description, link.PostedBy).Scan(&link.ID, &link.CreatedAt)

	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return link, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Link, error) {
	query :=
		`SELECT id, url, description, posted_by, created_at FROM links
		 WHERE id = $1
		 `

	link := &models.Link{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&link.ID, &link.URL, &link.Description, &link.PostedBy, &link.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return link, nil
}

// List returns all links, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Link, error) {
	query :=
		`SELECT id, url, description, posted_by, created_at FROM links
		 ORDER BY created_at DESC, id DESC
		 `

	return r.queryLinks(ctx, query)
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, userID int64) ([]*models.Link, error) {
	query :=
		`SELECT id, url, description, posted_by, created_at FROM links
		 WHERE posted_by = $1
		 ORDER BY created_at DESC, id DESC
		 `

	return r.queryLinks(ctx, query, userID)
}

func (r *PostgresRepository) queryLinks(ctx context.Context, query string, args ...any) ([]*models.Link, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Link
	for rows.Next() {
		link := &models.Link{}
		if err := rows.Scan(&link.ID, &link.URL, &link.Description, &link.PostedBy, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
