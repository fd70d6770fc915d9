package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/pkg/errs"
)

var ErrCategoryNotFound = errs.New("category not found")

type CategoryView struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryQueries interface {
	List(ctx context.Context) ([]CategoryView, error)
	GetByID(ctx context.Context, categoryID uuid.UUID) (*CategoryView, error)
}

type categoryQueriesImpl struct {
	pool *pgxpool.Pool
}

func NewCategoryQueries(pool *pgxpool.Pool) CategoryQueries {
	return &categoryQueriesImpl{pool: pool}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]CategoryView, error) {
	rows, err := q.pool.Query(ctx, `
SELECT id, name, created_at, updated_at
FROM categories
WHERE NOT is_deleted
ORDER BY name
`)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query categories")
	}
	defer rows.Close()

	views := make([]CategoryView, 0)
	for rows.Next() {
		var v CategoryView
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan category")
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate categories")
	}
	return views, nil
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, categoryID uuid.UUID) (*CategoryView, error) {
	var v CategoryView
	err := q.pool.QueryRow(ctx, `
SELECT id, name, created_at, updated_at
FROM categories
WHERE id = $1 AND NOT is_deleted
`, categoryID).Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return nil, errs.Wrap(err, "failed to query category")
	}
	return &v, nil
}
