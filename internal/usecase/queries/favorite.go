package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/pkg/errs"
)

type FavoriteQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ProductView, error)
}

type favoriteQueriesImpl struct {
	pool *pgxpool.Pool
}

func NewFavoriteQueries(pool *pgxpool.Pool) FavoriteQueries {
	return &favoriteQueriesImpl{pool: pool}
}

func (q *favoriteQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]ProductView, error) {
	rows, err := q.pool.Query(ctx, `
SELECT p.id, p.product_code, p.name, p.description, p.price_cents, p.image_url,
       p.stock_qty, p.sold_qty, p.category_id, c.name, p.created_at, p.updated_at
FROM favorites f
JOIN products p ON p.id = f.product_id AND NOT p.is_deleted
JOIN categories c ON c.id = p.category_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC
`, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query favorites")
	}
	defer rows.Close()

	views := make([]ProductView, 0)
	for rows.Next() {
		var v ProductView
		if err := rows.Scan(&v.ID, &v.ProductCode, &v.Name, &v.Description, &v.PriceCents, &v.ImageURL,
			&v.StockQty, &v.SoldQty, &v.CategoryID, &v.CategoryName, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan favorite product")
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate favorites")
	}
	return views, nil
}
