package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/pkg/errs"
)

type CartLineView struct {
	LineID         uuid.UUID
	ProductID      uuid.UUID
	ProductName    string
	ImageURL       string
	UnitPriceCents int64
	Quantity       int32
	SubtotalCents  int64
}

type CartView struct {
	Lines         []CartLineView
	SubtotalCents int64
}

type CartQueries interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	pool *pgxpool.Pool
}

func NewCartQueries(pool *pgxpool.Pool) CartQueries {
	return &cartQueriesImpl{pool: pool}
}

func (q *cartQueriesImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	rows, err := q.pool.Query(ctx, `
SELECT cl.id, cl.product_id, p.name, p.image_url, p.price_cents, cl.quantity
FROM cart_lines cl
JOIN products p ON p.id = cl.product_id AND NOT p.is_deleted
WHERE cl.user_id = $1
ORDER BY cl.created_at
`, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query cart lines")
	}
	defer rows.Close()

	view := &CartView{Lines: make([]CartLineView, 0)}
	for rows.Next() {
		var l CartLineView
		if err := rows.Scan(&l.LineID, &l.ProductID, &l.ProductName, &l.ImageURL, &l.UnitPriceCents, &l.Quantity); err != nil {
			return nil, errs.Wrap(err, "failed to scan cart line")
		}
		l.SubtotalCents = int64(l.Quantity) * l.UnitPriceCents
		view.SubtotalCents += l.SubtotalCents
		view.Lines = append(view.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate cart lines")
	}
	return view, nil
}
