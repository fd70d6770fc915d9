package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/pkg/errs"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderLineView struct {
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int64
	SubtotalCents  int64
}

type OrderView struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          string
	ShippingAddress string
	TotalCents      int64
	CouponCode      *string
	Lines           []OrderLineView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
	ListAll(ctx context.Context) ([]OrderView, error)
	GetByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
	GetByIDForUser(ctx context.Context, orderID, userID uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	pool *pgxpool.Pool
}

func NewOrderQueries(pool *pgxpool.Pool) OrderQueries {
	return &orderQueriesImpl{pool: pool}
}

const orderSelect = `
SELECT id, user_id, status, shipping_address, total_cents, coupon_code, created_at, updated_at
FROM orders
`

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	return q.list(ctx, orderSelect+"WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]OrderView, error) {
	return q.list(ctx, orderSelect+"ORDER BY created_at DESC")
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	return q.findOne(ctx, orderSelect+"WHERE id = $1", orderID)
}

func (q *orderQueriesImpl) GetByIDForUser(ctx context.Context, orderID, userID uuid.UUID) (*OrderView, error) {
	return q.findOne(ctx, orderSelect+"WHERE id = $1 AND user_id = $2", orderID, userID)
}

func (q *orderQueriesImpl) list(ctx context.Context, sql string, args ...any) ([]OrderView, error) {
	rows, err := q.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query orders")
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var v OrderView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Status, &v.ShippingAddress, &v.TotalCents, &v.CouponCode, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan order")
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate orders")
	}
	for i := range views {
		lines, err := q.lines(ctx, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].Lines = lines
	}
	return views, nil
}

func (q *orderQueriesImpl) findOne(ctx context.Context, sql string, args ...any) (*OrderView, error) {
	var v OrderView
	err := q.pool.QueryRow(ctx, sql, args...).
		Scan(&v.ID, &v.UserID, &v.Status, &v.ShippingAddress, &v.TotalCents, &v.CouponCode, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Wrap(err, "failed to query order")
	}
	lines, err := q.lines(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.Lines = lines
	return &v, nil
}

func (q *orderQueriesImpl) lines(ctx context.Context, orderID uuid.UUID) ([]OrderLineView, error) {
	rows, err := q.pool.Query(ctx, `
SELECT product_id, product_name, quantity, unit_price_cents
FROM order_lines
WHERE order_id = $1
ORDER BY product_name
`, orderID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query order lines")
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var l OrderLineView
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPriceCents); err != nil {
			return nil, errs.Wrap(err, "failed to scan order line")
		}
		l.SubtotalCents = int64(l.Quantity) * l.UnitPriceCents
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate order lines")
	}
	return lines, nil
}
