package repository

import (
	"context"
	"time"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, user_id, total_cents, shipping_address, status, coupon_code)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID(), o.UserID(), o.TotalCents(), o.ShippingAddress(), o.Status().String(), o.CouponCode(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for _, line := range o.Lines() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO order_lines (order_id, product_id, product_name, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID(), line.ProductID, line.ProductName, line.Quantity, line.UnitPriceCents,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order line", err)
		}
	}

	return o.ID(), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *OrderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*order.Order, error) {
	return r.findOne(ctx, `WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) findOne(ctx context.Context, where string, args ...any) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, total_cents, shipping_address, status, coupon_code, created_at, updated_at
		FROM orders `+where, args...)

	var (
		id, userID           uuid.UUID
		totalCents           int64
		shippingAddress      string
		status               string
		couponCode           *string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &userID, &totalCents, &shippingAddress, &status, &couponCode, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		id, userID, totalCents, shippingAddress, order.Status(status), couponCode, lines, createdAt, updatedAt,
	), nil
}

func (r *OrderRepository) findLines(ctx context.Context, orderID uuid.UUID) ([]order.Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_price_cents
		FROM order_lines WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order lines", err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}
	return lines, nil
}
