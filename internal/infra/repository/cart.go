package repository

import (
	"context"

	"ecommerce-api/internal/domain/cart"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"
	"ecommerce-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(db db.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) LinesWithProducts(ctx context.Context, userID uuid.UUID) ([]shared.CartLineSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT cl.id, cl.product_id, p.name, cl.quantity, p.price_cents, p.stock_qty
		FROM cart_lines cl
		JOIN products p ON p.id = cl.product_id AND NOT p.is_deleted
		WHERE cl.user_id = $1
		ORDER BY cl.created_at`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart lines", err)
	}
	defer rows.Close()

	var lines []shared.CartLineSnapshot
	for rows.Next() {
		var l shared.CartLineSnapshot
		if err := rows.Scan(&l.LineID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPriceCents, &l.StockQty); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart lines", err)
	}
	return lines, nil
}

func (r *CartRepository) Upsert(ctx context.Context, line *cart.Line) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_lines (id, user_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		line.ID(), line.UserID(), line.ProductID(), line.Quantity(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert cart line", err)
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, lineID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM cart_lines WHERE id = $1 AND user_id = $2`, lineID, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_lines WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
