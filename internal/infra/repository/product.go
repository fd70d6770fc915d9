package repository

import (
	"context"
	"time"

	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, product_code, name, description, price_cents, image_url, stock_qty, sold_qty, category_id, created_at, updated_at`

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, product_code, name, description, price_cents, image_url, stock_qty, sold_qty, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID(), p.Code().String(), p.Name(), p.Description(), p.PriceCents(), p.ImageURL(), p.StockQty(), p.SoldQty(), p.CategoryID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET product_code = $2, name = $3, description = $4, price_cents = $5,
		    image_url = $6, stock_qty = $7, category_id = $8, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`,
		p.ID(), p.Code().String(), p.Name(), p.Description(), p.PriceCents(), p.ImageURL(), p.StockQty(), p.CategoryID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id = $1 AND NOT is_deleted`, id)
	return scanProduct(row)
}

func (r *ProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id = $1 AND NOT is_deleted
		FOR UPDATE`, id)
	return scanProduct(row)
}

func (r *ProductRepository) CodeExists(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM products
			WHERE lower(product_code) = lower($1) AND NOT is_deleted AND ($2::uuid IS NULL OR id <> $2)
		)`, code, excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check product code", err)
	}
	return exists, nil
}

func (r *ProductRepository) SaveStock(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET stock_qty = $2, sold_qty = $3, updated_at = now()
		WHERE id = $1`,
		p.ID(), p.StockQty(), p.SoldQty(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save product stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		id, categoryID          uuid.UUID
		code, name, description string
		imageURL                string
		priceCents              int64
		stockQty, soldQty       int32
		createdAt, updatedAt    time.Time
	)
	err := row.Scan(&id, &code, &name, &description, &priceCents, &imageURL, &stockQty, &soldQty, &categoryID, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan product", err)
	}

	return product.ReconstructProduct(
		id, product.Code(code), name, description, priceCents, imageURL,
		stockQty, soldQty, categoryID, createdAt, updatedAt,
	), nil
}
