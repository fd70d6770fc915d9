package repository

import (
	"context"
	"time"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryRepository struct {
	db db.DBTX
}

func NewCategoryRepository(db db.DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*Category, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name, created_at, updated_at`, name)
	return scanCategory(row)
}

func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, name string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET name = $2, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, id, name)
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories WHERE id = $1 AND NOT is_deleted`, id)
	return scanCategory(row)
}

func (r *CategoryRepository) NameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM categories
			WHERE lower(name) = lower($1) AND NOT is_deleted AND ($2::uuid IS NULL OR id <> $2)
		)`, name, excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check category name", err)
	}
	return exists, nil
}

func scanCategory(row pgx.Row) (*Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan category", err)
	}
	return &c, nil
}
