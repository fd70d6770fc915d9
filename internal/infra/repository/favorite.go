package repository

import (
	"context"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FavoriteRepository struct {
	db db.DBTX
}

func NewFavoriteRepository(db db.DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorites (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`,
		userID, productID)
	if err != nil {
		return infra.WrapRepoErr("failed to add favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("favorite not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *FavoriteRepository) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id FROM favorites WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan favorite", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate favorites", err)
	}
	return ids, nil
}
