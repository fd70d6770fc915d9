package repository

import (
	"context"
	"time"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	FullText  string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AddressRepository struct {
	db db.DBTX
}

func NewAddressRepository(db db.DBTX) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, userID uuid.UUID, title, fullText, city string) (*Address, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO addresses (user_id, title, full_text, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, full_text, city, created_at, updated_at`,
		userID, title, fullText, city)
	return scanAddress(row)
}

func (r *AddressRepository) Update(ctx context.Context, id, userID uuid.UUID, title, fullText, city string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE addresses SET title = $3, full_text = $4, city = $5, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted`,
		id, userID, title, fullText, city)
	if err != nil {
		return infra.WrapRepoErr("failed to update address", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("address not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *AddressRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE addresses SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted`, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete address", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("address not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Address, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, full_text, city, created_at, updated_at
		FROM addresses WHERE user_id = $1 AND NOT is_deleted
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addresses", err)
	}
	defer rows.Close()

	var addresses []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.FullText, &a.City, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan address", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate addresses", err)
	}
	return addresses, nil
}

func scanAddress(row pgx.Row) (*Address, error) {
	var a Address
	err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.FullText, &a.City, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan address", err)
	}
	return &a, nil
}
