package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/pkg/errs"
)

var ErrAddressNotFound = errs.New("address not found")

type AddressView struct {
	ID        uuid.UUID
	Title     string
	FullText  string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AddressQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]AddressView, error)
	GetByID(ctx context.Context, addressID, userID uuid.UUID) (*AddressView, error)
}

type addressQueriesImpl struct {
	pool *pgxpool.Pool
}

func NewAddressQueries(pool *pgxpool.Pool) AddressQueries {
	return &addressQueriesImpl{pool: pool}
}

const addressSelect = `
SELECT id, title, full_text, city, created_at, updated_at
FROM addresses
WHERE NOT is_deleted
`

func (q *addressQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]AddressView, error) {
	rows, err := q.pool.Query(ctx, addressSelect+"AND user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query addresses")
	}
	defer rows.Close()

	views := make([]AddressView, 0)
	for rows.Next() {
		var v AddressView
		if err := rows.Scan(&v.ID, &v.Title, &v.FullText, &v.City, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan address")
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate addresses")
	}
	return views, nil
}

func (q *addressQueriesImpl) GetByID(ctx context.Context, addressID, userID uuid.UUID) (*AddressView, error) {
	var v AddressView
	err := q.pool.QueryRow(ctx, addressSelect+"AND id = $1 AND user_id = $2", addressID, userID).
		Scan(&v.ID, &v.Title, &v.FullText, &v.City, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, ErrAddressNotFound)
		}
		return nil, errs.Wrap(err, "failed to query address")
	}
	return &v, nil
}
