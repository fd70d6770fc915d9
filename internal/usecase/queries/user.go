package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserView struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	pool *pgxpool.Pool
}

func NewUserQueries(pool *pgxpool.Pool) UserQueries {
	return &userQueriesImpl{pool: pool}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	var v UserView
	err := q.pool.QueryRow(ctx, `
SELECT id, email, full_name, role, created_at, updated_at
FROM users
WHERE id = $1
`, userID).Scan(&v.ID, &v.Email, &v.FullName, &v.Role, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to query user")
	}
	return &v, nil
}
