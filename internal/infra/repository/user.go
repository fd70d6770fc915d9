package repository

import (
	"context"
	"time"

	"ecommerce-api/internal/domain/user"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, full_name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Email().String(), u.FullName(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, full_name, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, full_name, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                            uuid.UUID
		email, fullName, passwordHash string
		role                          string
		createdAt, updatedAt          time.Time
	)
	err := row.Scan(&id, &email, &fullName, &passwordHash, &role, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user", err)
	}

	return user.ReconstructUser(id, user.Email(email), fullName, passwordHash, user.Role(role), createdAt, updatedAt), nil
}
