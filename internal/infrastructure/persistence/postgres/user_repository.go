package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

const (
	insertUserSQL = `
INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	getUserByEmailSQL = `
SELECT id, name, email, password_hash, created_at, updated_at
FROM users WHERE email = $1`

	getUserByIDSQL = `
SELECT id, name, email, password_hash, created_at, updated_at
FROM users WHERE id = $1`
)

// UserRepository implements ports.UserRepository on Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, insertUserSQL,
		user.ID.UUID, user.Name, user.Email, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, getUserByEmailSQL, email))
}

func (r *UserRepository) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, getUserByIDSQL, userID.UUID))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id   uuid.UUID
		user domain.User
	)
	err := row.Scan(&id, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	user.ID = domain.NewUserID(id)
	return &user, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
