package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

const (
	insertRefreshTokenSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)`

	getRefreshTokenSQL = `
SELECT id, user_id, expires_at, revoked_at
FROM refresh_tokens WHERE token_hash = $1`

	revokeRefreshTokenSQL = `
UPDATE refresh_tokens SET revoked_at = COALESCE(revoked_at, NOW())
WHERE token_hash = $1`
)

// TokenStore implements ports.TokenStore on Postgres. Only token hashes are
// stored, never the opaque token itself.
type TokenStore struct {
	pool *pgxpool.Pool
}

func NewTokenStore(pool *pgxpool.Pool) *TokenStore {
	return &TokenStore{pool: pool}
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error {
	_, err := s.pool.Exec(ctx, insertRefreshTokenSQL,
		uuid.New(), userID.UUID, tokenHash, time.Unix(expiresAt, 0), time.Now())
	return err
}

func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenHash string) (*ports.RefreshTokenInfo, error) {
	var (
		id, userID uuid.UUID
		expiresAt  time.Time
		revokedAt  *time.Time
	)
	err := s.pool.QueryRow(ctx, getRefreshTokenSQL, tokenHash).Scan(&id, &userID, &expiresAt, &revokedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ports.RefreshTokenInfo{
		UserID:    domain.NewUserID(userID),
		TokenID:   id.String(),
		ExpiresAt: expiresAt,
		RevokedAt: revokedAt,
	}, nil
}

func (s *TokenStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	_, err := s.pool.Exec(ctx, revokeRefreshTokenSQL, tokenHash)
	return err
}

var _ ports.TokenStore = (*TokenStore)(nil)
