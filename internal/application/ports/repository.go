package ports

import (
	"context"
	"time"

	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail returns (nil, nil) when no account exists for the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
}

// PlanRepository defines persistence for study plans. Every lookup is scoped
// by the owning user id; a plan owned by someone else is indistinguishable
// from a plan that does not exist.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	ListByUser(ctx context.Context, userID domain.UserID) ([]*domain.Plan, error)
	// GetByID returns (nil, nil) when no plan with this id is owned by userID.
	GetByID(ctx context.Context, userID domain.UserID, planID domain.PlanID) (*domain.Plan, error)
	// SaveTasks persists the plan's full task list, replacing the stored one.
	SaveTasks(ctx context.Context, plan *domain.Plan) error
}

// RefreshTokenInfo describes a stored refresh token.
type RefreshTokenInfo struct {
	UserID    domain.UserID
	TokenID   string
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// TokenStore defines storage for refresh tokens.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error
	// GetRefreshToken returns (nil, nil) when the hash is unknown.
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshTokenInfo, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}
