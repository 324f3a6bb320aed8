// Package memory holds in-memory repository implementations, used in tests
// and local development without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

// UserRepository is an in-memory ports.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[domain.UserID]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[domain.UserID]*domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

// PlanRepository is an in-memory ports.PlanRepository. Plans are returned as
// deep copies so callers never mutate the stored aggregate directly, matching
// the row round-trip a real store gives.
type PlanRepository struct {
	mu    sync.RWMutex
	plans []*domain.Plan
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

func (r *PlanRepository) Create(ctx context.Context, plan *domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, copyPlan(plan))
	return nil
}

func (r *PlanRepository) ListByUser(ctx context.Context, userID domain.UserID) ([]*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Plan
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, copyPlan(p))
		}
	}
	return out, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, userID domain.UserID, planID domain.PlanID) (*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plans {
		if p.ID == planID && p.UserID == userID {
			return copyPlan(p), nil
		}
	}
	return nil, nil
}

func (r *PlanRepository) SaveTasks(ctx context.Context, plan *domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ID == plan.ID && p.UserID == plan.UserID {
			p.Tasks = append([]domain.Task(nil), plan.Tasks...)
			return nil
		}
	}
	return nil
}

func copyPlan(p *domain.Plan) *domain.Plan {
	copied := *p
	copied.Goals = append([]string(nil), p.Goals...)
	copied.Tasks = append([]domain.Task(nil), p.Tasks...)
	return &copied
}

// TokenStore is an in-memory ports.TokenStore.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]*ports.RefreshTokenInfo
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]*ports.RefreshTokenInfo)}
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenHash] = &ports.RefreshTokenInfo{
		UserID:    userID,
		TokenID:   tokenHash,
		ExpiresAt: time.Unix(expiresAt, 0),
	}
	return nil
}

func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenHash string) (*ports.RefreshTokenInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.tokens[tokenHash]
	if !ok {
		return nil, nil
	}
	copied := *info
	return &copied, nil
}

func (s *TokenStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if info, ok := s.tokens[tokenHash]; ok && info.RevokedAt == nil {
		now := time.Now()
		info.RevokedAt = &now
	}
	return nil
}

var (
	_ ports.UserRepository = (*UserRepository)(nil)
	_ ports.PlanRepository = (*PlanRepository)(nil)
	_ ports.TokenStore     = (*TokenStore)(nil)
)
