package auth

import (
	"context"
	"time"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
	domerrors "github.com/SahithiKaruparthi/planPro/internal/domain/errors"
)

type RefreshInput struct {
	RefreshToken string
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         *domain.User
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. A revoked or expired token fails with ErrInvalidToken.
type Refresh struct {
	users      ports.UserRepository
	issuer     ports.TokenIssuer
	tokenStore ports.TokenStore
	accessExp  int64
	refreshExp int64
}

func NewRefresh(users ports.UserRepository, issuer ports.TokenIssuer, tokenStore ports.TokenStore, accessExp, refreshExp int64) *Refresh {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	if refreshExp <= 0 {
		refreshExp = DefaultRefreshTokenExpiry
	}
	return &Refresh{
		users:      users,
		issuer:     issuer,
		tokenStore: tokenStore,
		accessExp:  accessExp,
		refreshExp: refreshExp,
	}
}

func (uc *Refresh) Execute(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	if input.RefreshToken == "" {
		return nil, domerrors.ErrInvalidToken
	}
	tokenHash := hashForStorage(input.RefreshToken)
	info, err := uc.tokenStore.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	if info == nil || info.RevokedAt != nil || time.Now().After(info.ExpiresAt) {
		return nil, domerrors.ErrInvalidToken
	}
	user, err := uc.users.GetByID(ctx, info.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrInvalidToken
	}
	if err := uc.tokenStore.RevokeRefreshToken(ctx, tokenHash); err != nil {
		return nil, err
	}
	accessToken, refreshToken, err := issueTokenPair(ctx, uc.issuer, uc.tokenStore, user, uc.accessExp, uc.refreshExp)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    uc.accessExp,
		User:         user,
	}, nil
}
