package auth

import (
	"context"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
)

type LogoutInput struct {
	RefreshToken string
}

// Logout revokes the presented refresh token. Unknown tokens are a no-op so
// logout is always safe to retry.
type Logout struct {
	tokenStore ports.TokenStore
}

func NewLogout(tokenStore ports.TokenStore) *Logout {
	return &Logout{tokenStore: tokenStore}
}

func (uc *Logout) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	return uc.tokenStore.RevokeRefreshToken(ctx, hashForStorage(input.RefreshToken))
}
