package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/domain"
)

// issueTokenPair signs an access token for the user and mints a fresh opaque
// refresh token, storing its hash.
func issueTokenPair(ctx context.Context, issuer ports.TokenIssuer, tokenStore ports.TokenStore, user *domain.User, accessExp, refreshExp int64) (accessToken, refreshToken string, err error) {
	accessToken, err = issuer.IssueAccessToken(user.ID.String(), user.Name, accessExp)
	if err != nil {
		return "", "", err
	}
	raw := make([]byte, 32)
	if _, err = rand.Read(raw); err != nil {
		return "", "", err
	}
	refreshToken = hex.EncodeToString(raw)
	expiresAt := time.Now().Add(time.Duration(refreshExp) * time.Second).Unix()
	if err = tokenStore.StoreRefreshToken(ctx, user.ID, hashForStorage(refreshToken), expiresAt); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// hashForStorage returns the value stored for refresh token lookup. Only the
// SHA-256 digest ever touches the store.
func hashForStorage(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
