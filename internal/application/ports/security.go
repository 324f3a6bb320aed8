package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates access tokens (RS256 JWT).
type TokenIssuer interface {
	IssueAccessToken(userID, name string, expiresInSeconds int64) (string, error)
	// ValidateAccessToken verifies signature and expiry and returns the
	// identity claims embedded in the token.
	ValidateAccessToken(tokenString string) (userID, name string, err error)
}
