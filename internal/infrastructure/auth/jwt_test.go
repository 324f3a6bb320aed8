package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
)

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return NewTokenIssuer(key, "planpro", "planpro")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)
	token, err := issuer.IssueAccessToken("2b6e6a2e-0000-0000-0000-000000000001", "Aisha", 900)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, name, err := issuer.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "2b6e6a2e-0000-0000-0000-000000000001" {
		t.Errorf("user id = %q", userID)
	}
	if name != "Aisha" {
		t.Errorf("name = %q", name)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := newTestIssuer(t)
	token, err := issuer.IssueAccessToken("u1", "n", -10)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := issuer.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token validated")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	issuer := newTestIssuer(t)
	if _, _, err := issuer.ValidateAccessToken("not.a.jwt"); err == nil {
		t.Fatal("garbage token validated")
	}
}

func TestForeignKeyRejected(t *testing.T) {
	a := newTestIssuer(t)
	b := newTestIssuer(t)
	token, err := a.IssueAccessToken("u1", "n", 900)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := b.ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with a different key validated")
	}
}

func TestLoadRSAPrivateKeyFromPEM(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	pkcs1 := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if _, err := LoadRSAPrivateKeyFromPEM(pkcs1); err != nil {
		t.Errorf("pkcs1: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal pkcs8: %v", err)
	}
	pkcs8 := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	if _, err := LoadRSAPrivateKeyFromPEM(pkcs8); err != nil {
		t.Errorf("pkcs8: %v", err)
	}
	if _, err := LoadRSAPrivateKeyFromPEM([]byte("junk")); err == nil {
		t.Error("junk accepted")
	}
}
