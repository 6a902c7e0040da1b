package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// ServiceAccount is a generated service account with its RSA key.
type ServiceAccount struct {
	ClientID   string
	KeyID      string
	TokenURI   string
	PrivateKey *rsa.PrivateKey
	PEM        string
}

// NewServiceAccount generates a 2048-bit key and a service account pointing at tokenURI.
func NewServiceAccount(t testing.TB, tokenURI string) *ServiceAccount {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	return &ServiceAccount{
		ClientID:   "client-1",
		KeyID:      "key-1",
		TokenURI:   tokenURI,
		PrivateKey: key,
		PEM:        string(pemBytes),
	}
}

// JSON renders the service account document.
func (s *ServiceAccount) JSON(t testing.TB) string {
	t.Helper()

	data, err := json.Marshal(map[string]string{
		"clientID":   s.ClientID,
		"clientName": "test-client",
		"keyID":      s.KeyID,
		"tokenURI":   s.TokenURI,
		"privateKey": s.PEM,
	})
	require.NoError(t, err)
	return string(data)
}

// WriteFile writes the service account document to a temp dir and returns its path.
func (s *ServiceAccount) WriteFile(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(s.JSON(t)), 0o600))
	return path
}

// Verify parses a token signed by this service account and returns its claims.
func (s *ServiceAccount) Verify(t testing.TB, raw string) jwt.MapClaims {
	t.Helper()

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return &s.PrivateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	return claims
}

// BearerToken returns an HS256 JWT that expires at exp. The signature is irrelevant to
// the client, which only reads the exp claim.
func BearerToken(t testing.TB, exp time.Time) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "client-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}
