package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	"github.com/allisson/vaultclient/internal/validation"
)

type dataTokenSigner struct {
	now func() time.Time
}

// Sign returns one signed token per data token, in request order.
func (d *dataTokenSigner) Sign(
	creds *authDomain.Credentials,
	req *authDomain.SignedDataTokensRequest,
) ([]authDomain.SignedDataToken, error) {
	if len(req.DataTokens) == 0 {
		return nil, apperrors.InvalidInput(authDomain.CodeEmptyDataTokens, "data tokens must not be empty")
	}
	for i, token := range req.DataTokens {
		if validation.IsBlank(token) {
			return nil, apperrors.InvalidInput(authDomain.CodeEmptyDataToken,
				"data token at index %d is empty", i)
		}
	}

	file, err := LoadCredentialsFile(creds)
	if err != nil {
		return nil, err
	}
	key, err := parsePrivateKey(file)
	if err != nil {
		return nil, err
	}

	ttl := authDomain.DefaultSignedTokenTTL
	if req.TTL > 0 {
		ttl = time.Duration(req.TTL) * time.Second
	}
	now := d.now()
	expiresAt := now.Add(ttl).Unix()

	signed := make([]authDomain.SignedDataToken, 0, len(req.DataTokens))
	for _, token := range req.DataTokens {
		claims := jwt.MapClaims{
			"iss": "sdk",
			"key": file.KeyID,
			"aud": file.TokenURI,
			"sub": file.ClientID,
			"tok": token,
			"iat": now.Unix(),
			"exp": expiresAt,
		}
		if creds.Context != "" {
			claims["ctx"] = creds.Context
		}
		jws, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
		if err != nil {
			return nil, apperrors.Unauthorized(authDomain.CodeInvalidPrivateKey,
				"unable to sign data token").WithCause(err)
		}
		signed = append(signed, authDomain.SignedDataToken{
			Token:       token,
			SignedToken: authDomain.SignedTokenPrefix + jws,
			ExpiresAt:   expiresAt,
		})
	}

	return signed, nil
}

// NewDataTokenSigner creates a DataTokenSigner using RS256.
func NewDataTokenSigner() DataTokenSigner {
	return &dataTokenSigner{now: time.Now}
}
