package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	"github.com/allisson/vaultclient/internal/transport"
)

// tokenIssuer implements TokenIssuer with an RS256 signed JWT bearer assertion.
type tokenIssuer struct {
	transport transport.Transport
	now       func() time.Time
}

// Issue returns a bearer token for creds.
func (t *tokenIssuer) Issue(ctx context.Context, creds *authDomain.Credentials) (*oauth2.Token, error) {
	switch creds.Source() {
	case authDomain.SourceToken:
		return t.checkToken(creds.Token)
	case authDomain.SourceFilePath, authDomain.SourceCredentialsString:
		return t.exchange(ctx, creds)
	default:
		return nil, apperrors.Unauthorized(authDomain.CodeTokenIssuanceFailed,
			"credentials of kind %q cannot be exchanged for a bearer token", creds.Source())
	}
}

// checkToken accepts a caller-supplied bearer token as long as it carries an exp claim
// in the future. The signature is not verified: only the vault can do that.
func (t *tokenIssuer) checkToken(raw string) (*oauth2.Token, error) {
	expiry, err := tokenExpiry(raw)
	if err != nil {
		return nil, err
	}
	if !expiry.After(t.now()) {
		return nil, apperrors.Unauthorized(authDomain.CodeTokenExpired, "bearer token has expired")
	}
	return &oauth2.Token{AccessToken: raw, TokenType: "Bearer", Expiry: expiry}, nil
}

func (t *tokenIssuer) exchange(ctx context.Context, creds *authDomain.Credentials) (*oauth2.Token, error) {
	file, err := LoadCredentialsFile(creds)
	if err != nil {
		return nil, err
	}
	key, err := parsePrivateKey(file)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"iss": file.ClientID,
		"key": file.KeyID,
		"aud": file.TokenURI,
		"sub": file.ClientID,
		"exp": t.now().Add(authDomain.AssertionTTL).Unix(),
	}
	if creds.Context != "" {
		claims["ctx"] = creds.Context
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return nil, apperrors.Unauthorized(authDomain.CodeInvalidPrivateKey,
			"unable to sign assertion").WithCause(err)
	}

	body := map[string]any{
		"grant_type": authDomain.JWTBearerGrantType,
		"assertion":  assertion,
	}
	if scope := RoleScope(creds.Roles); scope != "" {
		body["scope"] = scope
	}

	resp, err := t.transport.Do(ctx, &transport.Request{
		Method: http.MethodPost,
		URL:    file.TokenURI,
		Body:   body,
	})
	if err != nil {
		return nil, issuanceFailed(err)
	}
	if !resp.IsSuccess() {
		return nil, issuanceFailed(transport.ErrorFromResponse(resp))
	}

	parsed := gjson.ParseBytes(resp.Body)
	accessToken := parsed.Get("accessToken").String()
	if accessToken == "" {
		return nil, apperrors.Unauthorized(authDomain.CodeTokenIssuanceFailed,
			"token endpoint returned no access token")
	}
	tokenType := parsed.Get("tokenType").String()
	if tokenType == "" {
		tokenType = "Bearer"
	}

	// An access token without a readable exp is still usable once; it is just never cached.
	expiry, _ := tokenExpiry(accessToken)

	return &oauth2.Token{AccessToken: accessToken, TokenType: tokenType, Expiry: expiry}, nil
}

// RoleScope renders roles as the space separated scope sent to the token endpoint.
func RoleScope(roles []string) string {
	if len(roles) == 0 {
		return ""
	}
	scopes := make([]string, 0, len(roles))
	for _, role := range roles {
		scopes = append(scopes, authDomain.RolePrefix+role)
	}
	return strings.Join(scopes, " ")
}

// tokenExpiry reads the exp claim of a JWT without verifying its signature.
func tokenExpiry(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, apperrors.Unauthorized(authDomain.CodeInvalidToken,
			"bearer token is not a valid JWT").WithCause(err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, apperrors.Unauthorized(authDomain.CodeInvalidToken,
			"bearer token has no exp claim")
	}
	return exp.Time, nil
}

func issuanceFailed(err error) error {
	return apperrors.Unauthorized(authDomain.CodeTokenIssuanceFailed,
		"unable to obtain bearer token").WithCause(err)
}

// NewTokenIssuer creates a TokenIssuer that posts assertions through tr.
func NewTokenIssuer(tr transport.Transport) TokenIssuer {
	return &tokenIssuer{transport: tr, now: time.Now}
}
