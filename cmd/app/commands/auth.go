package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/allisson/vaultclient"
)

// RunBearerToken exchanges the configured service account for a bearer token.
func RunBearerToken(
	ctx context.Context,
	creds *vaultclient.Credentials,
	tr vaultclient.Transport,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	token, err := vaultclient.GenerateBearerToken(ctx, creds, vaultclient.WithTransport(tr))
	if err != nil {
		return fmt.Errorf("failed to generate bearer token: %w", err)
	}

	result := map[string]any{
		"access_token": token.AccessToken,
		"token_type":   token.TokenType,
		"expires_at":   token.Expiry.UTC().Format(time.RFC3339),
	}
	writeOutput(writer, format, result, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, token.AccessToken)
	})
	return nil
}

// RunSignDataTokens signs data tokens with the configured service account key.
func RunSignDataTokens(
	creds *vaultclient.Credentials,
	writer io.Writer,
	tokens []string,
	ttl int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if ttl < 0 {
		return fmt.Errorf("ttl must be a positive number, got: %d", ttl)
	}

	signed, err := vaultclient.SignDataTokens(creds, &vaultclient.SignedDataTokensRequest{
		DataTokens: tokens,
		TTL:        ttl,
	})
	if err != nil {
		return fmt.Errorf("failed to sign data tokens: %w", err)
	}

	writeOutput(writer, format, signed, func(w io.Writer) {
		for _, token := range signed {
			_, _ = fmt.Fprintf(w, "%s %s\n", token.Token, token.SignedToken)
		}
	})
	return nil
}
