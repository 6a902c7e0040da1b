package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	"github.com/allisson/vaultclient/internal/testutil"
)

func TestDataTokenSigner_Sign(t *testing.T) {
	account := testutil.NewServiceAccount(t, tokenURI)
	fixed := time.Unix(1_700_000_000, 0)
	signer := &dataTokenSigner{now: func() time.Time { return fixed }}

	t.Run("Success_SignsEachToken", func(t *testing.T) {
		creds := &authDomain.Credentials{CredentialsString: account.JSON(t), Context: "ctx-1"}

		signed, err := signer.Sign(creds, &authDomain.SignedDataTokensRequest{
			DataTokens: []string{"tok-1", "tok-2"},
			TTL:        120,
		})

		require.NoError(t, err)
		require.Len(t, signed, 2)
		for i, token := range []string{"tok-1", "tok-2"} {
			assert.Equal(t, token, signed[i].Token)
			assert.Equal(t, fixed.Unix()+120, signed[i].ExpiresAt)
			require.True(t, strings.HasPrefix(signed[i].SignedToken, authDomain.SignedTokenPrefix))

			claims := account.Verify(t, strings.TrimPrefix(signed[i].SignedToken, authDomain.SignedTokenPrefix))
			assert.Equal(t, "sdk", claims["iss"])
			assert.Equal(t, token, claims["tok"])
			assert.Equal(t, account.KeyID, claims["key"])
			assert.Equal(t, account.ClientID, claims["sub"])
			assert.Equal(t, tokenURI, claims["aud"])
			assert.Equal(t, "ctx-1", claims["ctx"])
		}
	})

	t.Run("Success_DefaultTTL", func(t *testing.T) {
		signed, err := signer.Sign(
			&authDomain.Credentials{CredentialsString: account.JSON(t)},
			&authDomain.SignedDataTokensRequest{DataTokens: []string{"tok-1"}},
		)

		require.NoError(t, err)
		assert.Equal(t, fixed.Add(authDomain.DefaultSignedTokenTTL).Unix(), signed[0].ExpiresAt)
	})

	t.Run("Error_NoTokens", func(t *testing.T) {
		_, err := signer.Sign(
			&authDomain.Credentials{CredentialsString: account.JSON(t)},
			&authDomain.SignedDataTokensRequest{},
		)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Equal(t, authDomain.CodeEmptyDataTokens, apperrors.CodeOf(err))
	})

	t.Run("Error_BlankToken", func(t *testing.T) {
		_, err := signer.Sign(
			&authDomain.Credentials{CredentialsString: account.JSON(t)},
			&authDomain.SignedDataTokensRequest{DataTokens: []string{"tok-1", " "}},
		)

		assert.Equal(t, authDomain.CodeEmptyDataToken, apperrors.CodeOf(err))
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("Error_MissingDocument", func(t *testing.T) {
		_, err := NewDataTokenSigner().Sign(
			&authDomain.Credentials{CredentialsString: "{}"},
			&authDomain.SignedDataTokensRequest{DataTokens: []string{"tok-1"}},
		)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
