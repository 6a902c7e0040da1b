package service

import (
	"crypto/rsa"
	"encoding/json"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
)

// LoadCredentialsFile reads the service account document named by creds.
// Only file path and credentials string sources carry one.
func LoadCredentialsFile(creds *authDomain.Credentials) (*authDomain.CredentialsFile, error) {
	var raw []byte
	switch creds.Source() {
	case authDomain.SourceFilePath:
		data, err := os.ReadFile(creds.Path)
		if err != nil {
			return nil, apperrors.Unauthorized(authDomain.CodeCredentialsFileNotFound,
				"unable to read credentials file %q", creds.Path).WithCause(err)
		}
		raw = data
	case authDomain.SourceCredentialsString:
		raw = []byte(creds.CredentialsString)
	default:
		return nil, apperrors.Unauthorized(authDomain.CodeInvalidCredentialsJSON,
			"credentials of kind %q carry no service account document", creds.Source())
	}

	var file authDomain.CredentialsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, apperrors.Unauthorized(authDomain.CodeInvalidCredentialsJSON,
			"credentials are not valid JSON").WithCause(err)
	}

	switch {
	case strings.TrimSpace(file.ClientID) == "":
		return nil, apperrors.Unauthorized(authDomain.CodeMissingClientID, "credentials are missing clientID")
	case strings.TrimSpace(file.KeyID) == "":
		return nil, apperrors.Unauthorized(authDomain.CodeMissingKeyID, "credentials are missing keyID")
	case strings.TrimSpace(file.TokenURI) == "":
		return nil, apperrors.Unauthorized(authDomain.CodeMissingTokenURI, "credentials are missing tokenURI")
	case strings.TrimSpace(file.PrivateKey) == "":
		return nil, apperrors.Unauthorized(authDomain.CodeMissingPrivateKey, "credentials are missing privateKey")
	}

	return &file, nil
}

// parsePrivateKey decodes the PEM encoded RSA key (PKCS#1 or PKCS#8).
func parsePrivateKey(file *authDomain.CredentialsFile) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(file.PrivateKey))
	if err != nil {
		return nil, apperrors.Unauthorized(authDomain.CodeInvalidPrivateKey,
			"unable to parse private key").WithCause(err)
	}
	return key, nil
}
