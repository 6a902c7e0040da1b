package service

import (
	"os"
	"strings"

	"github.com/tidwall/gjson"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
)

// EnvLookup reads an environment variable. os.LookupEnv satisfies it.
type EnvLookup func(key string) (string, bool)

// OSEnvLookup is the process environment.
var OSEnvLookup EnvLookup = os.LookupEnv

// EnvFallback returns the credentials JSON held in the fallback environment variable.
func EnvFallback(lookup EnvLookup) string {
	if lookup == nil {
		return ""
	}
	value, ok := lookup(authDomain.EnvCredentialsKey)
	if !ok {
		return ""
	}
	return value
}

// Resolve picks the credentials for one call scope. Precedence is strict:
// request-scoped, then common, then the environment fallback. The returned value is a
// copy. A missing or non-JSON fallback yields ErrMissingCredentials in both cases.
func Resolve(requestScoped, commonScoped *authDomain.Credentials, envFallback string) (*authDomain.Credentials, error) {
	switch {
	case requestScoped != nil:
		return requestScoped.Clone(), nil
	case commonScoped != nil:
		return commonScoped.Clone(), nil
	}

	if strings.TrimSpace(envFallback) == "" {
		return nil, authDomain.ErrMissingCredentials
	}
	if !gjson.Valid(envFallback) || !gjson.Parse(envFallback).IsObject() {
		return nil, authDomain.ErrMissingCredentials
	}
	return &authDomain.Credentials{CredentialsString: envFallback}, nil
}
