// Package vaultclient is a client for a remote data vault. It performs tokenization,
// detokenization and record operations against one or more vaults, and invokes
// connections that proxy third-party APIs through the vault.
//
// A Client holds a registry of vault and connection configs. Each registered endpoint
// resolves its own credentials (endpoint override, then the client-wide common
// credentials, then the SKYFLOW_CREDENTIALS environment variable), exchanges them for a
// bearer token when needed and caches that token until shortly before it expires.
// Requests are validated before any network call is made.
//
//	client, err := vaultclient.New(
//		vaultclient.WithVaultConfig(&vaultclient.VaultConfig{
//			VaultID:   "vault-id",
//			ClusterID: "cluster-id",
//			Env:       vaultclient.EnvProd,
//		}),
//		vaultclient.WithCredentials(&vaultclient.Credentials{Path: "credentials.json"}),
//	)
//	if err != nil {
//		return err
//	}
//	vault, err := client.Vault()
//	if err != nil {
//		return err
//	}
//	resp, err := vault.Insert(ctx, &vaultclient.InsertRequest{
//		Table:  "cards",
//		Values: []map[string]any{{"card_number": "4111111111111111"}},
//	})
//
// Every error returned by the package unwraps to one of the kinds ErrInvalidInput,
// ErrUnauthorized, ErrNotFound, ErrConflict, ErrTransport or ErrPartialBatch, and
// carries a Code that can be read with CodeOf.
package vaultclient
