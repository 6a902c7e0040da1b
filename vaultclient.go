package vaultclient

import (
	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	authService "github.com/allisson/vaultclient/internal/auth/service"
	authUsecase "github.com/allisson/vaultclient/internal/auth/usecase"
	connectionDomain "github.com/allisson/vaultclient/internal/connection/domain"
	connectionUsecase "github.com/allisson/vaultclient/internal/connection/usecase"
	"github.com/allisson/vaultclient/internal/registry"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
	vaultUsecase "github.com/allisson/vaultclient/internal/vault/usecase"
)

// Client routes operations to the vaults and connections it holds. It is safe for
// concurrent use.
type Client struct {
	registry *registry.Registry
	metrics  BusinessMetrics
}

// New creates a Client. Every config and the common credentials are validated; the
// first failure is returned and no client is created.
func New(opts ...Option) (*Client, error) {
	o := newOptions(opts)
	tr := o.buildTransport()
	issuer := authService.NewTokenIssuer(tr)

	newSession := func() *authUsecase.Session {
		var provider authUsecase.IdentityProvider = authUsecase.NewIdentityUseCase(issuer, o.skew, o.logger)
		if o.metrics != nil {
			provider = authUsecase.NewIdentityUseCaseWithMetrics(provider, o.metrics)
		}
		return authUsecase.NewSession(provider, o.lookupEnv)
	}

	newVault := func(cfg *vaultDomain.VaultConfig, common *authDomain.Credentials) registry.VaultEndpoint {
		return vaultUsecase.NewVaultClient(cfg, common, newSession(), tr, o.logger)
	}
	newConnection := func(
		cfg *connectionDomain.ConnectionConfig,
		common *authDomain.Credentials,
	) registry.ConnectionEndpoint {
		return connectionUsecase.NewConnectionClient(cfg, common, newSession(), tr, o.logger)
	}

	c := &Client{
		registry: registry.New(newVault, newConnection, o.logger),
		metrics:  o.metrics,
	}

	if o.credentials != nil {
		if err := c.registry.SetCommonCredentials(o.credentials); err != nil {
			return nil, err
		}
	}
	for _, cfg := range o.vaults {
		if err := c.registry.AddVault(cfg); err != nil {
			return nil, err
		}
	}
	for _, cfg := range o.connections {
		if err := c.registry.AddConnection(cfg); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Vault returns the vault with the given id, or the first vault registered when id is
// omitted.
func (c *Client) Vault(id ...string) (Vault, error) {
	var (
		endpoint registry.VaultEndpoint
		err      error
	)
	if len(id) > 0 {
		endpoint, err = c.registry.Vault(id[0])
	} else {
		endpoint, err = c.registry.DefaultVault()
	}
	if err != nil {
		return nil, err
	}
	if c.metrics != nil {
		return vaultUsecase.NewVaultUseCaseWithMetrics(endpoint, c.metrics), nil
	}
	return endpoint, nil
}

// Connection returns the connection with the given id, or the first connection
// registered when id is omitted.
func (c *Client) Connection(id ...string) (Connection, error) {
	var (
		endpoint registry.ConnectionEndpoint
		err      error
	)
	if len(id) > 0 {
		endpoint, err = c.registry.Connection(id[0])
	} else {
		endpoint, err = c.registry.DefaultConnection()
	}
	if err != nil {
		return nil, err
	}
	if c.metrics != nil {
		return connectionUsecase.NewConnectionUseCaseWithMetrics(endpoint, c.metrics), nil
	}
	return endpoint, nil
}

// AddVaultConfig registers a new vault. Adding an id that is already registered fails.
func (c *Client) AddVaultConfig(cfg *VaultConfig) error {
	return c.registry.AddVault(cfg)
}

// UpdateVaultConfig merges the non-empty fields of cfg into the registered vault with
// the same id. The vault's cached identity is discarded.
func (c *Client) UpdateVaultConfig(cfg *VaultConfig) error {
	return c.registry.UpdateVault(cfg)
}

// RemoveVaultConfig unregisters a vault.
func (c *Client) RemoveVaultConfig(id string) error {
	return c.registry.RemoveVault(id)
}

// GetVaultConfig returns a copy of a registered vault config.
func (c *Client) GetVaultConfig(id string) (*VaultConfig, error) {
	return c.registry.VaultConfig(id)
}

// VaultIDs returns the registered vault ids in registration order.
func (c *Client) VaultIDs() []string {
	return c.registry.VaultIDs()
}

// AddConnectionConfig registers a new connection.
func (c *Client) AddConnectionConfig(cfg *ConnectionConfig) error {
	return c.registry.AddConnection(cfg)
}

// UpdateConnectionConfig merges the non-empty fields of cfg into the registered
// connection with the same id.
func (c *Client) UpdateConnectionConfig(cfg *ConnectionConfig) error {
	return c.registry.UpdateConnection(cfg)
}

// RemoveConnectionConfig unregisters a connection.
func (c *Client) RemoveConnectionConfig(id string) error {
	return c.registry.RemoveConnection(id)
}

// GetConnectionConfig returns a copy of a registered connection config.
func (c *Client) GetConnectionConfig(id string) (*ConnectionConfig, error) {
	return c.registry.ConnectionConfig(id)
}

// ConnectionIDs returns the registered connection ids in registration order.
func (c *Client) ConnectionIDs() []string {
	return c.registry.ConnectionIDs()
}

// SetCommonCredentials replaces the common credentials and rebinds every endpoint. A nil
// value clears them so endpoints fall back to their overrides or the environment.
func (c *Client) SetCommonCredentials(creds *Credentials) error {
	return c.registry.SetCommonCredentials(creds)
}

// CommonCredentials returns a copy of the common credentials, or nil.
func (c *Client) CommonCredentials() *Credentials {
	return c.registry.CommonCredentials()
}
