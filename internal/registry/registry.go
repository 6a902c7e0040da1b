// Package registry keeps the vault and connection endpoints of a client, in insertion
// order, together with the client-wide common credentials.
package registry

import (
	"log/slog"
	"sync"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	connectionDomain "github.com/allisson/vaultclient/internal/connection/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	connectionUsecase "github.com/allisson/vaultclient/internal/connection/usecase"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
	vaultUsecase "github.com/allisson/vaultclient/internal/vault/usecase"
)

const (
	kindVault      = "vault"
	kindConnection = "connection"
)

// VaultEndpoint is a vault orchestrator that can be rebound to a new config.
type VaultEndpoint interface {
	vaultUsecase.VaultUseCase
	Reconfigure(cfg *vaultDomain.VaultConfig, common *authDomain.Credentials) error
}

// ConnectionEndpoint is a connection orchestrator that can be rebound to a new config.
type ConnectionEndpoint interface {
	connectionUsecase.ConnectionUseCase
	Reconfigure(cfg *connectionDomain.ConnectionConfig, common *authDomain.Credentials) error
}

// VaultFactory builds the orchestrator of a newly added vault.
type VaultFactory func(cfg *vaultDomain.VaultConfig, common *authDomain.Credentials) VaultEndpoint

// ConnectionFactory builds the orchestrator of a newly added connection.
type ConnectionFactory func(cfg *connectionDomain.ConnectionConfig, common *authDomain.Credentials) ConnectionEndpoint

type vaultEntry struct {
	config   vaultDomain.VaultConfig
	endpoint VaultEndpoint
}

type connectionEntry struct {
	config   connectionDomain.ConnectionConfig
	endpoint ConnectionEndpoint
}

// Registry is safe for concurrent use. Every mutation is validated before any state
// changes, so a failed call leaves the registry untouched.
type Registry struct {
	newVault      VaultFactory
	newConnection ConnectionFactory
	logger        *slog.Logger

	mu          sync.RWMutex
	common      *authDomain.Credentials
	vaults      *orderedMap[vaultEntry]
	connections *orderedMap[connectionEntry]
}

// New creates an empty Registry.
func New(newVault VaultFactory, newConnection ConnectionFactory, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		newVault:      newVault,
		newConnection: newConnection,
		logger:        logger,
		vaults:        newOrderedMap[vaultEntry](),
		connections:   newOrderedMap[connectionEntry](),
	}
}

// AddVault validates cfg and registers a new vault bound to the current common credentials.
func (r *Registry) AddVault(cfg *vaultDomain.VaultConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vaults.get(cfg.VaultID); ok {
		return duplicateConfig(kindVault, cfg.VaultID)
	}
	stored := cfg.Clone()
	r.vaults.insert(cfg.VaultID, vaultEntry{config: *stored, endpoint: r.newVault(stored, r.common)})

	r.logger.Debug("vault added", slog.String("vault_id", cfg.VaultID))
	return nil
}

// UpdateVault merges the non-empty fields of cfg into the stored config of the same id,
// validates the result and rebinds the orchestrator.
func (r *Registry) UpdateVault(cfg *vaultDomain.VaultConfig) error {
	if cfg == nil {
		return apperrors.InvalidInput(vaultDomain.CodeEmptyConfig, "vault config must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.vaults.get(cfg.VaultID)
	if !ok {
		return configNotFound(kindVault, cfg.VaultID)
	}
	merged := entry.config.Merge(cfg)
	if err := merged.Validate(); err != nil {
		return err
	}

	entry.config = merged
	r.vaults.replace(cfg.VaultID, entry)
	_ = entry.endpoint.Reconfigure(&merged, r.common)

	r.logger.Debug("vault updated", slog.String("vault_id", cfg.VaultID))
	return nil
}

// RemoveVault unregisters a vault.
func (r *Registry) RemoveVault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.vaults.remove(id) {
		return configNotFound(kindVault, id)
	}
	r.logger.Debug("vault removed", slog.String("vault_id", id))
	return nil
}

// Vault returns the orchestrator of a vault.
func (r *Registry) Vault(id string) (VaultEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.vaults.get(id)
	if !ok {
		return nil, configNotFound(kindVault, id)
	}
	return entry.endpoint, nil
}

// DefaultVault returns the orchestrator of the first vault added.
func (r *Registry) DefaultVault() (VaultEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, entry, ok := r.vaults.first()
	if !ok {
		return nil, configNotFound(kindVault, "")
	}
	return entry.endpoint, nil
}

// VaultConfig returns a copy of the stored config of a vault.
func (r *Registry) VaultConfig(id string) (*vaultDomain.VaultConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.vaults.get(id)
	if !ok {
		return nil, configNotFound(kindVault, id)
	}
	return entry.config.Clone(), nil
}

// VaultIDs returns the registered vault ids in insertion order.
func (r *Registry) VaultIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.vaults.ids()
}

// AddConnection validates cfg and registers a new connection bound to the current
// common credentials.
func (r *Registry) AddConnection(cfg *connectionDomain.ConnectionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.connections.get(cfg.ConnectionID); ok {
		return duplicateConfig(kindConnection, cfg.ConnectionID)
	}
	stored := cfg.Clone()
	r.connections.insert(cfg.ConnectionID, connectionEntry{
		config:   *stored,
		endpoint: r.newConnection(stored, r.common),
	})

	r.logger.Debug("connection added", slog.String("connection_id", cfg.ConnectionID))
	return nil
}

// UpdateConnection merges the non-empty fields of cfg into the stored config of the
// same id, validates the result and rebinds the orchestrator.
func (r *Registry) UpdateConnection(cfg *connectionDomain.ConnectionConfig) error {
	if cfg == nil {
		return apperrors.InvalidInput(connectionDomain.CodeEmptyConfig, "connection config must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.connections.get(cfg.ConnectionID)
	if !ok {
		return configNotFound(kindConnection, cfg.ConnectionID)
	}
	merged := entry.config.Merge(cfg)
	if err := merged.Validate(); err != nil {
		return err
	}

	entry.config = merged
	r.connections.replace(cfg.ConnectionID, entry)
	_ = entry.endpoint.Reconfigure(&merged, r.common)

	r.logger.Debug("connection updated", slog.String("connection_id", cfg.ConnectionID))
	return nil
}

// RemoveConnection unregisters a connection.
func (r *Registry) RemoveConnection(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.connections.remove(id) {
		return configNotFound(kindConnection, id)
	}
	r.logger.Debug("connection removed", slog.String("connection_id", id))
	return nil
}

// Connection returns the orchestrator of a connection.
func (r *Registry) Connection(id string) (ConnectionEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.connections.get(id)
	if !ok {
		return nil, configNotFound(kindConnection, id)
	}
	return entry.endpoint, nil
}

// DefaultConnection returns the orchestrator of the first connection added.
func (r *Registry) DefaultConnection() (ConnectionEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, entry, ok := r.connections.first()
	if !ok {
		return nil, configNotFound(kindConnection, "")
	}
	return entry.endpoint, nil
}

// ConnectionConfig returns a copy of the stored config of a connection.
func (r *Registry) ConnectionConfig(id string) (*connectionDomain.ConnectionConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.connections.get(id)
	if !ok {
		return nil, configNotFound(kindConnection, id)
	}
	return entry.config.Clone(), nil
}

// ConnectionIDs returns the registered connection ids in insertion order.
func (r *Registry) ConnectionIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.connections.ids()
}

// SetCommonCredentials validates and stores the client-wide credentials, then rebinds
// every registered endpoint. A nil creds clears the common slot.
func (r *Registry) SetCommonCredentials(creds *authDomain.Credentials) error {
	if creds != nil {
		if err := creds.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.common = creds.Clone()
	r.vaults.each(func(_ string, entry vaultEntry) {
		_ = entry.endpoint.Reconfigure(&entry.config, r.common)
	})
	r.connections.each(func(_ string, entry connectionEntry) {
		_ = entry.endpoint.Reconfigure(&entry.config, r.common)
	})
	return nil
}

// CommonCredentials returns a copy of the client-wide credentials, or nil.
func (r *Registry) CommonCredentials() *authDomain.Credentials {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.common.Clone()
}
