package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	authUsecase "github.com/allisson/vaultclient/internal/auth/usecase"
	"github.com/allisson/vaultclient/internal/transport"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
	"github.com/allisson/vaultclient/internal/vault/http/dto"
	"github.com/allisson/vaultclient/internal/vault/validator"
)

// VaultClient is the orchestrator bound to one vault endpoint. It owns the endpoint's
// session and therefore its cached identity.
type VaultClient struct {
	transport transport.Transport
	session   *authUsecase.Session
	logger    *slog.Logger
	metadata  string

	mu      sync.RWMutex
	config  vaultDomain.VaultConfig
	baseURL string
}

// NewVaultClient creates a VaultClient for cfg and resolves its credentials against
// common. Resolution failures are not fatal: they are retried on the first call.
func NewVaultClient(
	cfg *vaultDomain.VaultConfig,
	common *authDomain.Credentials,
	session *authUsecase.Session,
	tr transport.Transport,
	logger *slog.Logger,
) *VaultClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	v := &VaultClient{
		transport: tr,
		session:   session,
		logger:    logger,
		metadata:  transport.Metadata(),
	}
	_ = v.Reconfigure(cfg, common)
	return v
}

// Reconfigure replaces the config, recomputes the base URL and re-runs credential
// resolution, which always discards the cached identity.
func (v *VaultClient) Reconfigure(cfg *vaultDomain.VaultConfig, common *authDomain.Credentials) error {
	v.mu.Lock()
	v.config = *cfg.Clone()
	v.baseURL = cfg.BaseURL()
	v.mu.Unlock()

	err := v.session.Bind(cfg.Credentials, common)
	if err != nil {
		v.logger.Debug("vault credentials not resolved",
			slog.String("vault_id", cfg.VaultID),
			slog.Any("error", err),
		)
	}
	return err
}

// Config returns a copy of the current config.
func (v *VaultClient) Config() *vaultDomain.VaultConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.config.Clone()
}

// BaseURL returns the current vault base URL.
func (v *VaultClient) BaseURL() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.baseURL
}

// Session returns the credential session of the endpoint.
func (v *VaultClient) Session() *authUsecase.Session {
	return v.session
}

type call struct {
	operation   string
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     []byte
	contentType string
}

// dispatch authenticates and sends c, returning only successful responses.
func (v *VaultClient) dispatch(ctx context.Context, c call) (*transport.Response, error) {
	identity, err := v.session.Identity(ctx)
	if err != nil {
		return nil, err
	}

	v.mu.RLock()
	vaultID := v.config.VaultID
	target := v.baseURL + "/v1/vaults/" + url.PathEscape(vaultID) + c.path
	v.mu.RUnlock()
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+identity)
	header.Set(transport.MetadataHeader, v.metadata)
	if c.contentType != "" {
		header.Set("Content-Type", c.contentType)
	}

	resp, err := v.transport.Do(ctx, &transport.Request{
		Method:  c.method,
		URL:     target,
		Header:  header,
		Body:    c.body,
		RawBody: c.rawBody,
	})
	if err != nil {
		v.logger.Debug("vault call failed",
			slog.String("operation", c.operation),
			slog.String("vault_id", vaultID),
			slog.Any("error", err),
		)
		return nil, err
	}

	v.logger.Debug("vault call",
		slog.String("operation", c.operation),
		slog.String("vault_id", vaultID),
		slog.Int("status_code", resp.StatusCode),
		slog.String("request_id", resp.RequestID()),
	)
	if !resp.IsSuccess() {
		return nil, transport.ErrorFromResponse(resp)
	}
	return resp, nil
}

func tablePath(table string, segments ...string) string {
	path := "/" + url.PathEscape(table)
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}
	return path
}

// Insert inserts records.
func (v *VaultClient) Insert(
	ctx context.Context,
	req *vaultDomain.InsertRequest,
) (*vaultDomain.InsertResponse, error) {
	if err := validator.ValidateInsert(req); err != nil {
		return nil, err
	}

	if !req.ContinueOnError {
		resp, err := v.dispatch(ctx, call{
			operation: validator.OpInsert,
			method:    http.MethodPost,
			path:      tablePath(req.Table),
			body:      dto.MapInsertRequest(req),
		})
		if err != nil {
			return nil, err
		}
		return dto.MapInsertResponse(resp.Body)
	}

	resp, err := v.dispatch(ctx, call{
		operation: validator.OpInsert,
		method:    http.MethodPost,
		body:      dto.MapBatchInsertRequest(req),
	})
	if err != nil {
		return nil, err
	}
	out, err := dto.MapBatchInsertResponse(resp.Body, resp.RequestID())
	if err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		v.logPartial(validator.OpInsert, len(out.Errors), len(req.Values))
		return out, &vaultDomain.PartialBatchError{
			Operation: validator.OpInsert,
			Succeeded: out.InsertedFields,
			Failures:  out.Errors,
		}
	}
	return out, nil
}

// Get reads records.
func (v *VaultClient) Get(ctx context.Context, req *vaultDomain.GetRequest) (*vaultDomain.GetResponse, error) {
	if err := validator.ValidateGet(req); err != nil {
		return nil, err
	}

	resp, err := v.dispatch(ctx, call{
		operation: validator.OpGet,
		method:    http.MethodGet,
		path:      tablePath(req.Table),
		query:     dto.MapGetRequest(req),
	})
	if err != nil {
		return nil, err
	}
	records, err := dto.MapRecordsResponse(resp.Body)
	if err != nil {
		return nil, err
	}
	return &vaultDomain.GetResponse{Data: records}, nil
}

// Update updates one record.
func (v *VaultClient) Update(
	ctx context.Context,
	req *vaultDomain.UpdateRequest,
) (*vaultDomain.UpdateResponse, error) {
	if err := validator.ValidateUpdate(req); err != nil {
		return nil, err
	}

	resp, err := v.dispatch(ctx, call{
		operation: validator.OpUpdate,
		method:    http.MethodPut,
		path:      tablePath(req.Table, req.ID()),
		body:      dto.MapUpdateRequest(req),
	})
	if err != nil {
		return nil, err
	}
	return dto.MapUpdateResponse(resp.Body)
}

// Delete deletes records.
func (v *VaultClient) Delete(
	ctx context.Context,
	req *vaultDomain.DeleteRequest,
) (*vaultDomain.DeleteResponse, error) {
	if err := validator.ValidateDelete(req); err != nil {
		return nil, err
	}

	resp, err := v.dispatch(ctx, call{
		operation: validator.OpDelete,
		method:    http.MethodDelete,
		path:      tablePath(req.Table),
		body:      dto.MapDeleteRequest(req),
	})
	if err != nil {
		return nil, err
	}
	return dto.MapDeleteResponse(resp.Body)
}

// Query runs a SQL query.
func (v *VaultClient) Query(ctx context.Context, req *vaultDomain.QueryRequest) (*vaultDomain.QueryResponse, error) {
	if err := validator.ValidateQuery(req); err != nil {
		return nil, err
	}

	resp, err := v.dispatch(ctx, call{
		operation: validator.OpQuery,
		method:    http.MethodPost,
		path:      "/query",
		body:      dto.MapQueryRequest(req),
	})
	if err != nil {
		return nil, err
	}
	records, err := dto.MapRecordsResponse(resp.Body)
	if err != nil {
		return nil, err
	}
	return &vaultDomain.QueryResponse{Fields: records}, nil
}

// Tokenize returns a token for each value.
func (v *VaultClient) Tokenize(
	ctx context.Context,
	req *vaultDomain.TokenizeRequest,
) (*vaultDomain.TokenizeResponse, error) {
	if err := validator.ValidateTokenize(req); err != nil {
		return nil, err
	}

	resp, err := v.dispatch(ctx, call{
		operation: validator.OpTokenize,
		method:    http.MethodPost,
		path:      "/tokenize",
		body:      dto.MapTokenizeRequest(req),
	})
	if err != nil {
		return nil, err
	}
	return dto.MapTokenizeResponse(resp.Body)
}

// Detokenize reveals tokens.
func (v *VaultClient) Detokenize(
	ctx context.Context,
	req *vaultDomain.DetokenizeRequest,
) (*vaultDomain.DetokenizeResponse, error) {
	if err := validator.ValidateDetokenize(req); err != nil {
		return nil, err
	}

	resp, err := v.dispatch(ctx, call{
		operation: validator.OpDetokenize,
		method:    http.MethodPost,
		path:      "/detokenize",
		body:      dto.MapDetokenizeRequest(req),
	})
	if err != nil {
		return nil, err
	}
	out, err := dto.MapDetokenizeResponse(resp.Body, resp.RequestID())
	if err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		v.logPartial(validator.OpDetokenize, len(out.Errors), len(req.Data))
		succeeded := make([]map[string]any, 0, len(out.DetokenizedFields))
		for _, field := range out.DetokenizedFields {
			succeeded = append(succeeded, map[string]any{
				"token":     field.Token,
				"value":     field.Value,
				"valueType": field.ValueType,
			})
		}
		return out, &vaultDomain.PartialBatchError{
			Operation: validator.OpDetokenize,
			Succeeded: succeeded,
			Failures:  out.Errors,
		}
	}
	return out, nil
}

// UploadFile uploads a file as multipart/form-data.
func (v *VaultClient) UploadFile(
	ctx context.Context,
	req *vaultDomain.FileUploadRequest,
) (*vaultDomain.FileUploadResponse, error) {
	if err := validator.ValidateFileUpload(req); err != nil {
		return nil, err
	}
	body, contentType, err := dto.MapFileUploadRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := v.dispatch(ctx, call{
		operation:   validator.OpFileUpload,
		method:      http.MethodPost,
		path:        tablePath(req.Table, req.SkyflowID, "files"),
		rawBody:     body,
		contentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapFileUploadResponse(resp.Body)
}

func (v *VaultClient) logPartial(operation string, failed, total int) {
	v.logger.Warn("vault batch partially failed",
		slog.String("operation", operation),
		slog.String("vault_id", v.Config().VaultID),
		slog.Int("failed", failed),
		slog.Int("total", total),
	)
}
