package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	authDomain "github.com/allisson/vaultclient/internal/auth/domain"
	authUsecase "github.com/allisson/vaultclient/internal/auth/usecase"
	connectionDomain "github.com/allisson/vaultclient/internal/connection/domain"
	apperrors "github.com/allisson/vaultclient/internal/errors"
	"github.com/allisson/vaultclient/internal/transport"
)

// AuthorizationHeader carries the connection identity.
const AuthorizationHeader = "x-skyflow-authorization"

// ConnectionClient is the orchestrator bound to one connection endpoint.
type ConnectionClient struct {
	transport transport.Transport
	session   *authUsecase.Session
	logger    *slog.Logger
	metadata  string

	mu     sync.RWMutex
	config connectionDomain.ConnectionConfig
}

// NewConnectionClient creates a ConnectionClient for cfg and resolves its credentials
// against common. Resolution failures are retried on the first call.
func NewConnectionClient(
	cfg *connectionDomain.ConnectionConfig,
	common *authDomain.Credentials,
	session *authUsecase.Session,
	tr transport.Transport,
	logger *slog.Logger,
) *ConnectionClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &ConnectionClient{
		transport: tr,
		session:   session,
		logger:    logger,
		metadata:  transport.Metadata(),
	}
	_ = c.Reconfigure(cfg, common)
	return c
}

// Reconfigure replaces the config and re-runs credential resolution, which always
// discards the cached identity.
func (c *ConnectionClient) Reconfigure(
	cfg *connectionDomain.ConnectionConfig,
	common *authDomain.Credentials,
) error {
	c.mu.Lock()
	c.config = *cfg.Clone()
	c.mu.Unlock()

	err := c.session.Bind(cfg.Credentials, common)
	if err != nil {
		c.logger.Debug("connection credentials not resolved",
			slog.String("connection_id", cfg.ConnectionID),
			slog.Any("error", err),
		)
	}
	return err
}

// Config returns a copy of the current config.
func (c *ConnectionClient) Config() *connectionDomain.ConnectionConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.Clone()
}

// Session returns the credential session of the endpoint.
func (c *ConnectionClient) Session() *authUsecase.Session {
	return c.session
}

// Invoke calls the connection.
func (c *ConnectionClient) Invoke(
	ctx context.Context,
	req *connectionDomain.InvokeConnectionRequest,
) (*connectionDomain.InvokeConnectionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg := c.Config()
	target, err := buildURL(cfg.ConnectionURL, req.PathParams, req.QueryParams)
	if err != nil {
		return nil, err
	}

	identity, err := c.session.Identity(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	for k, v := range req.Headers {
		header.Set(k, v)
	}
	header.Set(AuthorizationHeader, identity)
	header.Set(transport.MetadataHeader, c.metadata)

	outbound := &transport.Request{Method: req.HTTPMethod(), URL: target, Header: header}
	if req.Body != nil {
		if req.ContentType == connectionDomain.ContentTypeForm {
			header.Set("Content-Type", string(connectionDomain.ContentTypeForm))
			outbound.RawBody = []byte(encodeForm(req.Body).Encode())
		} else {
			header.Set("Content-Type", string(connectionDomain.ContentTypeJSON))
			outbound.Body = req.Body
		}
	}

	resp, err := c.transport.Do(ctx, outbound)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("connection call",
		slog.String("connection_id", cfg.ConnectionID),
		slog.Int("status_code", resp.StatusCode),
		slog.String("request_id", resp.RequestID()),
	)
	if !resp.IsSuccess() {
		return nil, transport.ErrorFromResponse(resp)
	}
	return &connectionDomain.InvokeConnectionResponse{
		Data:      decodeBody(resp.Body),
		RequestID: resp.RequestID(),
	}, nil
}

// buildURL replaces {name} placeholders with escaped path params and appends the query.
func buildURL(raw string, pathParams, queryParams map[string]string) (string, error) {
	for name, value := range pathParams {
		raw = strings.ReplaceAll(raw, "{"+name+"}", url.PathEscape(value))
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", apperrors.InvalidInput(connectionDomain.CodeInvalidConnectionURL,
			"connection url is invalid after path param substitution").WithCause(err)
	}
	if len(queryParams) > 0 {
		query := u.Query()
		for k, v := range queryParams {
			query.Set(k, v)
		}
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// encodeForm flattens body into form values. Nested objects use key[sub] names and
// list items use key[index].
func encodeForm(body map[string]any) url.Values {
	values := url.Values{}
	flatten(values, "", body)
	return values
}

func flatten(values url.Values, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			name := k
			if prefix != "" {
				name = prefix + "[" + k + "]"
			}
			flatten(values, name, v[k])
		}
	case []any:
		for i, item := range v {
			flatten(values, prefix+"["+strconv.Itoa(i)+"]", item)
		}
	case nil:
		values.Add(prefix, "")
	default:
		values.Add(prefix, fmt.Sprint(v))
	}
}

func decodeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if !gjson.ValidBytes(body) {
		return string(body)
	}
	return gjson.ParseBytes(body).Value()
}
