package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/allisson/vaultclient/internal/transport"
)

// TokenPath is the token endpoint path served by FakeVault.
const TokenPath = "/v1/auth/sa/oauth/token"

// ConnectionPath prefixes the connection routes served by FakeVault. Every request under
// it is echoed back.
const ConnectionPath = "/v1/gateway/outboundRoutes"

// FakeVault is an in-memory vault and token endpoint served over HTTP. Any host the
// client dials is routed to it through Transport.
type FakeVault struct {
	Server *httptest.Server

	account      *ServiceAccount
	tokenTTL     time.Duration
	tokenIssued  atomic.Int32
	lastAuth     atomic.Value
	lastMetadata atomic.Value

	mu      sync.Mutex
	records map[string]map[string]map[string]any
	tokens  map[string]string
	files   map[string][]byte
}

// NewFakeVault starts a FakeVault. Token assertions are verified against account when
// it is not nil. The server is closed when the test ends.
func NewFakeVault(t testing.TB, account *ServiceAccount) *FakeVault {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &FakeVault{
		account:  account,
		tokenTTL: time.Hour,
		records:  map[string]map[string]map[string]any{},
		tokens:   map[string]string{},
		files:    map[string][]byte{},
	}

	router := gin.New()
	router.POST(TokenPath, f.issueToken)

	vaults := router.Group("/v1/vaults/:vault", f.authenticate)
	vaults.POST("", f.batch)
	vaults.POST("/query", f.query)
	vaults.POST("/tokenize", f.tokenize)
	vaults.POST("/detokenize", f.detokenize)
	vaults.POST("/:table", f.insert)
	vaults.GET("/:table", f.get)
	vaults.DELETE("/:table", f.delete)
	vaults.PUT("/:table/:id", f.update)
	vaults.POST("/:table/:id/files", f.upload)

	router.Any(ConnectionPath+"/*path", f.echoConnection)

	f.Server = httptest.NewServer(router)
	t.Cleanup(f.Server.Close)
	return f
}

// Transport returns an HTTP transport that sends every request to the fake server,
// keeping the original path and query.
func (f *FakeVault) Transport() transport.Transport {
	cfg := transport.DefaultConfig()
	cfg.RetryMax = 0
	next := transport.NewHTTPTransport(cfg)
	target, _ := url.Parse(f.Server.URL)

	return transport.Func(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
		u, err := url.Parse(req.URL)
		if err != nil {
			return nil, err
		}
		u.Scheme = target.Scheme
		u.Host = target.Host
		routed := *req
		routed.URL = u.String()
		return next.Do(ctx, &routed)
	})
}

// TokensIssued returns how many bearer tokens the token endpoint minted.
func (f *FakeVault) TokensIssued() int {
	return int(f.tokenIssued.Load())
}

// LastAuthorization returns the Authorization header of the last vault call.
func (f *FakeVault) LastAuthorization() string {
	v, _ := f.lastAuth.Load().(string)
	return v
}

// LastMetadata returns the metadata header of the last vault call.
func (f *FakeVault) LastMetadata() string {
	v, _ := f.lastMetadata.Load().(string)
	return v
}

// File returns the content uploaded for a record column.
func (f *FakeVault) File(table, id, column string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[table+"/"+id+"/"+column]
}

func vaultError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
		"grpc_code":   3,
		"http_code":   status,
		"http_status": http.StatusText(status),
		"message":     message,
		"details":     []any{},
	}})
}

func (f *FakeVault) issueToken(c *gin.Context) {
	var body struct {
		GrantType string `json:"grant_type"`
		Assertion string `json:"assertion"`
		Scope     string `json:"scope"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Assertion == "" {
		vaultError(c, http.StatusBadRequest, "invalid token request")
		return
	}
	if f.account != nil {
		_, err := jwt.Parse(body.Assertion, func(*jwt.Token) (any, error) {
			return &f.account.PrivateKey.PublicKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		if err != nil {
			vaultError(c, http.StatusUnauthorized, "invalid assertion")
			return
		}
	}

	f.tokenIssued.Add(1)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"scope": body.Scope,
		"exp":   time.Now().Add(f.tokenTTL).Unix(),
	}).SignedString([]byte("fake-vault"))
	if err != nil {
		vaultError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": raw, "tokenType": "Bearer"})
}

func (f *FakeVault) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") == "" {
		vaultError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	f.lastAuth.Store(header)
	f.lastMetadata.Store(c.GetHeader(transport.MetadataHeader))
	c.Header(transport.RequestIDHeader, uuid.NewString())
	c.Next()
}

type recordBody struct {
	Fields map[string]any `json:"fields"`
	Tokens map[string]any `json:"tokens"`
}

// storeLocked saves fields under a new id and returns the id and per-field tokens.
func (f *FakeVault) storeLocked(table string, fields, tokens map[string]any) (string, map[string]any) {
	if f.records[table] == nil {
		f.records[table] = map[string]map[string]any{}
	}
	id := uuid.NewString()
	stored := map[string]any{"skyflow_id": id}
	out := map[string]any{}
	for k, v := range fields {
		stored[k] = v
		token, ok := tokens[k].(string)
		if !ok {
			token = uuid.NewString()
		}
		f.tokens[token] = fmt.Sprint(v)
		out[k] = token
	}
	f.records[table][id] = stored
	return id, out
}

func (f *FakeVault) insert(c *gin.Context) {
	var body struct {
		Records      []recordBody `json:"records"`
		Tokenization bool         `json:"tokenization"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	records := make([]gin.H, 0, len(body.Records))
	for _, r := range body.Records {
		id, tokens := f.storeLocked(c.Param("table"), r.Fields, r.Tokens)
		record := gin.H{"skyflow_id": id}
		if body.Tokenization {
			record["tokens"] = tokens
		}
		records = append(records, record)
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (f *FakeVault) batch(c *gin.Context) {
	var body struct {
		Records []struct {
			Fields       map[string]any `json:"fields"`
			TableName    string         `json:"tableName"`
			Method       string         `json:"method"`
			Tokenization bool           `json:"tokenization"`
		} `json:"records"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	responses := make([]gin.H, 0, len(body.Records))
	for _, r := range body.Records {
		if _, bad := r.Fields["invalid"]; bad {
			responses = append(responses, gin.H{
				"Status": http.StatusBadRequest,
				"Body":   gin.H{"error": "Invalid field present in JSON invalid"},
			})
			continue
		}
		id, tokens := f.storeLocked(r.TableName, r.Fields, nil)
		record := gin.H{"skyflow_id": id}
		if r.Tokenization {
			record["tokens"] = tokens
		}
		responses = append(responses, gin.H{
			"Status": http.StatusOK,
			"Body":   gin.H{"records": []gin.H{record}},
		})
	}
	c.JSON(http.StatusOK, gin.H{"vaultID": c.Param("vault"), "responses": responses})
}

func (f *FakeVault) get(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := f.records[c.Param("table")]
	var matched []map[string]any
	if ids := c.QueryArray("skyflow_ids"); len(ids) > 0 {
		for _, id := range ids {
			if record, ok := table[id]; ok {
				matched = append(matched, record)
			}
		}
	} else {
		column := c.Query("column_name")
		for _, value := range c.QueryArray("column_values") {
			for _, record := range table {
				if fmt.Sprint(record[column]) == value {
					matched = append(matched, record)
				}
			}
		}
	}
	if len(matched) == 0 {
		vaultError(c, http.StatusNotFound, "No Records Found")
		return
	}

	records := make([]gin.H, 0, len(matched))
	for _, record := range matched {
		records = append(records, gin.H{"fields": record})
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (f *FakeVault) update(c *gin.Context) {
	var body struct {
		Record recordBody `json:"record"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[c.Param("table")][c.Param("id")]
	if !ok {
		vaultError(c, http.StatusNotFound, "No Records Found")
		return
	}
	for k, v := range body.Record.Fields {
		record[k] = v
	}
	c.JSON(http.StatusOK, gin.H{"skyflow_id": c.Param("id")})
}

func (f *FakeVault) delete(c *gin.Context) {
	var body struct {
		SkyflowIDs []string `json:"skyflow_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := []string{}
	for _, id := range body.SkyflowIDs {
		if _, ok := f.records[c.Param("table")][id]; ok {
			delete(f.records[c.Param("table")], id)
			deleted = append(deleted, id)
		}
	}
	c.JSON(http.StatusOK, gin.H{"RecordIDResponse": deleted})
}

func (f *FakeVault) query(c *gin.Context) {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Only "select * from <table>" is understood.
	fields := strings.Fields(strings.ToLower(body.Query))
	if len(fields) != 4 || fields[0] != "select" || fields[2] != "from" {
		vaultError(c, http.StatusBadRequest, "unsupported query")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	records := []gin.H{}
	for _, record := range f.records[fields[3]] {
		records = append(records, gin.H{"fields": record})
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (f *FakeVault) tokenize(c *gin.Context) {
	var body struct {
		Parameters []struct {
			Value       any    `json:"value"`
			ColumnGroup string `json:"columnGroup"`
		} `json:"tokenizationParameters"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	records := make([]gin.H, 0, len(body.Parameters))
	for _, p := range body.Parameters {
		token := uuid.NewString()
		f.tokens[token] = fmt.Sprint(p.Value)
		records = append(records, gin.H{"token": token})
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (f *FakeVault) detokenize(c *gin.Context) {
	var body struct {
		Parameters []struct {
			Token     string `json:"token"`
			Redaction string `json:"redaction"`
		} `json:"detokenizationParameters"`
		ContinueOnError bool `json:"continueOnError"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	records := make([]gin.H, 0, len(body.Parameters))
	for _, p := range body.Parameters {
		value, ok := f.tokens[p.Token]
		if !ok {
			if !body.ContinueOnError {
				vaultError(c, http.StatusNotFound, "Token Not Found")
				return
			}
			records = append(records, gin.H{"token": p.Token, "error": "Token Not Found"})
			continue
		}
		if p.Redaction == "REDACTED" {
			value = "*REDACTED*"
		}
		records = append(records, gin.H{"token": p.Token, "value": value, "valueType": "STRING"})
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (f *FakeVault) upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for column, headers := range form.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				vaultError(c, http.StatusBadRequest, err.Error())
				return
			}
			content, err := io.ReadAll(file)
			_ = file.Close()
			if err != nil {
				vaultError(c, http.StatusBadRequest, err.Error())
				return
			}
			f.files[c.Param("table")+"/"+c.Param("id")+"/"+column] = content
		}
	}
	c.JSON(http.StatusOK, gin.H{"skyflow_id": c.Param("id")})
}

func (f *FakeVault) echoConnection(c *gin.Context) {
	identity := c.GetHeader("x-skyflow-authorization")
	if identity == "" {
		vaultError(c, http.StatusUnauthorized, "missing connection identity")
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		vaultError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Header(transport.RequestIDHeader, uuid.NewString())
	c.JSON(http.StatusOK, gin.H{
		"method":       c.Request.Method,
		"path":         c.Param("path"),
		"query":        c.Request.URL.RawQuery,
		"content_type": c.ContentType(),
		"identity":     identity,
		"body":         string(body),
	})
}
