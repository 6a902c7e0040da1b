// Package dto maps vault requests and responses to and from their wire payloads.
package dto

import (
	"net/url"
	"strconv"

	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// RecordPayload is one record of an insert or update body.
type RecordPayload struct {
	Fields map[string]any `json:"fields"`
	Tokens map[string]any `json:"tokens,omitempty"`
}

// InsertPayload is the body of a single-table insert.
type InsertPayload struct {
	Records      []RecordPayload `json:"records"`
	Tokenization bool            `json:"tokenization"`
	Upsert       string          `json:"upsert,omitempty"`
	Homogeneous  bool            `json:"homogeneous,omitempty"`
	BYOT         string          `json:"byot"`
}

// BatchRecordPayload is one sub-request of a batch insert.
type BatchRecordPayload struct {
	Fields       map[string]any `json:"fields"`
	Tokens       map[string]any `json:"tokens,omitempty"`
	TableName    string         `json:"tableName"`
	Method       string         `json:"method"`
	Tokenization bool           `json:"tokenization"`
	Upsert       string         `json:"upsert,omitempty"`
}

// BatchInsertPayload is the body of a batch insert that continues on error.
type BatchInsertPayload struct {
	Records         []BatchRecordPayload `json:"records"`
	ContinueOnError bool                 `json:"continueOnError"`
	BYOT            string               `json:"byot"`
}

// UpdatePayload is the body of a record update.
type UpdatePayload struct {
	Record       RecordPayload `json:"record"`
	Tokenization bool          `json:"tokenization"`
	BYOT         string        `json:"byot"`
}

// DeletePayload is the body of a delete.
type DeletePayload struct {
	SkyflowIDs []string `json:"skyflow_ids"`
}

// QueryPayload is the body of a query.
type QueryPayload struct {
	Query string `json:"query"`
}

// TokenizeParameter is one value to tokenize.
type TokenizeParameter struct {
	Value       any    `json:"value"`
	ColumnGroup string `json:"columnGroup"`
}

// TokenizePayload is the body of a tokenize call.
type TokenizePayload struct {
	TokenizationParameters []TokenizeParameter `json:"tokenizationParameters"`
}

// DetokenizeParameter is one token to reveal.
type DetokenizeParameter struct {
	Token     string `json:"token"`
	Redaction string `json:"redaction,omitempty"`
}

// DetokenizePayload is the body of a detokenize call.
type DetokenizePayload struct {
	DetokenizationParameters []DetokenizeParameter `json:"detokenizationParameters"`
	DownloadURL              bool                  `json:"downloadURL,omitempty"`
	ContinueOnError          bool                  `json:"continueOnError"`
}

// MapInsertRequest builds the single-table insert body. Tokens are paired with records
// by index.
func MapInsertRequest(req *vaultDomain.InsertRequest) InsertPayload {
	records := make([]RecordPayload, 0, len(req.Values))
	for i, values := range req.Values {
		records = append(records, RecordPayload{Fields: values, Tokens: tokensAt(req.Tokens, i)})
	}
	return InsertPayload{
		Records:      records,
		Tokenization: req.ReturnTokens,
		Upsert:       req.Upsert,
		Homogeneous:  req.Homogeneous,
		BYOT:         string(req.TokenMode.Normalize()),
	}
}

// MapBatchInsertRequest expands an insert into one POST sub-request per record.
func MapBatchInsertRequest(req *vaultDomain.InsertRequest) BatchInsertPayload {
	records := make([]BatchRecordPayload, 0, len(req.Values))
	for i, values := range req.Values {
		records = append(records, BatchRecordPayload{
			Fields:       values,
			Tokens:       tokensAt(req.Tokens, i),
			TableName:    req.Table,
			Method:       "POST",
			Tokenization: req.ReturnTokens,
			Upsert:       req.Upsert,
		})
	}
	return BatchInsertPayload{
		Records:         records,
		ContinueOnError: true,
		BYOT:            string(req.TokenMode.Normalize()),
	}
}

// MapUpdateRequest builds the update body. The skyflow_id travels in the path.
func MapUpdateRequest(req *vaultDomain.UpdateRequest) UpdatePayload {
	fields := make(map[string]any, len(req.Data))
	for k, v := range req.Data {
		if k != vaultDomain.SkyflowIDField {
			fields[k] = v
		}
	}
	return UpdatePayload{
		Record:       RecordPayload{Fields: fields, Tokens: req.Tokens},
		Tokenization: req.ReturnTokens,
		BYOT:         string(req.TokenMode.Normalize()),
	}
}

// MapDeleteRequest builds the delete body.
func MapDeleteRequest(req *vaultDomain.DeleteRequest) DeletePayload {
	return DeletePayload{SkyflowIDs: req.IDs}
}

// MapQueryRequest builds the query body.
func MapQueryRequest(req *vaultDomain.QueryRequest) QueryPayload {
	return QueryPayload{Query: req.Query}
}

// MapTokenizeRequest builds the tokenize body.
func MapTokenizeRequest(req *vaultDomain.TokenizeRequest) TokenizePayload {
	params := make([]TokenizeParameter, 0, len(req.Values))
	for _, v := range req.Values {
		params = append(params, TokenizeParameter{Value: v.Value, ColumnGroup: v.ColumnGroup})
	}
	return TokenizePayload{TokenizationParameters: params}
}

// MapDetokenizeRequest builds the detokenize body. Tokens without a redaction type are
// revealed as plain text.
func MapDetokenizeRequest(req *vaultDomain.DetokenizeRequest) DetokenizePayload {
	params := make([]DetokenizeParameter, 0, len(req.Data))
	for _, d := range req.Data {
		redaction := d.RedactionType
		if redaction == "" {
			redaction = vaultDomain.RedactionPlainText
		}
		params = append(params, DetokenizeParameter{Token: d.Token, Redaction: string(redaction)})
	}
	return DetokenizePayload{
		DetokenizationParameters: params,
		DownloadURL:              req.DownloadURL,
		ContinueOnError:          req.ContinueOnError,
	}
}

// MapGetRequest builds the query string of a get.
func MapGetRequest(req *vaultDomain.GetRequest) url.Values {
	query := url.Values{}
	for _, id := range req.IDs {
		query.Add("skyflow_ids", id)
	}
	if req.RedactionType != "" {
		query.Set("redaction", string(req.RedactionType))
	}
	if req.ReturnTokens {
		query.Set("tokenization", "true")
	}
	for _, field := range req.Fields {
		query.Add("fields", field)
	}
	if req.Offset > 0 {
		query.Set("offset", strconv.Itoa(req.Offset))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.DownloadURL {
		query.Set("downloadURL", "true")
	}
	if req.ColumnName != "" {
		query.Set("column_name", req.ColumnName)
		for _, value := range req.ColumnValues {
			query.Add("column_values", value)
		}
	}
	if req.OrderBy != "" {
		query.Set("order_by", string(req.OrderBy))
	}
	return query
}

func tokensAt(tokens []map[string]any, i int) map[string]any {
	if i < len(tokens) && len(tokens[i]) > 0 {
		return tokens[i]
	}
	return nil
}
