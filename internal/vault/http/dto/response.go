package dto

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// RequestIndexField is added to every inserted record to tie it to its input index.
const RequestIndexField = "request_index"

type recordIDResponse struct {
	SkyflowID string         `json:"skyflow_id"`
	Tokens    map[string]any `json:"tokens"`
}

type recordsResponse struct {
	Records []recordIDResponse `json:"records"`
}

type fieldsResponse struct {
	Records []struct {
		Fields map[string]any `json:"fields"`
		Tokens map[string]any `json:"tokens"`
	} `json:"records"`
}

type deleteResponse struct {
	RecordIDResponse []string `json:"RecordIDResponse"`
}

type tokenizeResponse struct {
	Records []struct {
		Token string `json:"token"`
	} `json:"records"`
}

type detokenizeResponse struct {
	Records []struct {
		Token     string `json:"token"`
		ValueType string `json:"valueType"`
		Value     any    `json:"value"`
		Error     string `json:"error"`
	} `json:"records"`
}

func decode(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return apperrors.NewCoded(apperrors.ErrTransport, vaultDomain.CodeInvalidResponse,
			"unable to decode vault response").WithCause(err)
	}
	return nil
}

func insertedRecord(index int, record recordIDResponse) map[string]any {
	out := make(map[string]any, len(record.Tokens)+2)
	for k, v := range record.Tokens {
		out[k] = v
	}
	out[vaultDomain.SkyflowIDField] = record.SkyflowID
	out[RequestIndexField] = index
	return out
}

// MapInsertResponse maps a single-table insert response.
func MapInsertResponse(body []byte) (*vaultDomain.InsertResponse, error) {
	var wire recordsResponse
	if err := decode(body, &wire); err != nil {
		return nil, err
	}
	inserted := make([]map[string]any, 0, len(wire.Records))
	for i, record := range wire.Records {
		inserted = append(inserted, insertedRecord(i, record))
	}
	return &vaultDomain.InsertResponse{InsertedFields: inserted}, nil
}

// MapBatchInsertResponse maps a batch insert response. Each sub-response carries its
// own status; failed ones become RecordErrors tagged with requestID.
func MapBatchInsertResponse(body []byte, requestID string) (*vaultDomain.InsertResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperrors.NewCoded(apperrors.ErrTransport, vaultDomain.CodeInvalidResponse,
			"unable to decode vault batch response")
	}

	resp := &vaultDomain.InsertResponse{InsertedFields: []map[string]any{}}
	for index, value := range gjson.GetBytes(body, "responses").Array() {
		status := int(value.Get("Status").Int())
		if status >= 200 && status < 300 {
			record := recordIDResponse{
				SkyflowID: value.Get("Body.records.0.skyflow_id").String(),
			}
			if tokens, ok := value.Get("Body.records.0.tokens").Value().(map[string]any); ok {
				record.Tokens = tokens
			}
			resp.InsertedFields = append(resp.InsertedFields, insertedRecord(index, record))
			continue
		}

		message := value.Get("Body.error").String()
		if msg := value.Get("Body.error.message"); msg.Exists() {
			message = msg.String()
		}
		resp.Errors = append(resp.Errors, vaultDomain.RecordError{
			Index:     index,
			Error:     message,
			HTTPCode:  status,
			RequestID: requestID,
		})
	}
	return resp, nil
}

// MapRecordsResponse maps get and query responses to their field maps. Returned
// tokens are merged into the fields.
func MapRecordsResponse(body []byte) ([]map[string]any, error) {
	var wire fieldsResponse
	if err := decode(body, &wire); err != nil {
		return nil, err
	}
	records := make([]map[string]any, 0, len(wire.Records))
	for _, record := range wire.Records {
		fields := make(map[string]any, len(record.Fields)+len(record.Tokens))
		for k, v := range record.Fields {
			fields[k] = v
		}
		for k, v := range record.Tokens {
			fields[k] = v
		}
		records = append(records, fields)
	}
	return records, nil
}

// MapUpdateResponse maps an update response.
func MapUpdateResponse(body []byte) (*vaultDomain.UpdateResponse, error) {
	var wire recordIDResponse
	if err := decode(body, &wire); err != nil {
		return nil, err
	}
	return &vaultDomain.UpdateResponse{SkyflowID: wire.SkyflowID, Tokens: wire.Tokens}, nil
}

// MapDeleteResponse maps a delete response.
func MapDeleteResponse(body []byte) (*vaultDomain.DeleteResponse, error) {
	var wire deleteResponse
	if err := decode(body, &wire); err != nil {
		return nil, err
	}
	return &vaultDomain.DeleteResponse{DeletedIDs: wire.RecordIDResponse}, nil
}

// MapTokenizeResponse maps a tokenize response.
func MapTokenizeResponse(body []byte) (*vaultDomain.TokenizeResponse, error) {
	var wire tokenizeResponse
	if err := decode(body, &wire); err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(wire.Records))
	for _, record := range wire.Records {
		tokens = append(tokens, record.Token)
	}
	return &vaultDomain.TokenizeResponse{Tokens: tokens}, nil
}

// MapDetokenizeResponse maps a detokenize response. Records carrying an error become
// RecordErrors tagged with requestID.
func MapDetokenizeResponse(body []byte, requestID string) (*vaultDomain.DetokenizeResponse, error) {
	var wire detokenizeResponse
	if err := decode(body, &wire); err != nil {
		return nil, err
	}
	resp := &vaultDomain.DetokenizeResponse{DetokenizedFields: []vaultDomain.DetokenizedField{}}
	for i, record := range wire.Records {
		if record.Error != "" {
			resp.Errors = append(resp.Errors, vaultDomain.RecordError{
				Index:     i,
				Token:     record.Token,
				Error:     record.Error,
				RequestID: requestID,
			})
			continue
		}
		resp.DetokenizedFields = append(resp.DetokenizedFields, vaultDomain.DetokenizedField{
			Token:     record.Token,
			Value:     record.Value,
			ValueType: record.ValueType,
		})
	}
	return resp, nil
}

// MapFileUploadResponse maps a file upload response.
func MapFileUploadResponse(body []byte) (*vaultDomain.FileUploadResponse, error) {
	var wire recordIDResponse
	if err := decode(body, &wire); err != nil {
		return nil, err
	}
	return &vaultDomain.FileUploadResponse{SkyflowID: wire.SkyflowID}, nil
}
