package domain

// RecordError is the failure of one item of a batch operation.
type RecordError struct {
	Index     int
	Token     string
	Error     string
	HTTPCode  int
	RequestID string
}

// InsertResponse holds the inserted records and, when ContinueOnError was set, the
// records that failed.
type InsertResponse struct {
	InsertedFields []map[string]any
	Errors         []RecordError
}

// GetResponse holds the records read.
type GetResponse struct {
	Data []map[string]any
}

// UpdateResponse holds the updated record.
type UpdateResponse struct {
	SkyflowID string
	Tokens    map[string]any
}

// DeleteResponse holds the deleted ids.
type DeleteResponse struct {
	DeletedIDs []string
}

// QueryResponse holds the records matched by the query.
type QueryResponse struct {
	Fields []map[string]any
}

// TokenizeResponse holds one token per requested value, in order.
type TokenizeResponse struct {
	Tokens []string
}

// DetokenizedField is one revealed token.
type DetokenizedField struct {
	Token     string
	Value     any
	ValueType string
}

// DetokenizeResponse holds the revealed tokens and the tokens that failed.
type DetokenizeResponse struct {
	DetokenizedFields []DetokenizedField
	Errors            []RecordError
}

// FileUploadResponse holds the id of the record that received the file.
type FileUploadResponse struct {
	SkyflowID string
}
