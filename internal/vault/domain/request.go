package domain

import "io"

// InsertRequest inserts records into a table. Tokens pairs with Values by index and
// is only allowed when TokenMode is ENABLE or ENABLE_STRICT.
type InsertRequest struct {
	Table           string
	Values          []map[string]any
	Tokens          []map[string]any
	Upsert          string
	Homogeneous     bool
	ReturnTokens    bool
	TokenMode       TokenMode
	ContinueOnError bool
}

// GetRequest reads records by skyflow id or by a unique column.
type GetRequest struct {
	Table         string
	IDs           []string
	RedactionType RedactionType
	ReturnTokens  bool
	Fields        []string
	Offset        int
	Limit         int
	DownloadURL   bool
	ColumnName    string
	ColumnValues  []string
	OrderBy       OrderBy
}

// UpdateRequest updates one record. Data must carry the skyflow_id of the record.
type UpdateRequest struct {
	Table        string
	Data         map[string]any
	Tokens       map[string]any
	ReturnTokens bool
	TokenMode    TokenMode
}

// ID returns the skyflow id carried by Data.
func (r *UpdateRequest) ID() string {
	id, _ := r.Data[SkyflowIDField].(string)
	return id
}

// DeleteRequest deletes records by skyflow id.
type DeleteRequest struct {
	Table string
	IDs   []string
}

// QueryRequest runs a SQL query against the vault.
type QueryRequest struct {
	Query string
}

// ColumnValue is a value to tokenize with its column group.
type ColumnValue struct {
	Value       any
	ColumnGroup string
}

// TokenizeRequest tokenizes values without storing records.
type TokenizeRequest struct {
	Values []ColumnValue
}

// DetokenizeData is one token to reveal. An empty RedactionType reveals plain text.
type DetokenizeData struct {
	Token         string
	RedactionType RedactionType
}

// DetokenizeRequest reveals tokens.
type DetokenizeRequest struct {
	Data            []DetokenizeData
	ContinueOnError bool
	DownloadURL     bool
}

// FileUploadRequest uploads a file into a file column of an existing record. Exactly
// one of FilePath, Base64 and File is set; FileName is required for Base64 and File.
type FileUploadRequest struct {
	Table      string
	SkyflowID  string
	ColumnName string
	FilePath   string
	Base64     string
	File       io.Reader
	FileName   string
}
