package dto

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	apperrors "github.com/allisson/vaultclient/internal/errors"
	vaultDomain "github.com/allisson/vaultclient/internal/vault/domain"
)

// MapFileUploadRequest renders the multipart body of a file upload. The file is sent
// under the column name as the form field.
func MapFileUploadRequest(req *vaultDomain.FileUploadRequest) ([]byte, string, error) {
	content, name, err := fileSource(req)
	if err != nil {
		return nil, "", err
	}
	if closer, ok := content.(io.Closer); ok && req.File == nil {
		defer func() { _ = closer.Close() }()
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(req.ColumnName, name)
	if err != nil {
		return nil, "", apperrors.Wrap(err, "failed to create multipart field")
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, "", apperrors.InvalidInput(vaultDomain.CodeFileNotFound,
			"unable to read file content").WithCause(err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", apperrors.Wrap(err, "failed to finish multipart body")
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

func fileSource(req *vaultDomain.FileUploadRequest) (io.Reader, string, error) {
	switch {
	case req.FilePath != "":
		file, err := os.Open(req.FilePath)
		if err != nil {
			return nil, "", apperrors.InvalidInput(vaultDomain.CodeFileNotFound,
				"file %q does not exist", req.FilePath).WithCause(err)
		}
		name := req.FileName
		if name == "" {
			name = filepath.Base(req.FilePath)
		}
		return file, name, nil
	case req.Base64 != "":
		decoded, err := base64.StdEncoding.DecodeString(req.Base64)
		if err != nil {
			return nil, "", apperrors.InvalidInput(vaultDomain.CodeInvalidBase64,
				"base64 content is not valid base64").WithCause(err)
		}
		return bytes.NewReader(decoded), req.FileName, nil
	case req.File != nil:
		return req.File, req.FileName, nil
	default:
		return nil, "", apperrors.InvalidInput(vaultDomain.CodeMissingFileSource, "no file source set")
	}
}
