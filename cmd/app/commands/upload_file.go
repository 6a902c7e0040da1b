package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/allisson/vaultclient"
)

// RunUploadFile uploads the file at path into a file column of an existing record.
func RunUploadFile(
	ctx context.Context,
	vault vaultclient.Vault,
	writer io.Writer,
	table, id, column, path, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	resp, err := vault.UploadFile(ctx, &vaultclient.FileUploadRequest{
		Table:      table,
		SkyflowID:  id,
		ColumnName: column,
		FilePath:   path,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	writeOutput(writer, format, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Uploaded %s to record %s\n", path, resp.SkyflowID)
	})
	return nil
}
