package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/vaultclient"
)

// InsertOptions holds the insert command flags.
type InsertOptions struct {
	Table           string
	Values          string
	Upsert          string
	ReturnTokens    bool
	ContinueOnError bool
	Format          string
}

// RunInsert inserts the records given as a JSON array. With ContinueOnError the
// successful records are printed even when some failed.
func RunInsert(
	ctx context.Context,
	vault vaultclient.Vault,
	logger *slog.Logger,
	writer io.Writer,
	opts InsertOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	values, err := parseJSONObjects("values", opts.Values)
	if err != nil {
		return err
	}

	logger.Info("inserting records", slog.String("table", opts.Table), slog.Int("count", len(values)))

	resp, err := vault.Insert(ctx, &vaultclient.InsertRequest{
		Table:           opts.Table,
		Values:          values,
		Upsert:          opts.Upsert,
		ReturnTokens:    opts.ReturnTokens,
		ContinueOnError: opts.ContinueOnError,
	})
	if err != nil && (resp == nil || !errors.Is(err, vaultclient.ErrPartialBatch)) {
		return fmt.Errorf("failed to insert records: %w", err)
	}

	writeOutput(writer, opts.Format, resp, func(w io.Writer) {
		writeRecords(w, resp.InsertedFields)
		writeRecordErrors(w, resp.Errors)
	})
	return err
}

// GetOptions holds the get command flags.
type GetOptions struct {
	Table         string
	IDs           []string
	ColumnName    string
	ColumnValues  []string
	Fields        []string
	RedactionType string
	ReturnTokens  bool
	Offset        int
	Limit         int
	Format        string
}

// RunGet reads records by id or by a unique column.
func RunGet(ctx context.Context, vault vaultclient.Vault, writer io.Writer, opts GetOptions) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	resp, err := vault.Get(ctx, &vaultclient.GetRequest{
		Table:         opts.Table,
		IDs:           opts.IDs,
		ColumnName:    opts.ColumnName,
		ColumnValues:  opts.ColumnValues,
		Fields:        opts.Fields,
		RedactionType: vaultclient.RedactionType(opts.RedactionType),
		ReturnTokens:  opts.ReturnTokens,
		Offset:        opts.Offset,
		Limit:         opts.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to get records: %w", err)
	}

	writeOutput(writer, opts.Format, resp, func(w io.Writer) {
		writeRecords(w, resp.Data)
	})
	return nil
}

// RunUpdate updates the record whose skyflow_id is given by id with the JSON object data.
func RunUpdate(
	ctx context.Context,
	vault vaultclient.Vault,
	writer io.Writer,
	table, id, data string,
	returnTokens bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	fields, err := parseJSONObject("data", data)
	if err != nil {
		return err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	fields["skyflow_id"] = id

	resp, err := vault.Update(ctx, &vaultclient.UpdateRequest{
		Table:        table,
		Data:         fields,
		ReturnTokens: returnTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	writeOutput(writer, format, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Updated record %s\n", resp.SkyflowID)
		if len(resp.Tokens) > 0 {
			writeRecords(w, []map[string]any{resp.Tokens})
		}
	})
	return nil
}

// RunDelete deletes records by id.
func RunDelete(ctx context.Context, vault vaultclient.Vault, writer io.Writer, table string, ids []string, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	resp, err := vault.Delete(ctx, &vaultclient.DeleteRequest{Table: table, IDs: ids})
	if err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}

	writeOutput(writer, format, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Deleted %d record(s)\n", len(resp.DeletedIDs))
		for _, id := range resp.DeletedIDs {
			_, _ = fmt.Fprintln(w, id)
		}
	})
	return nil
}

// RunQuery runs a SQL query.
func RunQuery(ctx context.Context, vault vaultclient.Vault, writer io.Writer, query, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	resp, err := vault.Query(ctx, &vaultclient.QueryRequest{Query: query})
	if err != nil {
		return fmt.Errorf("failed to run query: %w", err)
	}

	writeOutput(writer, format, resp, func(w io.Writer) {
		writeRecords(w, resp.Fields)
	})
	return nil
}

func writeRecordErrors(w io.Writer, failures []vaultclient.RecordError) {
	for _, failure := range failures {
		target := fmt.Sprintf("record %d", failure.Index)
		if failure.Token != "" {
			target = "token " + failure.Token
		}
		_, _ = fmt.Fprintf(w, "error: %s: %s (http %d)\n", target, failure.Error, failure.HTTPCode)
	}
}
