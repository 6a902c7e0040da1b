package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/allisson/vaultclient"
)

// RunTokenize tokenizes each value with the same column group.
func RunTokenize(
	ctx context.Context,
	vault vaultclient.Vault,
	writer io.Writer,
	values []string,
	columnGroup, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	columnValues := make([]vaultclient.ColumnValue, 0, len(values))
	for _, value := range values {
		columnValues = append(columnValues, vaultclient.ColumnValue{Value: value, ColumnGroup: columnGroup})
	}

	resp, err := vault.Tokenize(ctx, &vaultclient.TokenizeRequest{Values: columnValues})
	if err != nil {
		return fmt.Errorf("failed to tokenize values: %w", err)
	}

	writeOutput(writer, format, resp, func(w io.Writer) {
		for _, token := range resp.Tokens {
			_, _ = fmt.Fprintln(w, token)
		}
	})
	return nil
}

// RunDetokenize reveals each token with the same redaction type.
func RunDetokenize(
	ctx context.Context,
	vault vaultclient.Vault,
	writer io.Writer,
	tokens []string,
	redaction string,
	continueOnError bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	data := make([]vaultclient.DetokenizeData, 0, len(tokens))
	for _, token := range tokens {
		data = append(data, vaultclient.DetokenizeData{
			Token:         token,
			RedactionType: vaultclient.RedactionType(redaction),
		})
	}

	resp, err := vault.Detokenize(ctx, &vaultclient.DetokenizeRequest{
		Data:            data,
		ContinueOnError: continueOnError,
	})
	if err != nil && (resp == nil || !errors.Is(err, vaultclient.ErrPartialBatch)) {
		return fmt.Errorf("failed to detokenize tokens: %w", err)
	}

	writeOutput(writer, format, resp, func(w io.Writer) {
		for _, field := range resp.DetokenizedFields {
			_, _ = fmt.Fprintf(w, "%s=%v\n", field.Token, field.Value)
		}
		writeRecordErrors(w, resp.Errors)
	})
	return err
}
