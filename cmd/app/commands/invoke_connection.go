package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/allisson/vaultclient"
)

// InvokeConnectionOptions holds the invoke-connection command flags.
type InvokeConnectionOptions struct {
	Method      string
	PathParams  []string
	QueryParams []string
	Headers     []string
	Body        string
	Form        bool
	Format      string
}

// RunInvokeConnection calls a connection and prints its decoded response.
func RunInvokeConnection(
	ctx context.Context,
	connection vaultclient.Connection,
	writer io.Writer,
	opts InvokeConnectionOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	req := &vaultclient.InvokeConnectionRequest{Method: vaultclient.Method(opts.Method)}
	var err error
	if req.PathParams, err = parseKeyValues("path-param", opts.PathParams); err != nil {
		return err
	}
	if req.QueryParams, err = parseKeyValues("query-param", opts.QueryParams); err != nil {
		return err
	}
	if req.Headers, err = parseKeyValues("header", opts.Headers); err != nil {
		return err
	}
	if req.Body, err = parseJSONObject("body", opts.Body); err != nil {
		return err
	}
	if opts.Form {
		req.ContentType = vaultclient.ContentTypeForm
	}

	resp, err := connection.Invoke(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to invoke connection: %w", err)
	}

	writeOutput(writer, opts.Format, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "request_id=%s\n", resp.RequestID)
		_, _ = fmt.Fprintf(w, "%v\n", resp.Data)
	})
	return nil
}
