package commands

import (
	"fmt"
	"io"

	"github.com/allisson/vaultclient/internal/app"
)

// RunPrintMetrics writes the metrics collected by the container in the Prometheus
// text format. It writes nothing when metrics are disabled.
func RunPrintMetrics(container *app.Container, writer io.Writer) error {
	if !container.Config().MetricsEnabled {
		return nil
	}

	provider, err := container.MetricsProvider()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics provider: %w", err)
	}
	return provider.WriteText(writer)
}
