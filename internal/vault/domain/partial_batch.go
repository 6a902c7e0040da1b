package domain

import (
	"fmt"

	"github.com/allisson/vaultclient/internal/errors"
)

// PartialBatchError reports a batch operation where some items failed. Batches are not
// atomic: Succeeded lists what was applied and must be inspected alongside Failures.
type PartialBatchError struct {
	Operation string
	Succeeded []map[string]any
	Failures  []RecordError
}

// Error summarises the batch outcome.
func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("%s: %d of %d items failed",
		e.Operation, len(e.Failures), len(e.Failures)+len(e.Succeeded))
}

// Unwrap returns errors.ErrPartialBatch.
func (e *PartialBatchError) Unwrap() error {
	return errors.ErrPartialBatch
}

// ErrorCode returns errors.CodePartialBatch.
func (e *PartialBatchError) ErrorCode() errors.Code {
	return errors.CodePartialBatch
}
