package registry

import (
	apperrors "github.com/allisson/vaultclient/internal/errors"
)

// Registry codes.
const (
	CodeDuplicateConfig apperrors.Code = "DuplicateConfig"
	CodeConfigNotFound  apperrors.Code = "ConfigNotFound"
)

func duplicateConfig(kind, id string) error {
	return apperrors.NewCoded(apperrors.ErrConflict, CodeDuplicateConfig,
		"%s config with id %q already exists", kind, id)
}

func configNotFound(kind, id string) error {
	if id == "" {
		return apperrors.NewCoded(apperrors.ErrNotFound, CodeConfigNotFound, "no %s config registered", kind)
	}
	return apperrors.NewCoded(apperrors.ErrNotFound, CodeConfigNotFound,
		"%s config with id %q not found", kind, id)
}
