package application

import (
	"fmt"

	"orcascope/internal/domain"
)

// Re-export domain sentinels so adapters can test error conditions without
// importing domain directly.
var (
	ErrNotFound      = domain.ErrProfileNotFound
	ErrAmbiguousName = domain.ErrAmbiguousName
	ErrChainTooDeep  = domain.ErrChainTooDeep
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
