package ports

import "orcascope/internal/domain"

// ProfileRepository defines the interface for loading profile records from a
// two-scope store. Records are immutable after load; per-file failures are
// returned as warnings, never as fatal errors.
type ProfileRepository interface {
	// RootDir returns the expanded store root.
	RootDir() string

	// LoadAll loads every profile under system/ and user/.
	LoadAll() ([]*domain.Profile, []error, error)

	// LoadCategories loads only profiles of the given categories.
	LoadCategories(categories []domain.Category) ([]*domain.Profile, []error, error)
}
