package core

import (
	"context"
)

// KeywordRepository stores named keyword profiles
type KeywordRepository interface {
	// Get retrieves a profile by name
	Get(ctx context.Context, name string) (*RoleConfig, error)

	// Save creates or replaces a profile
	Save(ctx context.Context, profile *RoleConfig) error

	// Delete removes a profile
	Delete(ctx context.Context, name string) error

	// List returns all profile names in alphabetical order
	List(ctx context.Context) ([]string, error)
}

// DomainFilter decides whether an address is left out of a run
type DomainFilter interface {
	IsExcluded(email string) bool
}
