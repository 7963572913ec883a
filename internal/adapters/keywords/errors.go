package keywords

import (
	"errors"
	"strings"
	"time"

	"github.com/mikey/avana-extractor/internal/core"
)

var (
	// ErrNotFound is returned when a keyword profile does not exist
	ErrNotFound = errors.New("keyword profile not found")
	// ErrInvalidName is returned when a profile name is empty
	ErrInvalidName = errors.New("keyword profile name is empty")
)

// prepare normalizes a profile before it is stored
func prepare(profile *core.RoleConfig) (*core.RoleConfig, error) {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	updatedAt := profile.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	return &core.RoleConfig{
		Name:      name,
		Keywords:  core.NormalizeKeywords(profile.Keywords),
		UpdatedAt: updatedAt,
	}, nil
}
