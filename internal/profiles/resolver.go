package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikey/avana-extractor/internal/adapters/keywords"
	"github.com/mikey/avana-extractor/internal/core"
	"go.uber.org/zap"
)

// Resolver picks the keyword list for a run
type Resolver struct {
	repo     core.KeywordRepository
	defaults []string
	logger   *zap.Logger
}

// NewResolver creates a resolver backed by repo, falling back to defaults
func NewResolver(repo core.KeywordRepository, defaults []string, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := make([]string, len(defaults))
	copy(d, defaults)
	return &Resolver{
		repo:     repo,
		defaults: d,
		logger:   logger,
	}
}

// Resolve returns a fresh copy of the keywords to use.
// An explicit override wins, then the named profile, then the defaults.
func (r *Resolver) Resolve(ctx context.Context, override []string, profile string) ([]string, error) {
	if override != nil {
		return core.NormalizeKeywords(override), nil
	}

	if profile != "" {
		if r.repo == nil {
			return nil, fmt.Errorf("keyword profile %q requested but no store is configured", profile)
		}
		cfg, err := r.repo.Get(ctx, profile)
		if err != nil {
			if errors.Is(err, keywords.ErrNotFound) {
				return nil, fmt.Errorf("keyword profile %q: %w", profile, err)
			}
			return nil, fmt.Errorf("failed to load keyword profile %q: %w", profile, err)
		}
		r.logger.Debug("Using keyword profile",
			zap.String("profile", profile),
			zap.Strings("keywords", cfg.Keywords))
		return core.NormalizeKeywords(cfg.Keywords), nil
	}

	return core.NormalizeKeywords(r.defaults), nil
}
