package factory

import (
	"fmt"

	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/core"
	"go.uber.org/zap"
)

// ClassifierFactory creates classifiers from the configured match policy
type ClassifierFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(cfg *config.Config, logger *zap.Logger) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateClassifier creates a classifier based on the configuration
func (f *ClassifierFactory) CreateClassifier() (*core.Classifier, error) {
	clsCfg := f.cfg.GetClassifier()

	switch clsCfg.MatchMode {
	case core.MatchSubstring, core.MatchToken:
	default:
		return nil, fmt.Errorf("unsupported match mode: %s", clsCfg.MatchMode)
	}

	switch clsCfg.GroupBy {
	case core.GroupByHost, core.GroupByRegistrable:
	default:
		return nil, fmt.Errorf("unsupported grouping: %s", clsCfg.GroupBy)
	}

	f.logger.Debug("Creating classifier",
		zap.String("match_mode", string(clsCfg.MatchMode)),
		zap.Bool("match_domain", clsCfg.MatchDomain),
		zap.String("group_by", string(clsCfg.GroupBy)))

	return core.NewClassifier(
		core.WithMatchMode(clsCfg.MatchMode),
		core.WithDomainMatching(clsCfg.MatchDomain),
		core.WithGrouping(clsCfg.GroupBy),
	), nil
}
