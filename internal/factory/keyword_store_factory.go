package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/avana-extractor/internal/adapters/keywords"
	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/core"
	"go.uber.org/zap"
)

// KeywordStoreFactory creates keyword profile repositories based on configuration
type KeywordStoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewKeywordStoreFactory creates a new keyword store factory
func NewKeywordStoreFactory(cfg *config.Config, logger *zap.Logger) *KeywordStoreFactory {
	return &KeywordStoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateKeywordRepository creates a keyword repository based on the configuration
func (f *KeywordStoreFactory) CreateKeywordRepository() (core.KeywordRepository, error) {
	storeCfg := f.cfg.GetStore()

	switch storeCfg.Type {
	case "memory":
		return keywords.NewMemoryStore(f.logger), nil
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(storeCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		store, err := keywords.NewSQLiteStore(storeCfg.SQLitePath, f.logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "mysql":
		store, err := keywords.NewMySQLStore(storeCfg.MySQLDSN, f.logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", storeCfg.Type)
	}
}
