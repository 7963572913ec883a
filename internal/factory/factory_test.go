package factory

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/mikey/avana-extractor/internal/adapters/keywords"
	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConfig() *config.Config {
	return config.NewFromViper(config.NewEmptyViper())
}

func TestCreateClassifier(t *testing.T) {
	cfg := newConfig()
	cfg.Set("classifier.match_mode", "token")
	f := NewClassifierFactory(cfg, zap.NewNop())

	c, err := f.CreateClassifier()
	require.NoError(t, err)
	result := c.Process([]string{"janecto@x.io", "cto.jane@x.io"}, []string{"cto"})
	assert.Equal(t, []string{"cto.jane@x.io"}, result.Domains[0].SelectedEmails)

	cfg.Set("classifier.match_mode", "fuzzy")
	_, err = f.CreateClassifier()
	assert.Error(t, err)

	cfg.Set("classifier.match_mode", "substring")
	cfg.Set("classifier.group_by", "tld")
	_, err = f.CreateClassifier()
	assert.Error(t, err)
}

func TestCreateKeywordRepository(t *testing.T) {
	cfg := newConfig()
	f := NewKeywordStoreFactory(cfg, zap.NewNop())

	repo, err := f.CreateKeywordRepository()
	require.NoError(t, err)
	assert.IsType(t, &keywords.MemoryStore{}, repo)

	cfg.Set("store.type", "sqlite")
	cfg.Set("store.sqlite_path", filepath.Join(t.TempDir(), "nested", "k.db"))
	repo, err = f.CreateKeywordRepository()
	require.NoError(t, err)
	require.IsType(t, &keywords.SQLiteStore{}, repo)
	repo.(*keywords.SQLiteStore).Stop()

	cfg.Set("store.type", "etcd")
	_, err = f.CreateKeywordRepository()
	assert.Error(t, err)
}

func TestIntakeFactory(t *testing.T) {
	cfg := newConfig()
	cfg.Set("output.format", "csv")
	logger := zap.NewNop()
	tp := NewTextProcessorFactory(logger).CreateTextProcessor()
	f := NewIntakeFactory(
		cfg,
		logger,
		core.NewExtractionService(nil, nil, logger),
		tp,
		profiles.NewResolver(nil, core.DefaultKeywords, logger),
	)

	var out bytes.Buffer
	cli := f.CreateCLIIntake(&out)
	_, err := cli.Process(context.Background(), []byte("vp@x.io"), core.DefaultKeywords)
	require.NoError(t, err)
	assert.Equal(t, "Domain,Email,Status\nx.io,vp@x.io,Match\n", out.String())

	smtpIntake, err := f.CreateSMTPIntake()
	require.NoError(t, err)
	assert.NotNil(t, smtpIntake)

	cfg.Set("server.write_timeout", "later")
	_, err = f.CreateSMTPIntake()
	assert.Error(t, err)
}
