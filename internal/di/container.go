package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/exclusion"
	"github.com/mikey/avana-extractor/internal/factory"
	"github.com/mikey/avana-extractor/internal/logging"
	"github.com/mikey/avana-extractor/internal/ports"
	"github.com/mikey/avana-extractor/internal/profiles"
	"github.com/mikey/avana-extractor/internal/utils"
)

// BuildContainer creates and configures a dependency injection container for the SMTP intake daemon
func BuildContainer(cfg *config.Config) (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := provideCore(container); err != nil {
		return nil, err
	}

	// Register SMTP intake
	if err := container.Provide(func(f *factory.IntakeFactory) (ports.TextIntake, error) {
		smtpIntake, err := f.CreateSMTPIntake()
		if err != nil {
			return nil, err
		}
		return smtpIntake, nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// provideCore registers everything shared by the daemon and the CLI.
// The container must already provide *config.Config and *zap.Logger.
func provideCore(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewKeywordStoreFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewIntakeFactory); err != nil {
		return err
	}

	// Register classifier
	if err := container.Provide(func(f *factory.ClassifierFactory) (*core.Classifier, error) {
		return f.CreateClassifier()
	}); err != nil {
		return err
	}

	// Register keyword repository
	if err := container.Provide(func(f *factory.KeywordStoreFactory) (core.KeywordRepository, error) {
		return f.CreateKeywordRepository()
	}); err != nil {
		return err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register excluded domains
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.DomainFilter {
		return exclusion.NewChecker(cfg.GetExtraction().ExcludedDomains, logger)
	}); err != nil {
		return err
	}

	// Register keyword resolver
	if err := container.Provide(func(repo core.KeywordRepository, cfg *config.Config, logger *zap.Logger) *profiles.Resolver {
		return profiles.NewResolver(repo, cfg.GetExtraction().Keywords, logger)
	}); err != nil {
		return err
	}

	// Register extraction service
	if err := container.Provide(core.NewExtractionService); err != nil {
		return err
	}

	return nil
}
