package di

import (
	"io"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/avana-extractor/internal/adapters/intake"
	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/factory"
)

// BuildCLIContainer creates and configures a dependency injection container for the CLI application.
// The CLI builds its own console logger from its flags; results are rendered to out.
func BuildCLIContainer(cfg *config.Config, logger *zap.Logger, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register configuration and logger
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() *zap.Logger { return logger }); err != nil {
		return nil, err
	}

	if err := provideCore(container); err != nil {
		return nil, err
	}

	// Register CLI intake
	if err := container.Provide(func(f *factory.IntakeFactory) *intake.CLIIntake {
		return f.CreateCLIIntake(out)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
