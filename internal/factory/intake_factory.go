package factory

import (
	"io"

	"github.com/mikey/avana-extractor/internal/adapters/intake"
	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/profiles"
	"github.com/mikey/avana-extractor/internal/utils"
	"go.uber.org/zap"
)

// IntakeFactory creates the presentation intakes that drive the core
type IntakeFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	service       *core.ExtractionService
	textProcessor *utils.TextProcessor
	resolver      *profiles.Resolver
}

// NewIntakeFactory creates a new intake factory
func NewIntakeFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.ExtractionService,
	textProcessor *utils.TextProcessor,
	resolver *profiles.Resolver,
) *IntakeFactory {
	return &IntakeFactory{
		cfg:           cfg,
		logger:        logger,
		service:       service,
		textProcessor: textProcessor,
		resolver:      resolver,
	}
}

// CreateCLIIntake creates an intake that renders results to out
func (f *IntakeFactory) CreateCLIIntake(out io.Writer) *intake.CLIIntake {
	ext := f.cfg.GetExtraction()
	output := f.cfg.GetOutput()

	return intake.NewCLIIntake(f.service, f.textProcessor, f.logger, intake.CLIOptions{
		Out:           out,
		Format:        output.Format,
		ShortlistSize: output.ShortlistSize,
		Charset:       ext.Charset,
		MaxInputSize:  ext.MaxInputSize,
	})
}

// CreateSMTPIntake creates the SMTP listener intake
func (f *IntakeFactory) CreateSMTPIntake() (*intake.SMTPIntake, error) {
	serverCfg, err := f.cfg.GetServer()
	if err != nil {
		return nil, err
	}
	ext := f.cfg.GetExtraction()

	return intake.NewSMTPIntake(
		f.service,
		f.textProcessor,
		f.resolver,
		f.logger,
		serverCfg,
		ext.Profile,
		ext.MaxInputSize,
	), nil
}
