package intake

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/export"
	"github.com/mikey/avana-extractor/internal/utils"
	"go.uber.org/zap"
)

// CLIIntake runs extractions over pasted text and renders the result
type CLIIntake struct {
	service       *core.ExtractionService
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	tracker       *Tracker
	out           io.Writer
	format        string
	shortlistSize int
	charset       string
	maxInputSize  int
}

// CLIOptions configures a CLIIntake
type CLIOptions struct {
	Out           io.Writer
	Format        string
	ShortlistSize int
	Charset       string
	MaxInputSize  int
}

// NewCLIIntake creates a new CLI intake
func NewCLIIntake(
	service *core.ExtractionService,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	opts CLIOptions,
) *CLIIntake {
	return &CLIIntake{
		service:       service,
		textProcessor: textProcessor,
		logger:        logger,
		tracker:       NewTracker(logger),
		out:           opts.Out,
		format:        opts.Format,
		shortlistSize: opts.ShortlistSize,
		charset:       opts.Charset,
		maxInputSize:  opts.MaxInputSize,
	}
}

// Process decodes raw, runs the extraction and renders the result
func (f *CLIIntake) Process(ctx context.Context, raw []byte, keywords []string) (*core.Result, error) {
	f.tracker.Transition(StateAnalyzing)

	text, err := f.textProcessor.Decode(raw, f.charset)
	if err != nil {
		f.tracker.Transition(StateError)
		return nil, err
	}
	text = f.textProcessor.ProcessText(text, f.maxInputSize)

	startTime := time.Now()
	result := f.service.Analyze(text, keywords)
	f.logger.Debug("Extraction finished",
		zap.Strings("keywords", keywords),
		zap.Duration("duration", time.Since(startTime)))

	if err := export.Render(f.out, f.format, result, f.shortlistSize); err != nil {
		f.tracker.Transition(StateError)
		return nil, fmt.Errorf("failed to render result: %w", err)
	}

	f.tracker.Transition(StateComplete)
	return result, nil
}

// State returns the state of the last run
func (f *CLIIntake) State() State {
	return f.tracker.State()
}

// Start is a no-op for the CLI intake
func (f *CLIIntake) Start() error {
	return nil
}

// Stop is a no-op for the CLI intake
func (f *CLIIntake) Stop() error {
	return nil
}
