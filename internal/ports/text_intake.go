package ports

import (
	"context"

	"github.com/mikey/avana-extractor/internal/core"
)

// TextIntake defines a presentation surface that feeds raw input to the extraction core
type TextIntake interface {
	// Process runs one extraction over raw input with a keyword snapshot
	Process(ctx context.Context, raw []byte, keywords []string) (*core.Result, error)

	// Start starts the intake
	Start() error

	// Stop stops the intake
	Stop() error
}
