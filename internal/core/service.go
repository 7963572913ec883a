package core

import (
	"time"

	"go.uber.org/zap"
)

// ExtractionService runs the extract and classify pipeline for a caller
type ExtractionService struct {
	classifier *Classifier
	filter     DomainFilter
	logger     *zap.Logger
}

// NewExtractionService creates a new extraction service. filter may be nil.
func NewExtractionService(
	classifier *Classifier,
	filter DomainFilter,
	logger *zap.Logger,
) *ExtractionService {
	if classifier == nil {
		classifier = NewClassifier()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractionService{
		classifier: classifier,
		filter:     filter,
		logger:     logger,
	}
}

// Analyze extracts the addresses in text and classifies them against keywords.
// keywords is copied before use so callers may keep editing their list.
func (s *ExtractionService) Analyze(text string, keywords []string) *Result {
	snapshot := make([]string, len(keywords))
	copy(snapshot, keywords)

	startTime := time.Now()

	emails := ExtractEmails(text)
	found := len(emails)
	if s.filter != nil {
		kept := emails[:0]
		for _, email := range emails {
			if s.filter.IsExcluded(email) {
				s.logger.Debug("Skipping excluded address", zap.String("email", email))
				continue
			}
			kept = append(kept, email)
		}
		emails = kept
	}

	result := s.classifier.Process(emails, snapshot)

	s.logger.Info("Processed email list",
		zap.Int("input_bytes", len(text)),
		zap.Int("matched", found),
		zap.Int("excluded", found-len(emails)),
		zap.Int("total_emails", result.Stats.TotalEmailsFound),
		zap.Int("total_domains", result.Stats.TotalDomains),
		zap.Int("total_selected", result.Stats.TotalSelected),
		zap.Duration("duration", time.Since(startTime)))

	return result
}
