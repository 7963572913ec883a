package core

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type suffixFilter string

func (f suffixFilter) IsExcluded(email string) bool {
	return strings.HasSuffix(email, string(f))
}

func TestExtractionServiceAnalyze(t *testing.T) {
	svc := NewExtractionService(nil, nil, zap.NewNop())
	result := svc.Analyze("ceo@acme.com, bob@acme.com, head@other.org", DefaultKeywords)

	require.Len(t, result.Domains, 2)
	assert.Equal(t, ProcessingStats{TotalEmailsFound: 3, TotalDomains: 2, TotalSelected: 2}, result.Stats)
}

func TestExtractionServiceExcludes(t *testing.T) {
	svc := NewExtractionService(NewClassifier(), suffixFilter("@gmail.com"), nil)
	result := svc.Analyze("founder@gmail.com founder@startup.io", []string{"founder"})

	require.Len(t, result.Domains, 1)
	assert.Equal(t, "startup.io", result.Domains[0].Domain)
	assert.Equal(t, 1, result.Stats.TotalEmailsFound)
}

func TestExtractionServiceConcurrentRuns(t *testing.T) {
	svc := NewExtractionService(nil, nil, nil)

	var wg sync.WaitGroup
	results := make([]*Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := fmt.Sprintf("ceo@acme%d.com bob@acme%d.com", i, i)
			results[i] = svc.Analyze(text, []string{"ceo"})
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.Len(t, r.Domains, 1)
		assert.Equal(t, fmt.Sprintf("acme%d.com", i), r.Domains[0].Domain)
		assert.Equal(t, 1, r.Stats.TotalSelected)
	}
}
