package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEmailListScenario(t *testing.T) {
	emails := ExtractEmails("Contact Jane (jane.CTO@Acme.com), Bob <bob@acme.com>, jane.cto@acme.com again")
	result := ProcessEmailList(emails, []string{"cto"})

	require.Len(t, result.Domains, 1)
	d := result.Domains[0]
	assert.Equal(t, "acme.com", d.Domain)
	assert.Equal(t, []string{"jane.cto@acme.com", "bob@acme.com"}, d.Emails)
	assert.Equal(t, []string{"jane.cto@acme.com"}, d.SelectedEmails)
	assert.Equal(t, 1, d.MatchCount)
	assert.Equal(t, ProcessingStats{TotalEmailsFound: 2, TotalDomains: 1, TotalSelected: 1}, result.Stats)
}

func TestProcessEmailListEmptyKeywords(t *testing.T) {
	emails := []string{"ceo@a.com", "bob@b.com", "cfo@a.com"}
	result := ProcessEmailList(emails, nil)

	require.Len(t, result.Domains, 2)
	for _, d := range result.Domains {
		assert.Equal(t, 0, d.MatchCount)
		assert.Empty(t, d.SelectedEmails)
	}
	assert.Equal(t, 0, result.Stats.TotalSelected)
	assert.Equal(t, 2, result.Stats.TotalDomains)
	assert.Equal(t, 3, result.Stats.TotalEmailsFound)
}

func TestProcessEmailListEmptyInput(t *testing.T) {
	result := ProcessEmailList(nil, DefaultKeywords)
	assert.Empty(t, result.Domains)
	assert.NotNil(t, result.Domains)
	assert.Equal(t, ProcessingStats{}, result.Stats)
}

func TestProcessEmailListOrdering(t *testing.T) {
	emails := []string{"b@zeta.io", "a@alpha.io", "c@zeta.io", "d@alpha.io"}
	result := ProcessEmailList(emails, nil)

	require.Len(t, result.Domains, 2)
	assert.Equal(t, "zeta.io", result.Domains[0].Domain)
	assert.Equal(t, []string{"b@zeta.io", "c@zeta.io"}, result.Domains[0].Emails)
	assert.Equal(t, "alpha.io", result.Domains[1].Domain)
	assert.Equal(t, []string{"a@alpha.io", "d@alpha.io"}, result.Domains[1].Emails)
}

func TestProcessEmailListSubstringMatch(t *testing.T) {
	emails := []string{"janecto@x.com", "cto.jane@x.com", "jane@cto.com", "bob@x.com"}
	result := ProcessEmailList(emails, []string{"CTO", "cto", "  ", ""})

	require.Len(t, result.Domains, 2)
	assert.Equal(t, []string{"janecto@x.com", "cto.jane@x.com"}, result.Domains[0].SelectedEmails)
	// the domain part is never matched by default
	assert.Empty(t, result.Domains[1].SelectedEmails)
	assert.Equal(t, 2, result.Stats.TotalSelected)
}

func TestClassifierTokenMode(t *testing.T) {
	c := NewClassifier(WithMatchMode(MatchToken))
	emails := []string{"janecto@x.com", "cto.jane@x.com", "jane_cto2@x.com", "lead-dev@x.com"}
	result := c.Process(emails, []string{"cto", "lead"})

	require.Len(t, result.Domains, 1)
	assert.Equal(t, []string{"cto.jane@x.com", "jane_cto2@x.com", "lead-dev@x.com"}, result.Domains[0].SelectedEmails)
}

func TestClassifierDomainMatching(t *testing.T) {
	c := NewClassifier(WithDomainMatching(true))
	result := c.Process([]string{"jane@founders.vc", "bob@x.com"}, []string{"founder"})

	require.Len(t, result.Domains, 2)
	assert.Equal(t, []string{"jane@founders.vc"}, result.Domains[0].SelectedEmails)
	assert.Equal(t, 1, result.Stats.TotalSelected)
}

func TestClassifierRegistrableGrouping(t *testing.T) {
	c := NewClassifier(WithGrouping(GroupByRegistrable))
	emails := []string{"a@mail.acme.co.uk", "b@acme.co.uk", "c@eu.acme.co.uk", "d@localhost.localdomain"}
	result := c.Process(emails, nil)

	require.Len(t, result.Domains, 2)
	assert.Equal(t, "acme.co.uk", result.Domains[0].Domain)
	assert.Len(t, result.Domains[0].Emails, 3)
	assert.Equal(t, "localhost.localdomain", result.Domains[1].Domain)
}

func TestProcessEmailListLaws(t *testing.T) {
	text := `CEO@one.com, sales@one.com; head.of.ops@two.org vp-eng@two.org
	random@three.net founder@three.net Director@One.com lead@four.io`
	keywords := []string{"ceo", "head", "vp", "founder", "director", "lead"}

	emails := ExtractEmails(text)
	result := ProcessEmailList(emails, keywords)

	totalEmails, totalSelected := 0, 0
	for _, d := range result.Domains {
		require.NotEmpty(t, d.Emails)
		assert.Equal(t, len(d.SelectedEmails), d.MatchCount)
		totalEmails += len(d.Emails)
		totalSelected += d.MatchCount

		// selected is an ordered subsequence of emails
		j := 0
		for _, e := range d.Emails {
			if j < len(d.SelectedEmails) && d.SelectedEmails[j] == e {
				j++
			}
		}
		assert.Equal(t, len(d.SelectedEmails), j, "selected emails out of order for %s", d.Domain)

		for _, e := range d.SelectedEmails {
			local, _ := splitAddress(e)
			hit := false
			for _, kw := range keywords {
				if strings.Contains(strings.ToLower(local), kw) {
					hit = true
				}
			}
			assert.True(t, hit, "%s selected without a keyword", e)
		}
	}

	assert.Equal(t, result.Stats.TotalEmailsFound, totalEmails)
	assert.Equal(t, result.Stats.TotalSelected, totalSelected)
	assert.Equal(t, len(result.Domains), result.Stats.TotalDomains)
	assert.Equal(t, 6, result.Stats.TotalSelected)
}

func TestNormalizeKeywords(t *testing.T) {
	assert.Equal(t, []string{"ceo", "vp"}, NormalizeKeywords([]string{" CEO ", "", "vp", "ceo", "VP"}))
	assert.Empty(t, NormalizeKeywords(nil))
}
