package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortlist(t *testing.T) {
	d := ProcessedDomain{
		Domain:         "acme.com",
		Emails:         []string{"zed@acme.com", "the.ceo@acme.com", "amy@acme.com", "cto@acme.com", "bob@acme.com"},
		SelectedEmails: []string{"the.ceo@acme.com", "cto@acme.com"},
		MatchCount:     2,
	}

	entries := Shortlist(d, 4)
	assert.Equal(t, []ShortlistEntry{
		{Domain: "acme.com", Email: "cto@acme.com", Status: StatusMatch},
		{Domain: "acme.com", Email: "the.ceo@acme.com", Status: StatusMatch},
		{Domain: "acme.com", Email: "amy@acme.com", Status: StatusGeneral},
		{Domain: "acme.com", Email: "bob@acme.com", Status: StatusGeneral},
	}, entries)

	assert.Len(t, Shortlist(d, 0), 5)
	assert.Len(t, Shortlist(d, 10), 5)
}

func TestBuildShortlist(t *testing.T) {
	result := ProcessEmailList([]string{"a@x.io", "ceo@y.io", "b@y.io"}, []string{"ceo"})
	entries := BuildShortlist(result, 1)

	assert.Equal(t, []ShortlistEntry{
		{Domain: "x.io", Email: "a@x.io", Status: StatusGeneral},
		{Domain: "y.io", Email: "ceo@y.io", Status: StatusMatch},
	}, entries)
	assert.Empty(t, BuildShortlist(nil, 5))
}
