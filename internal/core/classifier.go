package core

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// MatchMode selects how a keyword is compared to the local part
type MatchMode string

const (
	// MatchSubstring selects an address when a keyword occurs anywhere in the local part
	MatchSubstring MatchMode = "substring"
	// MatchToken selects an address when a keyword equals one whole token of the local part
	MatchToken MatchMode = "token"
)

// Grouping selects the key addresses are grouped under
type Grouping string

const (
	// GroupByHost groups by the full host after the last @
	GroupByHost Grouping = "host"
	// GroupByRegistrable groups by the registrable domain (eTLD+1) of the host
	GroupByRegistrable Grouping = "registrable"
)

// Classifier groups addresses by domain and flags role addresses
type Classifier struct {
	mode        MatchMode
	matchDomain bool
	grouping    Grouping
}

// Option configures a Classifier
type Option func(*Classifier)

// WithMatchMode sets the keyword match mode
func WithMatchMode(mode MatchMode) Option {
	return func(c *Classifier) {
		c.mode = mode
	}
}

// WithDomainMatching makes keywords also match against the domain part
func WithDomainMatching(enabled bool) Option {
	return func(c *Classifier) {
		c.matchDomain = enabled
	}
}

// WithGrouping sets how addresses are grouped
func WithGrouping(grouping Grouping) Option {
	return func(c *Classifier) {
		c.grouping = grouping
	}
}

// NewClassifier creates a classifier. Without options it matches keywords as
// case-insensitive substrings of the local part and groups by host.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		mode:     MatchSubstring,
		grouping: GroupByHost,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProcessEmailList groups emails by domain and selects those whose local part contains a keyword
func ProcessEmailList(emails []string, keywords []string) *Result {
	return NewClassifier().Process(emails, keywords)
}

// Process groups emails by domain, flags selected addresses and computes stats.
// emails is expected to be unique, as returned by ExtractEmails.
func (c *Classifier) Process(emails []string, keywords []string) *Result {
	normalized := NormalizeKeywords(keywords)

	domains := make([]ProcessedDomain, 0)
	index := make(map[string]int)
	for _, email := range emails {
		local, host := splitAddress(email)
		key := c.groupKey(host)

		i, ok := index[key]
		if !ok {
			i = len(domains)
			index[key] = i
			domains = append(domains, ProcessedDomain{
				Domain:         key,
				Emails:         []string{},
				SelectedEmails: []string{},
			})
		}

		d := &domains[i]
		d.Emails = append(d.Emails, email)
		if c.matches(local, host, normalized) {
			d.SelectedEmails = append(d.SelectedEmails, email)
			d.MatchCount++
		}
	}

	stats := ProcessingStats{
		TotalEmailsFound: len(emails),
		TotalDomains:     len(domains),
	}
	for _, d := range domains {
		stats.TotalSelected += d.MatchCount
	}

	return &Result{
		Domains: domains,
		Stats:   stats,
	}
}

// groupKey returns the domain an address with the given host is grouped under
func (c *Classifier) groupKey(host string) string {
	if c.grouping != GroupByRegistrable {
		return host
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil || etld1 == "" {
		return host
	}
	return etld1
}

func (c *Classifier) matches(local, host string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	local = strings.ToLower(local)
	if c.matchPart(local, keywords) {
		return true
	}
	return c.matchDomain && c.matchPart(strings.ToLower(host), keywords)
}

func (c *Classifier) matchPart(part string, keywords []string) bool {
	if c.mode == MatchToken {
		tokens := tokenize(part)
		for _, kw := range keywords {
			for _, tok := range tokens {
				if tok == kw {
					return true
				}
			}
		}
		return false
	}

	for _, kw := range keywords {
		if strings.Contains(part, kw) {
			return true
		}
	}
	return false
}

// tokenize splits a local part on separators and digits
func tokenize(part string) []string {
	return strings.FieldsFunc(part, func(r rune) bool {
		switch {
		case r == '.', r == '_', r == '-', r == '+', r == '%':
			return true
		case r >= '0' && r <= '9':
			return true
		}
		return false
	})
}

// NormalizeKeywords lowercases and trims keywords, dropping empty entries and repeats.
// Input order is kept.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
