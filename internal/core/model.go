package core

import (
	"time"
)

// DefaultKeywords is the seed role list used when no profile or override is given
var DefaultKeywords = []string{"ceo", "cfo", "cto", "founder", "president", "manager", "director", "vp", "head", "lead"}

// ProcessedDomain holds every unique address seen for one domain
type ProcessedDomain struct {
	Domain         string   `json:"domain"`
	Emails         []string `json:"emails"`
	SelectedEmails []string `json:"selectedEmails"`
	MatchCount     int      `json:"matchCount"`
}

// ProcessingStats summarizes one run
type ProcessingStats struct {
	TotalEmailsFound int `json:"totalEmailsFound"`
	TotalDomains     int `json:"totalDomains"`
	TotalSelected    int `json:"totalSelected"`
}

// Result is the output of a classification run
type Result struct {
	Domains []ProcessedDomain `json:"domains"`
	Stats   ProcessingStats   `json:"stats"`
}

// RoleConfig is a named keyword list kept by the presentation layer
type RoleConfig struct {
	Name      string
	Keywords  []string
	UpdatedAt time.Time
}

// ShortlistStatus marks whether a shortlisted email matched a keyword
type ShortlistStatus string

const (
	StatusMatch   ShortlistStatus = "Match"
	StatusGeneral ShortlistStatus = "General"
)

// ShortlistEntry is one row of an export shortlist
type ShortlistEntry struct {
	Domain string          `json:"domain"`
	Email  string          `json:"email"`
	Status ShortlistStatus `json:"status"`
}
