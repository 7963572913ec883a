package core

import (
	"sort"
)

// Shortlist picks up to n addresses of a domain for export.
// Matched addresses come first, shortest first, followed by the rest in alphabetical order.
// n <= 0 returns every address.
func Shortlist(d ProcessedDomain, n int) []ShortlistEntry {
	selected := make(map[string]struct{}, len(d.SelectedEmails))
	for _, e := range d.SelectedEmails {
		selected[e] = struct{}{}
	}

	priority := make([]string, 0, len(d.SelectedEmails))
	others := make([]string, 0, len(d.Emails))
	for _, e := range d.Emails {
		if _, ok := selected[e]; ok {
			priority = append(priority, e)
		} else {
			others = append(others, e)
		}
	}

	sort.SliceStable(priority, func(i, j int) bool {
		if len(priority[i]) != len(priority[j]) {
			return len(priority[i]) < len(priority[j])
		}
		return priority[i] < priority[j]
	})
	sort.Strings(others)

	entries := make([]ShortlistEntry, 0, len(d.Emails))
	for _, e := range priority {
		entries = append(entries, ShortlistEntry{Domain: d.Domain, Email: e, Status: StatusMatch})
	}
	for _, e := range others {
		entries = append(entries, ShortlistEntry{Domain: d.Domain, Email: e, Status: StatusGeneral})
	}

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// BuildShortlist concatenates the shortlist of every domain in result order
func BuildShortlist(result *Result, n int) []ShortlistEntry {
	var entries []ShortlistEntry
	if result == nil {
		return entries
	}
	for _, d := range result.Domains {
		entries = append(entries, Shortlist(d, n)...)
	}
	return entries
}
