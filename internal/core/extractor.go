package core

import (
	"regexp"
	"strings"
)

// emailPattern matches local@domain where the final label has at least two letters.
// A dot is only consumed when another label follows, so sentence punctuation is never captured.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}`)

// ExtractEmails returns the unique normalized addresses in text, in first-seen order
func ExtractEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(matches))
	emails := make([]string, 0, len(matches))
	for _, m := range matches {
		email, ok := normalizeEmail(m)
		if !ok {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	return emails
}

// normalizeEmail lowercases a matched token and strips leading dots.
// It reports false when nothing is left of the local part.
func normalizeEmail(token string) (string, bool) {
	email := strings.ToLower(strings.TrimLeft(token, "."))
	if strings.HasPrefix(email, "@") {
		return "", false
	}
	return email, true
}

// splitAddress splits an address at the last @
func splitAddress(email string) (local, domain string) {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return email, ""
	}
	return email[:i], email[i+1:]
}
