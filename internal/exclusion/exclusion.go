package exclusion

import (
	"strings"

	"go.uber.org/zap"
)

// Checker decides whether an address belongs to an excluded domain
type Checker struct {
	domains []string
	logger  *zap.Logger
}

// NewChecker creates a new exclusion checker.
// A listed domain also excludes all of its subdomains.
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	normalizedDomains := make([]string, 0, len(domains))
	for _, domain := range domains {
		domain = strings.Trim(strings.ToLower(strings.TrimSpace(domain)), ".")
		if domain == "" {
			continue
		}
		normalizedDomains = append(normalizedDomains, domain)
	}

	if len(normalizedDomains) > 0 && logger != nil {
		logger.Info("Initialized exclusion checker", zap.Strings("domains", normalizedDomains))
	}

	return &Checker{
		domains: normalizedDomains,
		logger:  logger,
	}
}

// IsExcluded checks if the address's domain is excluded
func (c *Checker) IsExcluded(email string) bool {
	if len(c.domains) == 0 {
		return false
	}

	i := strings.LastIndex(email, "@")
	if i < 0 {
		return false
	}
	domain := strings.ToLower(email[i+1:])

	for _, excluded := range c.domains {
		if domain == excluded || strings.HasSuffix(domain, "."+excluded) {
			if c.logger != nil {
				c.logger.Debug("Domain is excluded",
					zap.String("domain", domain),
					zap.String("email", email))
			}
			return true
		}
	}

	return false
}

// Domains returns the normalized excluded domains
func (c *Checker) Domains() []string {
	out := make([]string, len(c.domains))
	copy(out, c.domains)
	return out
}
