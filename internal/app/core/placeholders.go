package core

import "strings"

// Placeholder tags used inside catalog patterns.
const (
	TagOpen  = "{{"
	TagClose = "}}"

	// SiteVar expands to "site:<domain>" (or "site:*.<domain>" for the
	// wildcard-subdomain variant). DomainVar expands to the bare domain.
	SiteVar   = "site"
	DomainVar = "domain"
)

func containsSiteTag(pattern string) bool {
	return strings.Contains(pattern, TagOpen+SiteVar+TagClose)
}
