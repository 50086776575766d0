package jobcrawl

import (
	"net/url"
	"strings"
)

// DefaultJobAllowlist is the curated set of job-board domains permitted for
// job-posting extraction. The filter exists so the fetcher cannot be used as
// an open proxy against arbitrary targets.
var DefaultJobAllowlist = Allowlist{
	"linkedin.com", "stepstone.de", "indeed.com", "indeed.de",
	"xing.com", "monster.de", "glassdoor.com", "glassdoor.de",
	"jobware.de", "jobscout24.de", "stellenanzeigen.de",
	"karriere.de", "jobvector.de", "meinestadt.de",
}

// Allowlist is an ordered set of trusted domain fragments.
//
// Matching is substring containment against the request host (case-folded,
// one leading "www." stripped), not an exact suffix match. That means a host
// like "evil-xing.com.attacker.net" also matches the "xing.com" entry.
// Callers that need a hard security boundary should front this with their
// own suffix check; the containment semantics are kept for compatibility
// with the upstream matching behavior.
type Allowlist []string

// Allowed reports whether the URL's host matches an allowlist entry.
// Malformed URLs are never allowed.
func (a Allowlist) Allowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")

	for _, entry := range a {
		if strings.Contains(host, entry) {
			return true
		}
	}
	return false
}
