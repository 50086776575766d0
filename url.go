package jobcrawl

import "net/url"

// ValidateURL reports whether raw is a well-formed absolute URL using the
// http or https scheme with a non-empty host. It never returns an error;
// anything unparseable is simply invalid.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
