package checkout

import (
	"net/url"
	"strings"
)

// Mono rejects sessions with non-https return/callback endpoints
// (bad_request), so unsafe URLs are replaced with the production site base.

const defaultLandingPath = "/index.html"

// SafeReturnURL returns raw unchanged when it is an absolute https URL on a
// non-loopback host. Otherwise it keeps the original path component and
// rebases it onto siteBase.
func SafeReturnURL(raw, siteBase string) string {
	base := strings.TrimRight(siteBase, "/")

	u, err := url.Parse(raw)
	if err == nil && strings.EqualFold(u.Scheme, "https") && !isLoopbackHost(u.Hostname()) {
		return raw
	}

	return base + pathComponent(raw)
}

// SafeCallbackURL uses raw only when it is already https; otherwise the
// configured default notification endpoint wins.
func SafeCallbackURL(raw, fallback string) string {
	u, err := url.Parse(raw)
	if raw != "" && err == nil && strings.EqualFold(u.Scheme, "https") {
		return raw
	}
	return fallback
}

func isLoopbackHost(host string) bool {
	h := strings.ToLower(host)
	return strings.Contains(h, "localhost") || strings.Contains(h, "127.0.0.1")
}

// pathComponent strips the scheme and host from raw, keeping path and query.
// An empty result falls back to the landing page.
func pathComponent(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		p = u.RequestURI()
		// url.URL.RequestURI returns "/" for an empty path
		if u.Path == "" && u.RawQuery == "" {
			p = ""
		}
	}

	if p == "" {
		return defaultLandingPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
