// Package requestmeta resolves request scheme details the site cannot read
// directly when it runs behind a TLS-terminating proxy.
package requestmeta

import (
	"net/http"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only honored when TrustForwardedProto is set, since
// any client can send it.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPSWithPolicy reports whether the request should be treated as HTTPS.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme returns "http" or "https" for r, or "" for a nil request.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := forwardedProto(r.Header.Get("X-Forwarded-Proto")); forwarded != "" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// forwardedProto reads the client-facing hop, the first entry of a
// comma-separated proxy chain.
func forwardedProto(value string) string {
	first, _, _ := strings.Cut(value, ",")
	switch proto := strings.ToLower(strings.TrimSpace(first)); proto {
	case "http", "https":
		return proto
	default:
		return ""
	}
}
