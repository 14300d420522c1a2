package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    func() *http.Request
		policy SchemePolicy
		want   string
	}{
		{
			name: "plain http",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/es", nil) },
			want: "http",
		},
		{
			name: "absolute https url",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "https://stoplaliga.com/es", nil) },
			want: "https",
		},
		{
			name: "tls connection",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/es", nil)
				req.TLS = &tls.ConnectionState{}
				return req
			},
			want: "https",
		},
		{
			name: "untrusted forwarded proto is ignored",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/es", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			want: "http",
		},
		{
			name: "trusted forwarded proto is used",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/es", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   "https",
		},
		{
			name: "first hop of proxy chain wins",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/es", nil)
				req.Header.Set("X-Forwarded-Proto", "HTTPS, http")
				return req
			},
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   "https",
		},
		{
			name: "garbage forwarded proto falls back",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/es", nil)
				req.Header.Set("X-Forwarded-Proto", "gopher")
				return req
			},
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   "http",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Scheme(tc.req(), tc.policy); got != tc.want {
				t.Fatalf("Scheme() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	if IsHTTPSWithPolicy(nil, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatalf("expected nil request to be non-https")
	}
	if Scheme(nil, SchemePolicy{}) != "" {
		t.Fatalf("expected empty scheme for nil request")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPSWithPolicy(req, SchemePolicy{}) {
		t.Fatalf("expected forwarded header to be ignored by default")
	}
	if got := IsHTTPSWithPolicy(req, SchemePolicy{TrustForwardedProto: true}); !got {
		t.Fatalf("IsHTTPSWithPolicy() = %v, want true", got)
	}
}
