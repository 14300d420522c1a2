package web

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/i18n/catalog"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func serve(h http.Handler, method string, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRootRedirectsToNegotiatedLocale(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		location       string
		language       string
	}{
		{name: "no header", target: "/", location: "/es", language: "es"},
		{name: "english", target: "/", acceptLanguage: "en-US,en;q=0.9", location: "/en", language: "en"},
		{name: "unsupported falls back", target: "/", acceptLanguage: "de-DE", location: "/es", language: "es"},
		{name: "malformed falls back", target: "/", acceptLanguage: ";;;", location: "/es", language: "es"},
		{name: "path and query kept", target: "/sources?ref=tw", acceptLanguage: "en", location: "/en/sources?ref=tw", language: "en"},
		{name: "uppercase locale is not a prefix", target: "/ES", location: "/es/ES", language: "es"},
		{name: "locale-like segment", target: "/esp", location: "/es/esp", language: "es"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			header := http.Header{}
			if tc.acceptLanguage != "" {
				header.Set("Accept-Language", tc.acceptLanguage)
			}
			rr := serve(h, http.MethodGet, tc.target, header)
			if rr.Code != http.StatusTemporaryRedirect {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusTemporaryRedirect)
			}
			if got := rr.Header().Get("Location"); got != tc.location {
				t.Fatalf("Location = %q, want %q", got, tc.location)
			}
			if got := rr.Header().Get("X-Language"); got != tc.language {
				t.Fatalf("X-Language = %q, want %q", got, tc.language)
			}
			if got := rr.Header().Get("Vary"); got != "Accept-Language" {
				t.Fatalf("Vary = %q, want %q", got, "Accept-Language")
			}
		})
	}
}

func TestLocalizedPagesAreServed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	tests := []struct {
		target string
		lang   string
		marker string
	}{
		{target: "/es", lang: "es", marker: "LaLiga contra Internet"},
		{target: "/en", lang: "en", marker: "LaLiga against the Internet"},
		{target: "/es/controversies", lang: "es", marker: `class="case"`},
		{target: "/en/sources", lang: "en", marker: "Published June 11, 2019"},
		{target: "/en/animation-demo", lang: "en", marker: `data-stage="blackout"`},
	}
	for _, tc := range tests {
		rr := serve(h, http.MethodGet, tc.target, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", tc.target, rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("X-Language"); got != tc.lang {
			t.Fatalf("%s X-Language = %q, want %q", tc.target, got, tc.lang)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s missing request id", tc.target)
		}
		body := rr.Body.String()
		for _, marker := range []string{`<html lang="` + tc.lang + `">`, tc.marker} {
			if !strings.Contains(body, marker) {
				t.Fatalf("%s body missing marker %q", tc.target, marker)
			}
		}
	}
}

func TestLanguageSwitcherLinksSamePage(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, Config{}), http.MethodGet, "/es/controversies", nil)
	body := rr.Body.String()
	for _, marker := range []string{`href="/en/controversies"`, `href="/es/controversies"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing switcher link %q", marker)
		}
	}
}

func TestUnknownLocalizedPathRendersNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, Config{}), http.MethodGet, "/en/does-not-exist", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("expected localized not-found page")
	}
}

func TestTrailingSlashRedirectsPermanently(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, Config{}), http.MethodGet, "/es/sources/", nil)
	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusPermanentRedirect)
	}
	if got := rr.Header().Get("Location"); got != "/es/sources" {
		t.Fatalf("Location = %q, want %q", got, "/es/sources")
	}
}

func TestUnprefixedTrailingSlashRedirectsOnce(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, Config{}), http.MethodGet, "/sources/?ref=x", http.Header{"Accept-Language": {"en"}})
	if rr.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTemporaryRedirect)
	}
	if got := rr.Header().Get("Location"); got != "/en/sources?ref=x" {
		t.Fatalf("Location = %q, want %q", got, "/en/sources?ref=x")
	}
}

func TestRewriteStrategyTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{LocaleStrategy: "rewrite"})
	rr := serve(h, http.MethodGet, "/sources/", http.Header{"Accept-Language": {"en"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Location"); got != "/en/sources" {
		t.Fatalf("Content-Location = %q, want %q", got, "/en/sources")
	}
	if got := rr.Header().Get("Location"); got != "" {
		t.Fatalf("Location = %q, want none", got)
	}
}

func TestPagesRejectMutations(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, Config{}), http.MethodPost, "/es", nil)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestServiceRoutesSkipLocaleRouting(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{MetricsEnabled: true})

	css := serve(h, http.MethodGet, "/static/site.css", nil)
	if css.Code != http.StatusOK {
		t.Fatalf("static status = %d, want %d", css.Code, http.StatusOK)
	}
	if ct := css.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Fatalf("content-type = %q, want text/css", ct)
	}
	if css.Header().Get("X-Language") != "" {
		t.Fatal("static asset should not carry X-Language")
	}

	listing := serve(h, http.MethodGet, "/static/", nil)
	if listing.Code != http.StatusNotFound {
		t.Fatalf("static root status = %d, want %d", listing.Code, http.StatusNotFound)
	}
	if strings.Contains(listing.Body.String(), "site.css") {
		t.Fatalf("static root leaked a listing: %q", listing.Body.String())
	}

	up := serve(h, http.MethodGet, "/up", nil)
	if up.Code != http.StatusOK || !strings.Contains(up.Body.String(), `"status":"ok"`) {
		t.Fatalf("health = %d %q", up.Code, up.Body.String())
	}

	api := serve(h, http.MethodGet, "/api/anything", nil)
	if api.Code != http.StatusNotFound {
		t.Fatalf("api status = %d, want %d", api.Code, http.StatusNotFound)
	}
}

func TestMetricsEndpointReportsLocaleDecisions(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{MetricsEnabled: true})
	serve(h, http.MethodGet, "/", nil)
	serve(h, http.MethodGet, "/en", nil)

	rr := serve(h, http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`stoplaliga_localeroute_decisions_total{decision="redirect",locale="es"} 1`,
		`stoplaliga_localeroute_decisions_total{decision="serve",locale="en"} 1`,
		`stoplaliga_http_requests_total{code="307",method="GET"} 1`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics missing %q:\n%s", marker, body)
		}
	}
}

func TestMetricsEndpointDisabled(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, Config{}), http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRewriteStrategyServesWithoutRoundTrip(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{LocaleStrategy: "rewrite"})
	rr := serve(h, http.MethodGet, "/sources", http.Header{"Accept-Language": {"en"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Location"); got != "/en/sources" {
		t.Fatalf("Content-Location = %q, want %q", got, "/en/sources")
	}
	if got := rr.Header().Get("X-Language"); got != "en" {
		t.Fatalf("X-Language = %q, want %q", got, "en")
	}
	if !strings.Contains(rr.Body.String(), `<html lang="en">`) {
		t.Fatal("expected english document")
	}
}

func TestCookiePersistence(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{PersistLocaleCookie: true})

	served := serve(h, http.MethodGet, "/en", nil)
	var cookie *http.Cookie
	for _, c := range served.Result().Cookies() {
		if c.Name == platformi18n.LangCookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != "en" {
		t.Fatalf("expected %s=en cookie, got %+v", platformi18n.LangCookieName, cookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es")
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Location"); got != "/en" {
		t.Fatalf("Location = %q, want cookie locale %q", got, "/en")
	}
	if got := rr.Header().Get("Vary"); got != "Accept-Language, Cookie" {
		t.Fatalf("Vary = %q", got)
	}
}

func TestRequestLoggerWritesLines(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := newTestHandler(t, Config{Logger: log.New(&buffer, "", 0)})
	serve(h, http.MethodGet, "/", nil)
	for _, marker := range []string{"method=GET", "path=/", "status=307", "locale=es"} {
		if !strings.Contains(buffer.String(), marker) {
			t.Fatalf("log missing %q: %q", marker, buffer.String())
		}
	}
}

func TestNewHandlerRejectsBadConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{LocaleStrategy: "teleport"}); err == nil {
		t.Fatal("expected unknown strategy error")
	}
	if _, err := NewHandler(Config{ContentDir: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatal("expected missing content dir error")
	}
}

func TestCheckCatalogs(t *testing.T) {
	t.Parallel()

	catalogFile := func(locale string, keys ...string) *fstest.MapFile {
		var b strings.Builder
		b.WriteString("locale: \"" + locale + "\"\nnamespace: \"web\"\nmessages:\n")
		for _, key := range keys {
			b.WriteString("  \"" + key + "\": \"" + locale + "\"\n")
		}
		return &fstest.MapFile{Data: []byte(b.String())}
	}

	partial, err := catalog.LoadFromFS(fstest.MapFS{
		"locales/es/web.yaml": catalogFile("es", "web.a", "web.b"),
		"locales/en/web.yaml": catalogFile("en", "web.a"),
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	var buffer bytes.Buffer
	if err := checkCatalogs(partial, log.New(&buffer, "", 0)); err != nil {
		t.Fatalf("checkCatalogs() error = %v", err)
	}
	if got := buffer.String(); !strings.Contains(got, "catalog locale=en missing_keys=web.b") {
		t.Fatalf("log = %q, want missing key line for en", got)
	}
	if strings.Contains(buffer.String(), "locale=es") {
		t.Fatalf("base locale should not report missing keys: %q", buffer.String())
	}

	spanishOnly, err := catalog.LoadFromFS(fstest.MapFS{
		"locales/es/web.yaml": catalogFile("es", "web.a"),
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if err := checkCatalogs(spanishOnly, log.New(io.Discard, "", 0)); err == nil {
		t.Fatal("expected error for locale without catalog")
	}

	buffer.Reset()
	if err := checkCatalogs(catalog.Default(), log.New(&buffer, "", 0)); err != nil {
		t.Fatalf("checkCatalogs(Default) error = %v", err)
	}
	if buffer.Len() != 0 {
		t.Fatalf("embedded catalogs report missing keys: %q", buffer.String())
	}
}

func TestNewHandlerLoadsContentDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"timeline.yaml", "controversies.yaml", "sources.yaml", "intro.yaml"} {
		data, err := os.ReadFile(filepath.Join("content", "data", name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	rr := serve(newTestHandler(t, Config{ContentDir: dir}), http.MethodGet, "/es", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestServerLifecycle(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if server.Addr() != "127.0.0.1:0" {
		t.Fatalf("Addr() = %q", server.Addr())
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	server.Close()
}

func TestNilServerSafety(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
	server.Close()
	if server.Addr() != "" {
		t.Fatal("expected empty address for nil server")
	}
}
