// Package localeroute decides, per request, whether a page is served under
// its locale prefix, redirected to one, or rewritten internally to one.
//
// Unprefixed paths resolve their locale from the language cookie (when cookie
// persistence is enabled), then Accept-Language, then the default locale.
package localeroute

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/requestctx"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/requestmeta"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// LanguageHeader echoes the locale a response was produced for.
const LanguageHeader = "X-Language"

// Decision is the routing outcome for one request.
type Decision string

const (
	DecisionSkip     Decision = "skip"
	DecisionServe    Decision = "serve"
	DecisionRedirect Decision = "redirect"
	DecisionRewrite  Decision = "rewrite"
)

// Strategy selects how unprefixed paths reach their localized page.
type Strategy string

const (
	StrategyRedirect Strategy = "redirect"
	StrategyRewrite  Strategy = "rewrite"
)

// ParseStrategy validates a configured strategy name. Empty selects redirect.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StrategyRedirect:
		return StrategyRedirect, nil
	case StrategyRewrite:
		return StrategyRewrite, nil
	default:
		return "", fmt.Errorf("unknown locale strategy %q", value)
	}
}

// DefaultSkipSegments lists first path segments that bypass locale routing.
func DefaultSkipSegments() []string {
	return []string{"static", "api", "favicon.ico", "up", "metrics"}
}

// Outcome describes a routing decision.
type Outcome struct {
	Decision Decision
	// Locale is language.Und for skipped requests.
	Locale language.Tag
	// Target is the localized path for redirect and rewrite decisions.
	Target string
}

// Observer receives every routing decision.
type Observer func(*http.Request, Outcome)

// Options configures a Router.
type Options struct {
	Strategy Strategy
	// PersistCookie reads the language cookie during resolution and keeps it
	// in sync with served locales.
	PersistCookie bool
	// SchemePolicy decides when the language cookie is marked Secure.
	SchemePolicy requestmeta.SchemePolicy
	// SkipSegments replaces DefaultSkipSegments when non-nil.
	SkipSegments []string
	Observer     Observer
}

// Router applies locale routing decisions.
type Router struct {
	strategy      Strategy
	persistCookie bool
	schemePolicy  requestmeta.SchemePolicy
	skip          map[string]struct{}
	observer      Observer
}

// New builds a Router from options.
func New(opts Options) (*Router, error) {
	strategy, err := ParseStrategy(string(opts.Strategy))
	if err != nil {
		return nil, err
	}
	segments := opts.SkipSegments
	if segments == nil {
		segments = DefaultSkipSegments()
	}
	skip := make(map[string]struct{}, len(segments))
	for _, segment := range segments {
		segment = strings.Trim(strings.TrimSpace(segment), "/")
		if segment == "" {
			continue
		}
		if platformi18n.IsSupportedLocale(segment) {
			return nil, fmt.Errorf("skip segment %q collides with a supported locale", segment)
		}
		skip[segment] = struct{}{}
	}
	return &Router{
		strategy:      strategy,
		persistCookie: opts.PersistCookie,
		schemePolicy:  opts.SchemePolicy,
		skip:          skip,
		observer:      opts.Observer,
	}, nil
}

// Decide computes the routing outcome for r without writing anything.
func (rt *Router) Decide(r *http.Request) Outcome {
	if rt == nil || r == nil || r.URL == nil {
		return Outcome{Decision: DecisionSkip, Locale: language.Und}
	}
	path := r.URL.Path
	if path == "" {
		path = routepath.Root
	}
	if rt.skipped(path) {
		return Outcome{Decision: DecisionSkip, Locale: language.Und}
	}
	if tag, ok := platformi18n.LocaleFromPath(path); ok {
		return Outcome{Decision: DecisionServe, Locale: tag}
	}

	tag := rt.resolve(r)
	if trimmed := strings.TrimRight(path, "/"); trimmed != "" {
		path = trimmed
	} else {
		path = routepath.Root
	}
	decision := DecisionRedirect
	if rt.strategy == StrategyRewrite {
		decision = DecisionRewrite
	}
	return Outcome{Decision: decision, Locale: tag, Target: routepath.Localized(tag, path)}
}

// Middleware wraps next with locale routing.
func (rt *Router) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome := rt.Decide(r)
			if rt != nil && rt.observer != nil {
				rt.observer(r, outcome)
			}
			switch outcome.Decision {
			case DecisionServe:
				rt.serve(w, r, next, outcome)
			case DecisionRedirect:
				rt.redirect(w, r, outcome)
			case DecisionRewrite:
				rt.rewrite(w, r, next, outcome)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func (rt *Router) serve(w http.ResponseWriter, r *http.Request, next http.Handler, outcome Outcome) {
	locale := platformi18n.LocaleString(outcome.Locale)
	w.Header().Set(LanguageHeader, locale)
	if rt.persistCookie {
		if current, ok := platformi18n.CookieTag(r); !ok || current != outcome.Locale {
			platformi18n.SetLanguageCookie(w, outcome.Locale, requestmeta.IsHTTPSWithPolicy(r, rt.schemePolicy))
		}
	}
	next.ServeHTTP(w, r.WithContext(requestctx.WithLocale(r.Context(), outcome.Locale)))
}

func (rt *Router) redirect(w http.ResponseWriter, r *http.Request, outcome Outcome) {
	w.Header().Set(LanguageHeader, platformi18n.LocaleString(outcome.Locale))
	w.Header().Add("Vary", rt.vary())
	location := (&url.URL{Path: outcome.Target, RawQuery: r.URL.RawQuery}).String()
	http.Redirect(w, r, location, http.StatusTemporaryRedirect)
}

func (rt *Router) rewrite(w http.ResponseWriter, r *http.Request, next http.Handler, outcome Outcome) {
	w.Header().Set(LanguageHeader, platformi18n.LocaleString(outcome.Locale))
	w.Header().Add("Vary", rt.vary())
	w.Header().Set("Content-Location", (&url.URL{Path: outcome.Target}).EscapedPath())

	rewritten := r.WithContext(requestctx.WithLocale(r.Context(), outcome.Locale))
	target := *r.URL
	target.Path = outcome.Target
	target.RawPath = ""
	rewritten.URL = &target
	rewritten.RequestURI = target.RequestURI()
	next.ServeHTTP(w, rewritten)
}

func (rt *Router) vary() string {
	if rt.persistCookie {
		return "Accept-Language, Cookie"
	}
	return "Accept-Language"
}

func (rt *Router) resolve(r *http.Request) language.Tag {
	if rt.persistCookie {
		if tag, ok := platformi18n.CookieTag(r); ok {
			return tag
		}
	}
	return platformi18n.Negotiate(r.Header.Get("Accept-Language"))
}

func (rt *Router) skipped(path string) bool {
	first := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(first, '/'); idx >= 0 {
		first = first[:idx]
	}
	if first == "" {
		return false
	}
	_, ok := rt.skip[first]
	return ok
}
