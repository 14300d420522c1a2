// Package web hosts the browser-facing bilingual site.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/i18n/catalog"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/telemetry/metrics"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/timeouts"
	webapp "github.com/stoplaliga/stoplaliga.com/internal/services/web/app"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/content"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/localeroute"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/modules"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/httpx"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/observability"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/requestmeta"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/weberror"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/routepath"
	webstatic "github.com/stoplaliga/stoplaliga.com/internal/services/web/static"
	"golang.org/x/text/language"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// LocaleStrategy is "redirect" (default) or "rewrite".
	LocaleStrategy string
	// PersistLocaleCookie enables the language cookie.
	PersistLocaleCookie bool
	// TrustForwardedProto honors X-Forwarded-Proto from a fronting proxy.
	TrustForwardedProto bool
	// ContentDir overrides the embedded page content when set.
	ContentDir     string
	MetricsEnabled bool
	// Logger receives request and lifecycle lines. Nil uses log.Default().
	Logger *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler builds the root handler: service routes, the localized page
// modules, and the middleware chain ending in locale routing.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	if err := checkCatalogs(catalog.Default(), logger); err != nil {
		return nil, err
	}
	library, err := loadContent(cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.New()
	}
	strategy, err := localeroute.ParseStrategy(cfg.LocaleStrategy)
	if err != nil {
		return nil, err
	}
	router, err := localeroute.New(localeroute.Options{
		Strategy:      strategy,
		PersistCookie: cfg.PersistLocaleCookie,
		SchemePolicy:  requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Observer:      observeLocaleDecision(recorder),
	})
	if err != nil {
		return nil, fmt.Errorf("build locale router: %w", err)
	}

	pages, err := webapp.BuildRootHandler(webapp.Config{
		Modules: modules.DefaultModules(modules.Dependencies{Content: library}),
	})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, webstatic.Handler()))
	rootMux.Handle(routepath.Health, httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(handleHealth)))
	if recorder != nil {
		rootMux.Handle(routepath.Metrics, httpx.RequireMethod(http.MethodGet)(recorder.Handler()))
	}
	rootMux.Handle(routepath.Root, pages)

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(func(w http.ResponseWriter, r *http.Request) {
			weberror.WriteAppError(w, r, http.StatusInternalServerError, "")
		}),
		httpx.RequestID(),
		observability.Tracing(nil),
		observability.Metrics(recorder),
		observability.RequestLogger(logger),
		router.Middleware(),
	), nil
}

// checkCatalogs requires a message catalog for every supported locale and
// logs the keys each one lacks against the base catalog.
func checkCatalogs(bundle *catalog.Bundle, logger *log.Logger) error {
	for _, tag := range platformi18n.SupportedTags() {
		locale := platformi18n.LocaleString(tag)
		if !bundle.HasLocale(locale) {
			return fmt.Errorf("no message catalog for locale %s", locale)
		}
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			logger.Printf("catalog locale=%s missing_keys=%s", locale, strings.Join(missing, ","))
		}
	}
	return nil
}

func loadContent(dir string) (*content.Library, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		library, err := content.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load embedded content: %w", err)
		}
		return library, nil
	}
	library, err := content.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", dir, err)
	}
	return library, nil
}

func observeLocaleDecision(recorder *metrics.Recorder) localeroute.Observer {
	if recorder == nil {
		return nil
	}
	return func(_ *http.Request, outcome localeroute.Outcome) {
		locale := ""
		if outcome.Locale != language.Und {
			locale = platformi18n.LocaleString(outcome.Locale)
		}
		recorder.ObserveLocaleDecision(string(outcome.Decision), locale)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
