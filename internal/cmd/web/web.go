// Package web parses web service flags and launches the site.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/stoplaliga/stoplaliga.com/internal/platform/cmd"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/localeroute"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string `env:"STOPLALIGA_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	LocaleStrategy string `env:"STOPLALIGA_WEB_LOCALE_STRATEGY" envDefault:"redirect"`
	LocaleCookie   bool   `env:"STOPLALIGA_WEB_LOCALE_COOKIE" envDefault:"false"`
	TrustProxy     bool   `env:"STOPLALIGA_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	ContentDir     string `env:"STOPLALIGA_WEB_CONTENT_DIR"`
	MetricsEnabled bool   `env:"STOPLALIGA_WEB_METRICS_ENABLED" envDefault:"true"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LocaleStrategy, "locale-strategy", cfg.LocaleStrategy, "Unprefixed path handling: redirect or rewrite")
	fs.BoolVar(&cfg.LocaleCookie, "locale-cookie", cfg.LocaleCookie, "Remember the chosen language in a cookie")
	fs.BoolVar(&cfg.TrustProxy, "trust-forwarded-proto", cfg.TrustProxy, "Honor X-Forwarded-Proto from a TLS-terminating proxy")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "Directory with page content YAML overriding the embedded copy")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Expose Prometheus metrics on /metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := localeroute.ParseStrategy(cfg.LocaleStrategy); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			LocaleStrategy:      cfg.LocaleStrategy,
			PersistLocaleCookie: cfg.LocaleCookie,
			TrustForwardedProto: cfg.TrustProxy,
			ContentDir:          cfg.ContentDir,
			MetricsEnabled:      cfg.MetricsEnabled,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
