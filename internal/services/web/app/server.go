package app

import "net/http"

// BuildRootHandler composes the localized page handler from cfg.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		Modules:  cfg.Modules,
		NotFound: cfg.NotFound,
	})
}
