package app

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/requestctx"
	module "github.com/stoplaliga/stoplaliga.com/internal/services/web/module"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/publichandler"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// ComposeInput carries page modules and shared composition contracts.
type ComposeInput struct {
	Modules []module.Module
	// NotFound serves unmatched paths under a locale prefix. Nil uses the
	// localized 404 page.
	NotFound http.Handler
}

// Compose builds a handler that serves every module under every supported
// locale prefix. Each mounted path matches exactly; other paths below a
// locale prefix lose a trailing slash via 308 or get the not-found handler.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	notFound := input.NotFound
	if notFound == nil {
		notFound = http.HandlerFunc(publichandler.NewBase().WriteNotFound)
	}
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, path, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		for _, tag := range platformi18n.SupportedTags() {
			if err := mountModule(root, feature, mount, routepath.Localized(tag, path), seen, withLocale(tag)); err != nil {
				return nil, err
			}
		}
	}

	for _, tag := range platformi18n.SupportedTags() {
		root.Handle(routepath.LocalePrefix(tag), withLocale(tag)(localeFallback(notFound)))
	}
	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	pattern string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates path %q owned by module %q", feature.ID(), pattern, previous)
	}
	seen[pattern] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(pattern, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePath(mount.Path); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid path %q: %w", feature.ID(), mount.Path, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Path, nil
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}
	if strings.TrimSpace(path) != path {
		return fmt.Errorf("path must not include surrounding whitespace")
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must begin with /")
	}
	if path != routepath.Root && strings.HasSuffix(path, "/") {
		return fmt.Errorf("path must not end with /")
	}
	if _, ok := platformi18n.LocaleFromPath(path); ok {
		return fmt.Errorf("path must be relative to the locale prefix")
	}
	return nil
}

func withLocale(tag language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(requestctx.WithLocale(r.Context(), tag)))
		})
	}
}

// localeFallback handles unmatched paths below a locale prefix.
func localeFallback(notFound http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if len(path) > 1 && strings.HasSuffix(path, "/") {
			target := &url.URL{Path: strings.TrimRight(path, "/"), RawQuery: r.URL.RawQuery}
			http.Redirect(w, r, target.String(), http.StatusPermanentRedirect)
			return
		}
		notFound.ServeHTTP(w, r)
	})
}
