// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"strings"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"golang.org/x/text/language"
)

const (
	Root          = "/"
	Health        = "/up"
	Metrics       = "/metrics"
	StaticPrefix  = "/static/"
	Controversies = "/controversies"
	Sources       = "/sources"
	AnimationDemo = "/animation-demo"
)

// LocalePrefix returns the mount prefix for one locale, e.g. "/es/".
func LocalePrefix(tag language.Tag) string {
	return "/" + platformi18n.LocaleString(tag) + "/"
}

// Home returns the localized home path, e.g. "/es".
func Home(tag language.Tag) string {
	return "/" + platformi18n.LocaleString(tag)
}

// Localized prefixes path with the locale segment. The root path maps to
// the bare locale path without a trailing slash.
func Localized(tag language.Tag, path string) string {
	if path == "" || path == Root {
		return Home(tag)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return Home(tag) + path
}

// SwitchLocale returns path with its locale segment replaced by tag. Paths
// without a locale segment are localized instead.
func SwitchLocale(path string, tag language.Tag) string {
	if _, ok := platformi18n.LocaleFromPath(path); !ok {
		return Localized(tag, path)
	}
	segments := strings.SplitN(path, "/", 3)
	segments[1] = platformi18n.LocaleString(tag)
	return strings.Join(segments, "/")
}

// StaticAsset returns the public path of an embedded static asset.
func StaticAsset(name string) string {
	return StaticPrefix + strings.TrimPrefix(name, "/")
}
