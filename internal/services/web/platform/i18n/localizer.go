// Package i18n resolves the message printer used to render a web request.
package i18n

import (
	"net/http"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/i18n/catalog"
	"github.com/stoplaliga/stoplaliga.com/internal/platform/requestctx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Printer returns a message printer for tag backed by the embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	return catalog.Default().Printer(tag)
}

// RequestTag returns the locale resolved for r by locale routing, falling
// back to the path prefix and then the default locale.
func RequestTag(r *http.Request) language.Tag {
	if r == nil {
		return platformi18n.DefaultTag()
	}
	if tag, ok := requestctx.LocaleFromContext(r.Context()); ok && tag != language.Und {
		return tag
	}
	if r.URL != nil {
		if tag, ok := platformi18n.LocaleFromPath(r.URL.Path); ok {
			return tag
		}
	}
	return platformi18n.DefaultTag()
}

// ResolveLocalizer returns the printer and locale for r.
func ResolveLocalizer(r *http.Request) (*message.Printer, language.Tag) {
	tag := RequestTag(r)
	return Printer(tag), tag
}
