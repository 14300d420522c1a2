// Package publichandler provides a shared base for page module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	apperrors "github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/errors"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/pagerender"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/weberror"
	webtemplates "github.com/stoplaliga/stoplaliga.com/internal/services/web/templates"
)

// Base provides shared error handling and page rendering. Embed this in
// handler structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	updatedAt time.Time
}

// Option configures a Base.
type Option func(*Base)

// WithUpdatedAt sets the date shown in the footer's last-update line.
func WithUpdatedAt(updatedAt time.Time) Option {
	return func(b *Base) { b.updatedAt = updatedAt }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// PageContext returns the template context for r.
func (b Base) PageContext(r *http.Request) webtemplates.PageContext {
	return pagerender.Context(r, b.updatedAt)
}

// WritePage renders a full page. A render failure becomes a 503 error page
// with the localized unavailable message.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:     title,
		UpdatedAt: b.updatedAt,
		Fragment:  body,
	})
	if err != nil {
		log.Printf("render page path=%s err=%v", requestPath(r), err)
		b.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable.message", err))
	}
}

// WriteNotFound renders the localized 404 page.
func (Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, "")
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	if err == nil {
		err = apperrors.E(apperrors.KindUnknown, "unknown error")
	}
	weberror.WriteModuleError(w, r, err)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
