// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/httpx"
	webi18n "github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/i18n"
	webtemplates "github.com/stoplaliga/stoplaliga.com/internal/services/web/templates"
)

// Page describes a full localized page response.
type Page struct {
	Title      string
	StatusCode int
	UpdatedAt  time.Time
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Context builds the template page context for r.
func Context(r *http.Request, updatedAt time.Time) webtemplates.PageContext {
	loc, tag := webi18n.ResolveLocalizer(r)
	page := webtemplates.PageContext{
		Locale:    tag,
		Loc:       loc,
		UpdatedAt: updatedAt,
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
	}
	return page
}

// WritePage renders page inside the site layout for the request's locale.
// Nothing is written when rendering fails.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	pageContext := Context(r, page.UpdatedAt)

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	if err := webtemplates.Layout(page.Title, pageContext).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", platformi18n.LocaleString(pageContext.Locale))
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
