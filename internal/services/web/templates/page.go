package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"strings"
	"time"

	"github.com/stoplaliga/stoplaliga.com/internal/platform/branding"
	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"golang.org/x/text/language"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Locale      language.Tag
	Loc         Localizer
	CurrentPath string
	// UpdatedAt drives the footer's last-update line; zero hides it.
	UpdatedAt time.Time
}

// Lang returns the value of the document's lang attribute.
func (p PageContext) Lang() string {
	if p.Locale == language.Und {
		return platformi18n.LocaleString(platformi18n.DefaultTag())
	}
	return platformi18n.LocaleString(p.Locale)
}

// ComposePageTitle appends the site name to a page title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == branding.AppName {
		return branding.AppName
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}
