package templates

import (
	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    language.Tag
	Code   string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
// Each option links the current path with its locale segment swapped.
func LanguageOptions(page PageContext) []LanguageOption {
	current := page.Lang()
	options := make([]LanguageOption, 0, len(platformi18n.SupportedTags()))
	for _, tag := range platformi18n.SupportedTags() {
		code := platformi18n.LocaleString(tag)
		path := page.CurrentPath
		if path == "" {
			path = routepath.Home(tag)
		}
		options = append(options, LanguageOption{
			Tag:    tag,
			Code:   code,
			Label:  T(page.Loc, languageSwitchKey(code)),
			URL:    routepath.SwitchLocale(path, tag),
			Active: code == current,
		})
	}
	return options
}

func languageSwitchKey(code string) string {
	return "core.lang.switch_" + code
}
