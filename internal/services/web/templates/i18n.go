package templates

import "golang.org/x/text/message"

// Localizer provides translated strings for page components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key. Without a localizer the key itself is shown, so a page
// rendered outside a request still names every missing string.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		return keyString
	}
	return ""
}
