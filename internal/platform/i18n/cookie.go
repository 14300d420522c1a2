package i18n

import (
	"net/http"
	"time"

	"golang.org/x/text/language"
)

// LangCookieName stores the visitor's language preference.
const LangCookieName = "stoplaliga_lang"

// CookieTag returns the supported locale stored in the language cookie.
func CookieTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return language.Und, false
	}
	cookie, err := r.Cookie(LangCookieName)
	if err != nil {
		return language.Und, false
	}
	return ParseTag(cookie.Value)
}

// SetLanguageCookie persists the selected language on the response. Secure
// should be true when the visitor reached the site over HTTPS.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag, secure bool) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    LocaleString(tag),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
