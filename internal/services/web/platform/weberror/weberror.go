// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/errors"
	webi18n "github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/i18n"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/pagerender"
	webtemplates "github.com/stoplaliga/stoplaliga.com/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized full-page error response. A non-empty
// message replaces the default copy for statusCode.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, tag := webi18n.ResolveLocalizer(r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, tag, loc, message),
	})
	if err != nil {
		log.Printf("render error page status=%d err=%v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	loc, _ := webi18n.ResolveLocalizer(r)
	if ShouldRenderAppError(statusCode) {
		message := ""
		if apperrors.LocalizationKey(err) != "" {
			message = PublicMessage(loc, err)
		}
		WriteAppError(w, r, statusCode, message)
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
