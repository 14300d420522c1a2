package templates

import "net/http"

const (
	appErrorTitleNotFoundKey    = "error.not_found.title"
	appErrorTitleServerErrKey   = "error.internal.title"
	appErrorMessageNotFoundKey  = "error.not_found.message"
	appErrorMessageServerErrKey = "error.internal.message"
	appErrorBackHomeKey         = "error.back_home"
)

// AppErrorPageTitle returns the browser page title for error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorTitleNotFoundKey)
	}
	return T(loc, appErrorTitleServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// appErrorText returns message, or the default copy for statusCode when
// message is empty.
func appErrorText(statusCode int, loc Localizer, message string) string {
	if message == "" {
		return appErrorMessage(statusCode, loc)
	}
	return message
}
