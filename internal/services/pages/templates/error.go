package templates

import (
	"net/http"
	"strings"

	"github.com/mrbrightsides/rantai-pages/internal/platform/i18n"
)

// ErrorView describes an error document.
type ErrorView struct {
	Lang       string
	SiteName   string
	StatusCode int
	// MessageKey overrides the status-derived heading when set.
	MessageKey string
	Loc        Localizer
	HomeHref   string
}

// ErrorPageTitle returns the localized heading for statusCode, or for
// messageKey when one is given.
func ErrorPageTitle(statusCode int, messageKey string, loc Localizer) string {
	if messageKey != "" {
		return T(loc, messageKey)
	}
	if statusCode == http.StatusNotFound {
		return T(loc, i18n.KeyNotFound)
	}
	return T(loc, i18n.KeyInternal)
}

func homeHref(href string) string {
	if href = strings.TrimSpace(href); href != "" {
		return href
	}
	return "/"
}
