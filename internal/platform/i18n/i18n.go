// Package i18n declares the languages rantai-pages renders and registers
// their message catalogs with golang.org/x/text/message.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys shared by the page templates.
const (
	KeyMobileNotice = "embed.mobile_notice"
	KeyMobileHint   = "embed.mobile_hint"
	KeyUnavailable  = "embed.unavailable"
	KeyNotFound     = "error.not_found"
	KeyInternal     = "error.internal"
	KeyBackHome     = "error.back_home"
)

var supported = []language.Tag{
	language.Indonesian,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supported)

// DefaultTag returns the language used when nothing better matches.
func DefaultTag() language.Tag {
	return supported[0]
}

// SupportedTags returns the supported languages in preference order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag parses value and reports whether it maps to a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supportedAt(idx), true
}

// MatchTags returns the best supported language for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedAt(idx)
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// supportedAt maps a matcher index back to the plain supported tag, without
// the -u-rg extensions the matcher may attach.
func supportedAt(idx int) language.Tag {
	if idx < 0 || idx >= len(supported) {
		return DefaultTag()
	}
	return supported[idx]
}
