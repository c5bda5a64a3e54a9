// Package templates renders rantai-pages documents as templ components.
package templates

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

const (
	defaultLang       = "id"
	defaultStylesheet = "/static/pages.css"
)

// NavLink is one entry in the sidebar page switcher.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// PageView carries everything the page document needs. The embedded
// application is rendered from the context children.
type PageView struct {
	Lang            string
	Title           string
	SiteName        string
	Icon            string
	Centered        bool
	StylesheetHref  string
	SidebarImageURL string
	SidebarImageAlt string
	// SidebarHTML must already be sanitized.
	SidebarHTML string
	Nav         []NavLink
}

// ComposePageTitle appends the site name unless title already carries it.
func ComposePageTitle(title, siteName string) string {
	title = strings.TrimSpace(title)
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		return title
	}
	if title == "" || title == siteName {
		return siteName
	}
	if strings.HasSuffix(title, " | "+siteName) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+siteName); ok {
		return strings.TrimSpace(base) + " | " + siteName
	}
	return title + " | " + siteName
}

// FaviconHref returns an SVG data URI that draws icon as the favicon.
func FaviconHref(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return ""
	}
	svg := "<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>" +
		templ.EscapeString(icon) + "</text></svg>"
	return "data:image/svg+xml," + url.PathEscape(svg)
}

func documentLang(lang string) string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return lang
	}
	return defaultLang
}

func stylesheetHref(href string) string {
	if href = strings.TrimSpace(href); href != "" {
		return href
	}
	return defaultStylesheet
}

func layoutClass(centered bool) string {
	if centered {
		return "layout-centered"
	}
	return "layout-wide"
}
