// Package routepath owns the URL paths served by the pages service.
package routepath

import "net/url"

const (
	Root         = "/"
	PagePrefix   = "/p/"
	Health       = "/healthz"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "pages.css"
)

// Page returns the path for a page slug.
func Page(slug string) string {
	return PagePrefix + url.PathEscape(slug)
}
