package templates

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/mrbrightsides/rantai-pages/internal/platform/i18n"
	"golang.org/x/text/language"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	return renderWithChildren(t, c, nil)
}

func renderWithChildren(t *testing.T, c templ.Component, children templ.Component) string {
	t.Helper()
	ctx := context.Background()
	if children != nil {
		ctx = templ.WithChildren(ctx, children)
	}
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title, site, want string
	}{
		{title: "STC IoT CONNECT", site: "", want: "STC IoT CONNECT"},
		{title: "STC IoT CONNECT", site: "RANTAI", want: "STC IoT CONNECT | RANTAI"},
		{title: "STC IoT CONNECT | RANTAI", site: "RANTAI", want: "STC IoT CONNECT | RANTAI"},
		{title: "STC IoT CONNECT - RANTAI", site: "RANTAI", want: "STC IoT CONNECT | RANTAI"},
		{title: "", site: "RANTAI", want: "RANTAI"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.title, tc.site); got != tc.want {
			t.Fatalf("ComposePageTitle(%q, %q) = %q, want %q", tc.title, tc.site, got, tc.want)
		}
	}
}

func TestFaviconHref(t *testing.T) {
	t.Parallel()

	if got := FaviconHref(" "); got != "" {
		t.Fatalf("FaviconHref(blank) = %q, want empty", got)
	}
	got := FaviconHref("🌀")
	if !strings.HasPrefix(got, "data:image/svg+xml,") {
		t.Fatalf("FaviconHref() = %q, want svg data uri", got)
	}
	if strings.ContainsAny(got, " <>") {
		t.Fatalf("FaviconHref() = %q, want escaped svg", got)
	}
}

func TestPageRendersMetadataSidebarAndEmbed(t *testing.T) {
	t.Parallel()

	embed := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<div class=\"embed\"></div>")
		return err
	})
	out := renderWithChildren(t, Page(PageView{
		Lang:            "en-US",
		Title:           "STC IoT CONNECT",
		Icon:            "🌀",
		SidebarImageURL: "https://i.imgur.com/7j5aq4l.png",
		SidebarImageAlt: "RANTAI",
		SidebarHTML:     "<p><strong>About</strong></p>",
		Nav: []NavLink{
			{Label: "IoT Connect", Href: "/p/iot-connect", Active: true},
			{Label: "Bench", Href: "/p/bench"},
		},
	}), embed)
	for _, marker := range []string{
		"<!doctype html>",
		`<html lang="en-US">`,
		"<title>STC IoT CONNECT</title>",
		`<link rel="icon" href="data:image/svg+xml,`,
		`<link rel="stylesheet" href="/static/pages.css">`,
		`<body class="layout-wide">`,
		`<img class="sidebar-image" src="https://i.imgur.com/7j5aq4l.png" alt="RANTAI">`,
		`<a href="/p/iot-connect" class="active" aria-current="page">IoT Connect</a>`,
		"<p><strong>About</strong></p>",
		`<div class="embed"></div>`,
	} {
		if !strings.Contains(out, marker) {
			t.Fatalf("page missing %q:\n%s", marker, out)
		}
	}
	if strings.Index(out, "</aside>") > strings.Index(out, `<div class="embed">`) {
		t.Fatalf("embed rendered before sidebar closed:\n%s", out)
	}
}

func TestPageCenteredLayoutAndSingleNavHidden(t *testing.T) {
	t.Parallel()

	out := render(t, Page(PageView{
		Title:    "Solo",
		Centered: true,
		Nav:      []NavLink{{Label: "Solo", Href: "/p/solo", Active: true}},
	}))
	if !strings.Contains(out, `<body class="layout-centered">`) {
		t.Fatalf("page missing centered layout:\n%s", out)
	}
	if strings.Contains(out, "page-nav") {
		t.Fatalf("single page should not render nav:\n%s", out)
	}
	if !strings.Contains(out, `<html lang="id">`) {
		t.Fatalf("page missing default lang:\n%s", out)
	}
}

func TestPageEscapesText(t *testing.T) {
	t.Parallel()

	out := render(t, Page(PageView{Title: "<b>x</b>", SidebarImageAlt: `"alt"`, SidebarImageURL: "/img.png"}))
	if strings.Contains(out, "<title><b>") {
		t.Fatalf("title not escaped:\n%s", out)
	}
	if !strings.Contains(out, `alt="&#34;alt&#34;"`) {
		t.Fatalf("alt not escaped:\n%s", out)
	}
}

func TestErrorPageIsLocalized(t *testing.T) {
	t.Parallel()

	out := render(t, ErrorPage(ErrorView{
		Lang:       "en-US",
		StatusCode: http.StatusNotFound,
		Loc:        i18n.Printer(language.AmericanEnglish),
	}))
	for _, marker := range []string{"<h1>404</h1>", "Page not found", `<a href="/">Back to home</a>`} {
		if !strings.Contains(out, marker) {
			t.Fatalf("error page missing %q:\n%s", marker, out)
		}
	}

	out = render(t, ErrorPage(ErrorView{StatusCode: http.StatusInternalServerError, Loc: i18n.Printer(language.Indonesian)}))
	if !strings.Contains(out, "Terjadi kesalahan") {
		t.Fatalf("error page missing indonesian copy:\n%s", out)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "hello %s", "world"); got != "hello world" {
		t.Fatalf("T() = %q, want %q", got, "hello world")
	}
}

func TestErrorPageTitlePrefersMessageKey(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(language.AmericanEnglish)
	if got := ErrorPageTitle(http.StatusInternalServerError, i18n.KeyNotFound, loc); got != "Page not found" {
		t.Fatalf("ErrorPageTitle() = %q, want %q", got, "Page not found")
	}
	if got := ErrorPageTitle(http.StatusInternalServerError, "", loc); got != "Something went wrong" {
		t.Fatalf("ErrorPageTitle() = %q, want %q", got, "Something went wrong")
	}
}

func TestPageSanitizesUnsafeLinks(t *testing.T) {
	t.Parallel()

	out := render(t, Page(PageView{
		Title:           "Links",
		SidebarImageURL: "javascript:alert(1)",
		Nav: []NavLink{
			{Label: "Home", Href: "/", Active: true},
			{Label: "Bad", Href: "javascript:alert(2)"},
		},
	}))
	if strings.Contains(out, "javascript:") {
		t.Fatalf("page kept script url:\n%s", out)
	}
	if !strings.Contains(out, `<body class="layout-wide">`) {
		t.Fatalf("page missing wide layout:\n%s", out)
	}
}

func TestErrorPageUsesMessageKeyAndHomeHref(t *testing.T) {
	t.Parallel()

	out := render(t, ErrorPage(ErrorView{
		Lang:       "en-US",
		SiteName:   "RANTAI",
		StatusCode: http.StatusInternalServerError,
		MessageKey: i18n.KeyNotFound,
		Loc:        i18n.Printer(language.AmericanEnglish),
		HomeHref:   "/p/home",
	}))
	for _, marker := range []string{"<title>Page not found | RANTAI</title>", "<h1>500</h1>", `<a href="/p/home">`, `<body class="layout-centered">`} {
		if !strings.Contains(out, marker) {
			t.Fatalf("error page missing %q:\n%s", marker, out)
		}
	}
}
