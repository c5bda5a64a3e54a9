// Package site loads the pages served by rantai-pages from a TOML file.
//
// Each page pairs a static sidebar with one embedded application. Page
// definitions are immutable once loaded.
package site

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	pagesembed "github.com/mrbrightsides/rantai-pages/internal/services/pages/embed"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/sidebar"
)

//go:embed defaults/*
var defaultsFS embed.FS

const defaultConfigName = "site.toml"

// Layout controls the page content width.
type Layout string

const (
	LayoutWide     Layout = "wide"
	LayoutCentered Layout = "centered"
)

// PageConfig is the page metadata set once at startup.
type PageConfig struct {
	Title  string
	Icon   string
	Layout Layout
}

// Page is one servable page.
type Page struct {
	Slug    string
	Config  PageConfig
	Sidebar sidebar.Content
	Embed   pagesembed.Params
}

// Site is an ordered, read-only set of pages.
type Site struct {
	name        string
	defaultSlug string
	pages       []Page
	bySlug      map[string]int
}

type fileConfig struct {
	Name        string       `toml:"name"`
	DefaultPage string       `toml:"default_page"`
	Pages       []pageConfig `toml:"pages"`
}

type pageConfig struct {
	Slug    string        `toml:"slug"`
	Title   string        `toml:"title"`
	Icon    string        `toml:"icon"`
	Layout  string        `toml:"layout"`
	Sidebar sidebarConfig `toml:"sidebar"`
	Embed   embedConfig   `toml:"embed"`
}

type sidebarConfig struct {
	Image        string `toml:"image"`
	ImageAlt     string `toml:"image_alt"`
	Markdown     string `toml:"markdown"`
	MarkdownFile string `toml:"markdown_file"`
}

type embedConfig struct {
	URL          string `toml:"url"`
	HideTopPx    *int   `toml:"hide_top_px"`
	HideBottomPx *int   `toml:"hide_bottom_px"`
	HeightPx     int    `toml:"height_px"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Default returns the built-in site.
func Default() (*Site, error) {
	files, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("open default site: %w", err)
	}
	data, err := fs.ReadFile(files, defaultConfigName)
	if err != nil {
		return nil, fmt.Errorf("read default site: %w", err)
	}
	return Parse(data, files)
}

// Load reads a site file. Sidebar markdown files resolve relative to the
// directory holding path.
func Load(path string) (*Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("site config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}
	s, err := Parse(data, os.DirFS(filepath.Dir(path)))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes site TOML. files serves markdown_file references and may be
// nil when no page uses one.
func Parse(data []byte, files fs.FS) (*Site, error) {
	var raw fileConfig
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("decode site config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown site config keys: %s", strings.Join(keys, ", "))
	}
	if len(raw.Pages) == 0 {
		return nil, errors.New("site config defines no pages")
	}

	s := &Site{
		name:   strings.TrimSpace(raw.Name),
		pages:  make([]Page, 0, len(raw.Pages)),
		bySlug: make(map[string]int, len(raw.Pages)),
	}
	for i, rawPage := range raw.Pages {
		page, err := buildPage(rawPage, files)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		if _, ok := s.bySlug[page.Slug]; ok {
			return nil, fmt.Errorf("page %d: duplicate slug %q", i+1, page.Slug)
		}
		s.bySlug[page.Slug] = len(s.pages)
		s.pages = append(s.pages, page)
	}

	s.defaultSlug = strings.TrimSpace(raw.DefaultPage)
	if s.defaultSlug == "" {
		s.defaultSlug = s.pages[0].Slug
	}
	if _, ok := s.bySlug[s.defaultSlug]; !ok {
		return nil, fmt.Errorf("default page %q is not defined", s.defaultSlug)
	}
	return s, nil
}

func buildPage(raw pageConfig, files fs.FS) (Page, error) {
	slug := strings.TrimSpace(raw.Slug)
	if !slugPattern.MatchString(slug) {
		return Page{}, fmt.Errorf("invalid slug %q", slug)
	}
	layout, err := parseLayout(raw.Layout)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", slug, err)
	}
	markdown, err := sidebarMarkdown(raw.Sidebar, files)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", slug, err)
	}

	params := pagesembed.Params{
		SourceURL:       raw.Embed.URL,
		HideTopPx:       intOr(raw.Embed.HideTopPx, pagesembed.DefaultHideTopPx),
		HideBottomPx:    intOr(raw.Embed.HideBottomPx, pagesembed.DefaultHideBottomPx),
		VisibleHeightPx: raw.Embed.HeightPx,
	}.WithDefaults()
	if err := params.Validate(); err != nil {
		return Page{}, fmt.Errorf("%s: embed: %w", slug, err)
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = slug
	}
	return Page{
		Slug: slug,
		Config: PageConfig{
			Title:  title,
			Icon:   strings.TrimSpace(raw.Icon),
			Layout: layout,
		},
		Sidebar: sidebar.Content{
			ImageURL: strings.TrimSpace(raw.Sidebar.Image),
			ImageAlt: strings.TrimSpace(raw.Sidebar.ImageAlt),
			Markdown: markdown,
		},
		Embed: params,
	}, nil
}

func parseLayout(value string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(value))) {
	case "", LayoutWide:
		return LayoutWide, nil
	case LayoutCentered:
		return LayoutCentered, nil
	default:
		return "", fmt.Errorf("unsupported layout %q", value)
	}
}

func sidebarMarkdown(cfg sidebarConfig, files fs.FS) (string, error) {
	name := strings.TrimSpace(cfg.MarkdownFile)
	if name == "" {
		return cfg.Markdown, nil
	}
	if cfg.Markdown != "" {
		return "", errors.New("sidebar sets both markdown and markdown_file")
	}
	if files == nil {
		return "", fmt.Errorf("sidebar markdown_file %q has no base directory", name)
	}
	data, err := fs.ReadFile(files, filepath.ToSlash(name))
	if err != nil {
		return "", fmt.Errorf("read sidebar markdown: %w", err)
	}
	return string(data), nil
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

// Name returns the configured site name.
func (s *Site) Name() string {
	return s.name
}

// Pages returns the pages in file order.
func (s *Site) Pages() []Page {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Page looks up a page by slug.
func (s *Site) Page(slug string) (Page, bool) {
	idx, ok := s.bySlug[slug]
	if !ok {
		return Page{}, false
	}
	return s.pages[idx], true
}

// DefaultPage returns the page served at the site root.
func (s *Site) DefaultPage() Page {
	return s.pages[s.bySlug[s.defaultSlug]]
}
