package pages

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/a-h/templ"
	platformi18n "github.com/mrbrightsides/rantai-pages/internal/platform/i18n"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/embed"
	apperrors "github.com/mrbrightsides/rantai-pages/internal/services/pages/platform/errors"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/routepath"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/sidebar"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/site"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/templates"
	"golang.org/x/text/language"
)

// Renderer turns site pages into complete HTML documents.
type Renderer struct {
	site        *site.Site
	sidebarHTML map[string]string
	pageHref    func(slug string) string
	stylesheet  string
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithPageHref sets how navigation links address other pages.
func WithPageHref(href func(slug string) string) RendererOption {
	return func(r *Renderer) {
		if href != nil {
			r.pageHref = href
		}
	}
}

// WithStylesheet sets the stylesheet href written into documents.
func WithStylesheet(href string) RendererOption {
	return func(r *Renderer) {
		r.stylesheet = href
	}
}

// NewRenderer converts every sidebar once so Markdown errors surface at
// startup.
func NewRenderer(s *site.Site, opts ...RendererOption) (*Renderer, error) {
	if s == nil {
		return nil, errors.New("site is required")
	}
	md := sidebar.NewRenderer()
	r := &Renderer{
		site:        s,
		sidebarHTML: make(map[string]string),
		pageHref:    routepath.Page,
		stylesheet:  routepath.Stylesheet,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, page := range s.Pages() {
		html, err := md.Render(page.Sidebar.Markdown)
		if err != nil {
			return nil, fmt.Errorf("render sidebar for %s: %w", page.Slug, err)
		}
		r.sidebarHTML[page.Slug] = html
	}
	return r, nil
}

// Site returns the site being rendered.
func (r *Renderer) Site() *site.Site {
	return r.site
}

// EmbedCopy returns the fallback text for tag.
func EmbedCopy(tag language.Tag) embed.Copy {
	p := platformi18n.Printer(tag)
	return embed.Copy{
		MobileNotice: p.Sprintf(platformi18n.KeyMobileNotice),
		MobileHint:   p.Sprintf(platformi18n.KeyMobileHint),
		Unavailable:  p.Sprintf(platformi18n.KeyUnavailable),
	}
}

// RenderPage renders page as a full document in tag's language.
func (r *Renderer) RenderPage(ctx context.Context, page site.Page, tag language.Tag) ([]byte, error) {
	nav := make([]templates.NavLink, 0, len(r.site.Pages()))
	for _, other := range r.site.Pages() {
		nav = append(nav, templates.NavLink{
			Label:  other.Config.Title,
			Href:   r.pageHref(other.Slug),
			Active: other.Slug == page.Slug,
		})
	}
	view := templates.PageView{
		Lang:            tag.String(),
		Title:           page.Config.Title,
		SiteName:        r.site.Name(),
		Icon:            page.Config.Icon,
		Centered:        page.Config.Layout == site.LayoutCentered,
		StylesheetHref:  r.stylesheet,
		SidebarImageURL: page.Sidebar.ImageURL,
		SidebarImageAlt: page.Sidebar.ImageAlt,
		SidebarHTML:     r.sidebarHTML[page.Slug],
		Nav:             nav,
	}
	ctx = templ.WithChildren(ctx, embed.Component(page.Embed, EmbedCopy(tag)))
	var buf bytes.Buffer
	if err := templates.Page(view).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render page %s: %w", page.Slug, err)
	}
	return buf.Bytes(), nil
}

// RenderError renders an error document for cause. The status comes from
// the cause's kind and the heading from its localization key.
func (r *Renderer) RenderError(ctx context.Context, cause error, tag language.Tag) ([]byte, error) {
	var buf bytes.Buffer
	err := templates.ErrorPage(templates.ErrorView{
		Lang:       tag.String(),
		SiteName:   r.site.Name(),
		StatusCode: apperrors.HTTPStatus(cause),
		MessageKey: apperrors.LocalizationKey(cause),
		Loc:        platformi18n.Printer(tag),
		HomeHref:   routepath.Root,
	}).Render(ctx, &buf)
	if err != nil {
		return nil, fmt.Errorf("render error page: %w", err)
	}
	return buf.Bytes(), nil
}
