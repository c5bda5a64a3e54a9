package pages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	platformi18n "github.com/mrbrightsides/rantai-pages/internal/platform/i18n"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/site"
	pagesstatic "github.com/mrbrightsides/rantai-pages/internal/services/pages/static"
	"golang.org/x/text/language"
)

const (
	exportStaticDir = "static"
	exportIndex     = "index.html"
)

// ExportFileName names the exported document for a page and language.
func ExportFileName(slug string, tag language.Tag) string {
	return slug + "." + tag.String() + ".html"
}

// Export writes every page in every supported language to dir, plus an
// index.html holding the default page in the default language and the
// stylesheet under static/. It returns the written paths relative to dir.
func Export(ctx context.Context, s *site.Site, dir string) ([]string, error) {
	if s == nil {
		return nil, errors.New("site is required")
	}
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(filepath.Join(dir, exportStaticDir), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var written []string
	write := func(name string, body []byte) error {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, name)
		return nil
	}

	defaultSlug := s.DefaultPage().Slug
	defaultTag := platformi18n.DefaultTag()
	for _, tag := range platformi18n.SupportedTags() {
		renderer, err := NewRenderer(s,
			WithPageHref(func(slug string) string { return ExportFileName(slug, tag) }),
			WithStylesheet(exportStaticDir+"/pages.css"),
		)
		if err != nil {
			return nil, err
		}
		for _, page := range s.Pages() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			body, err := renderer.RenderPage(ctx, page, tag)
			if err != nil {
				return nil, err
			}
			if err := write(ExportFileName(page.Slug, tag), body); err != nil {
				return nil, err
			}
			if page.Slug == defaultSlug && tag == defaultTag {
				if err := write(exportIndex, body); err != nil {
					return nil, err
				}
			}
		}
	}

	css, err := fs.ReadFile(pagesstatic.FS, "pages.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	if err := write(exportStaticDir+"/pages.css", css); err != nil {
		return nil, err
	}
	return written, nil
}
