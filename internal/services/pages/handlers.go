package pages

import (
	"log"
	"net/http"
	"strings"

	platformi18n "github.com/mrbrightsides/rantai-pages/internal/platform/i18n"
	apperrors "github.com/mrbrightsides/rantai-pages/internal/services/pages/platform/errors"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/platform/httpx"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/platform/langhttp"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/rendercache"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/routepath"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/site"
	pagesstatic "github.com/mrbrightsides/rantai-pages/internal/services/pages/static"
	"golang.org/x/text/language"
)

type handlers struct {
	renderer *Renderer
	cache    *rendercache.Cache
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.PagePrefix+"{slug}", h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(pagesstatic.FS))))
	mux.HandleFunc(http.MethodGet+" /", h.handleNotFound)
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, resolveLanguage(w, r), h.renderer.Site().DefaultPage())
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	tag := resolveLanguage(w, r)
	slug := r.PathValue("slug")
	page, ok := h.renderer.Site().Page(slug)
	if !ok {
		h.writeErrorPage(w, r, tag, apperrors.EK(apperrors.KindNotFound, platformi18n.KeyNotFound, "unknown page "+slug))
		return
	}
	h.servePage(w, r, tag, page)
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeErrorPage(w, r, resolveLanguage(w, r), apperrors.EK(apperrors.KindNotFound, platformi18n.KeyNotFound, "no route for "+r.URL.Path))
}

// servePage and writeErrorPage take the tag already resolved for r so the
// language cookie is written at most once per response.
func (h handlers) servePage(w http.ResponseWriter, r *http.Request, tag language.Tag, page site.Page) {
	entry, err := h.cache.GetOrRender(rendercache.Key(page.Slug, tag.String()), func() ([]byte, error) {
		return h.renderer.RenderPage(httpx.RequestContext(r), page, tag)
	})
	if err != nil {
		log.Printf("render page failed slug=%s lang=%s err=%v", page.Slug, tag, err)
		h.writeErrorPage(w, r, tag, err)
		return
	}
	header := w.Header()
	header.Set("ETag", entry.ETag)
	header.Set("Cache-Control", "no-cache")
	header.Set("Vary", "Accept-Language, Cookie")
	if etagMatches(r.Header.Get("If-None-Match"), entry.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, entry.Body)
}

func (h handlers) writeErrorPage(w http.ResponseWriter, r *http.Request, tag language.Tag, cause error) {
	body, err := h.renderer.RenderError(httpx.RequestContext(r), cause, tag)
	if err != nil {
		log.Printf("render error page failed cause=%v err=%v", cause, err)
		httpx.WriteError(w, cause)
		return
	}
	_ = httpx.WriteHTML(w, apperrors.HTTPStatus(cause), body)
}

func resolveLanguage(w http.ResponseWriter, r *http.Request) language.Tag {
	tag, persist := langhttp.ResolveTag(r)
	if persist {
		langhttp.SetLanguageCookie(w, tag)
	}
	return tag
}

func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}
