// Package embed renders an external web application inside a cropped iframe.
//
// The crop container shows VisibleHeightPx pixels of the remote page starting
// HideTopPx pixels below its top edge, so the remote header and footer stay
// out of view. Viewports up to 768px wide get a notice instead of the frame.
package embed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Defaults applied by WithDefaults.
const (
	DefaultVisibleHeightPx = 800
	DefaultHideTopPx       = 100
	DefaultHideBottomPx    = 0
)

// Params describes one embedded application.
type Params struct {
	SourceURL       string
	HideTopPx       int
	HideBottomPx    int
	VisibleHeightPx int
}

// Copy holds the user-facing fallback text.
type Copy struct {
	MobileNotice string
	MobileHint   string
	Unavailable  string
}

// DefaultCopy returns the Indonesian fallback text.
func DefaultCopy() Copy {
	return Copy{
		MobileNotice: "📱 Tampilan ini tidak tersedia di perangkat seluler.",
		MobileHint:   "Silakan buka lewat laptop atau desktop untuk pengalaman penuh 💻",
		Unavailable:  "Aplikasi untuk halaman ini belum dikonfigurasi.",
	}
}

func (c Copy) orDefault() Copy {
	def := DefaultCopy()
	if strings.TrimSpace(c.MobileNotice) == "" {
		c.MobileNotice = def.MobileNotice
	}
	if strings.TrimSpace(c.MobileHint) == "" {
		c.MobileHint = def.MobileHint
	}
	if strings.TrimSpace(c.Unavailable) == "" {
		c.Unavailable = def.Unavailable
	}
	return c
}

// WithDefaults fills an unset visible height and trims the source URL.
func (p Params) WithDefaults() Params {
	if p.VisibleHeightPx == 0 {
		p.VisibleHeightPx = DefaultVisibleHeightPx
	}
	p.SourceURL = strings.TrimSpace(p.SourceURL)
	return p
}

// ErrInvalidHeight reports a non-positive visible height.
var ErrInvalidHeight = errors.New("visible height must be positive")

// Validate checks the visible height. Offsets may be negative and an empty
// source URL is allowed; it renders the unavailable notice.
func (p Params) Validate() error {
	if p.VisibleHeightPx <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHeight, p.VisibleHeightPx)
	}
	return nil
}

// TotalHeightPx is the vertical space the embed allocates in the page.
func (p Params) TotalHeightPx() int {
	return p.VisibleHeightPx + p.HideTopPx + p.HideBottomPx
}

// FrameHeightPx is the iframe height inside the crop container.
func (p Params) FrameHeightPx() int {
	return p.TotalHeightPx()
}

// FrameOffsetPx is the iframe's top offset relative to the crop container.
func (p Params) FrameOffsetPx() int {
	return -p.HideTopPx
}

// Render returns the embed markup as a string. Equal inputs produce
// byte-identical output.
func Render(p Params, text Copy) (string, error) {
	var b strings.Builder
	if err := Component(p, text).Render(context.Background(), &b); err != nil {
		return "", fmt.Errorf("render embed: %w", err)
	}
	return b.String(), nil
}

func boxStyle(heightPx int) templ.Attributes {
	return templ.Attributes{"style": fmt.Sprintf("height:%dpx;", heightPx)}
}

func cropStyle(heightPx int) templ.Attributes {
	return templ.Attributes{"style": fmt.Sprintf("height:%dpx; overflow:hidden; position:relative;", heightPx)}
}

// frameStyle grows the frame past the crop container by the hidden rows
// and shifts it up by the hidden header.
func frameStyle(p Params) templ.Attributes {
	hidden := p.HideTopPx + p.HideBottomPx
	height := fmt.Sprintf("calc(100%% + %dpx)", hidden)
	if hidden < 0 {
		height = fmt.Sprintf("calc(100%% - %dpx)", -hidden)
	}
	return templ.Attributes{"style": fmt.Sprintf("width:100%%; height:%s; border:none; position:relative; top:%dpx;", height, p.FrameOffsetPx())}
}
