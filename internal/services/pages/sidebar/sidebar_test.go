package sidebar

import (
	"strings"
	"testing"
)

func TestRenderConvertsMarkdown(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	out, err := r.Render("📘 **About**\n\n- one\n- two\n\n---\n### 🧩 Ecosystem\n\n1. [STC Bench](https://stc-bench.streamlit.app/)\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, marker := range []string{
		"<strong>About</strong>",
		"<li>one</li>",
		"<hr",
		"<h3>🧩 Ecosystem</h3>",
		`href="https://stc-bench.streamlit.app/"`,
		`target="_blank"`,
	} {
		if !strings.Contains(out, marker) {
			t.Fatalf("render missing %q:\n%s", marker, out)
		}
	}
}

func TestRenderExpandsEmojiShortcodes(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer().Render("Built with :blue_heart:")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, ":blue_heart:") {
		t.Fatalf("shortcode not expanded:\n%s", out)
	}
}

func TestRenderStripsScripts(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer().Render("hi <script>alert(1)</script> [x](javascript:alert(1))")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "<script") || strings.Contains(out, "javascript:") {
		t.Fatalf("render kept unsafe markup:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer().Render("  \n ")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "" {
		t.Fatalf("Render() = %q, want empty", out)
	}
}

func TestRenderNilRenderer(t *testing.T) {
	t.Parallel()

	var r *Renderer
	if _, err := r.Render("x"); err == nil {
		t.Fatal("expected nil renderer error")
	}
}

func TestDedent(t *testing.T) {
	t.Parallel()

	got := Dedent("\n    **RANTAI PMS** adalah\n\n      - nested\n    - item\n")
	want := "**RANTAI PMS** adalah\n\n  - nested\n- item"
	if got != want {
		t.Fatalf("Dedent() = %q, want %q", got, want)
	}
	if got := Dedent("plain"); got != "plain" {
		t.Fatalf("Dedent(plain) = %q", got)
	}
}

func TestRenderIndentedMarkdownIsNotCodeBlock(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer().Render("\n    #### 🔮 Vision Statement\n\n    text\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "<pre>") {
		t.Fatalf("indented markdown rendered as code:\n%s", out)
	}
	if !strings.Contains(out, "<h4>") {
		t.Fatalf("render missing heading:\n%s", out)
	}
}
