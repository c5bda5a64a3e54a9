package rendercache

import (
	"errors"
	"testing"
)

func TestGetOrRenderCachesBody(t *testing.T) {
	t.Parallel()

	c, err := New(4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("<p>page</p>"), nil
	}
	first, err := c.GetOrRender(Key("iot-connect", "id"), render)
	if err != nil {
		t.Fatalf("GetOrRender() error = %v", err)
	}
	second, err := c.GetOrRender(Key("iot-connect", "id"), render)
	if err != nil {
		t.Fatalf("GetOrRender() error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("render calls = %d, want 1", calls)
	}
	if string(second.Body) != "<p>page</p>" || first.ETag != second.ETag {
		t.Fatalf("cached entry = %+v, want %+v", second, first)
	}
}

func TestGetOrRenderEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, err := New(1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("x"), nil
	}
	_, _ = c.GetOrRender("a", render)
	_, _ = c.GetOrRender("b", render)
	_, _ = c.GetOrRender("a", render)
	if calls != 3 {
		t.Fatalf("render calls = %d, want 3", calls)
	}
}

func TestGetOrRenderDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	c, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := errors.New("render failed")
	if _, err := c.GetOrRender("k", func() ([]byte, error) { return nil, want }); !errors.Is(err, want) {
		t.Fatalf("GetOrRender() error = %v, want %v", err, want)
	}
	entry, err := c.GetOrRender("k", func() ([]byte, error) { return []byte("ok"), nil })
	if err != nil {
		t.Fatalf("GetOrRender() retry error = %v", err)
	}
	if string(entry.Body) != "ok" {
		t.Fatalf("Body = %q, want %q", entry.Body, "ok")
	}
}

func TestZeroSizeCacheAlwaysRenders(t *testing.T) {
	t.Parallel()

	c, err := New(0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	calls := 0
	for i := 0; i < 3; i++ {
		_, _ = c.GetOrRender("k", func() ([]byte, error) {
			calls++
			return []byte("x"), nil
		})
	}
	if calls != 3 {
		t.Fatalf("render calls = %d, want 3", calls)
	}
}

func TestETagIsStableAndQuoted(t *testing.T) {
	t.Parallel()

	a := ETag([]byte("same"))
	b := ETag([]byte("same"))
	if a != b {
		t.Fatalf("ETag not stable: %q vs %q", a, b)
	}
	if a[0] != '"' || a[len(a)-1] != '"' || len(a) != 34 {
		t.Fatalf("ETag = %q, want quoted 32 hex chars", a)
	}
	if ETag([]byte("other")) == a {
		t.Fatal("ETag collision for different bodies")
	}
}
