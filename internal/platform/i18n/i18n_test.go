package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsIndonesian(t *testing.T) {
	t.Parallel()

	if got := DefaultTag(); got != language.Indonesian {
		t.Fatalf("DefaultTag() = %v, want %v", got, language.Indonesian)
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   language.Tag
		wantOK bool
	}{
		{in: "en-US", want: language.AmericanEnglish, wantOK: true},
		{in: "id", want: language.Indonesian, wantOK: true},
		{in: "", want: language.Indonesian, wantOK: false},
		{in: "not a tag!", want: language.Indonesian, wantOK: false},
		{in: "ja", want: language.Indonesian, wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) = (%v, %t), want (%v, %t)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchTagsPrefersSupportedLanguage(t *testing.T) {
	t.Parallel()

	got := MatchTags([]language.Tag{language.Japanese, language.BritishEnglish})
	if got != language.AmericanEnglish {
		t.Fatalf("MatchTags() = %v, want %v", got, language.AmericanEnglish)
	}
	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want %v", got, DefaultTag())
	}
}

func TestPrinterTranslatesFallbackCopy(t *testing.T) {
	t.Parallel()

	if got := Printer(language.AmericanEnglish).Sprintf(KeyNotFound); got != "Page not found" {
		t.Fatalf("en not found = %q", got)
	}
	if got := Printer(language.Indonesian).Sprintf(KeyNotFound); got != "Halaman tidak ditemukan" {
		t.Fatalf("id not found = %q", got)
	}
}
