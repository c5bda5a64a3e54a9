package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "not found", err: EK(KindNotFound, "error.not_found", "page not found"), want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", EK(KindNotFound, "", "missing")), want: http.StatusNotFound},
		{name: "unknown kind", err: EK(KindUnknown, "", "?"), want: http.StatusInternalServerError},
		{name: "plain", err: stderrors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%s: HTTPStatus() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("render: %w", EK(KindNotFound, " error.not_found ", "missing"))
	if got := LocalizationKey(err); got != "error.not_found" {
		t.Fatalf("LocalizationKey() = %q, want %q", got, "error.not_found")
	}
	if got := LocalizationKey(stderrors.New("x")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != "not_found" {
		t.Fatalf("Error() = %q, want not_found", got)
	}
}
