package routepath

import "testing"

func TestPage(t *testing.T) {
	t.Parallel()

	if got := Page("iot-connect"); got != "/p/iot-connect" {
		t.Fatalf("Page() = %q, want %q", got, "/p/iot-connect")
	}
	if got := Page("a b"); got != "/p/a%20b" {
		t.Fatalf("Page() = %q, want escaped slug", got)
	}
}
