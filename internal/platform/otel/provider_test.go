package otel_test

import (
	"context"
	"testing"

	"github.com/mrbrightsides/rantai-pages/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("RANTAI_PAGES_OTEL_ENDPOINT", "")
	t.Setenv("RANTAI_PAGES_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "pages-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("RANTAI_PAGES_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("RANTAI_PAGES_OTEL_ENABLED", "FALSE")

	shutdown, err := otel.Setup(context.Background(), "pages-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address, nothing is exported before shutdown.
	t.Setenv("RANTAI_PAGES_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("RANTAI_PAGES_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "pages-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("RANTAI_PAGES_OTEL_ENDPOINT", "")
	t.Setenv("RANTAI_PAGES_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
