package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndStatus(t *testing.T) {
	var out bytes.Buffer
	code := -1
	prevStderr, prevExit := exitStderr, exit
	exitStderr = &out
	exit = func(c int) { code = c }
	t.Cleanup(func() { exitStderr, exit = prevStderr, prevExit })

	Exitf("export: %s", "no pages")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if out.String() != "export: no pages\n" {
		t.Fatalf("output = %q, want %q", out.String(), "export: no pages\n")
	}
}
