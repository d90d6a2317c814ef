package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_OnlyFirstCallConfigures(t *testing.T) {
	var buf bytes.Buffer
	first := Init(Options{Level: "debug", Output: &buf})
	first.Info().Msg("first message")

	// A second Init must not reconfigure the singleton; the returned
	// logger still writes to the original output at the original level.
	second := Init(Options{Level: "error", Output: &bytes.Buffer{}})
	second.Info().Msg("second message")

	out := buf.String()
	if !strings.Contains(out, "first message") {
		t.Fatalf("first message missing from output: %q", out)
	}
	if !strings.Contains(out, "second message") {
		t.Fatalf("second Init reconfigured the singleton: %q", out)
	}
}
