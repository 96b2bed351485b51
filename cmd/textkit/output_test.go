package main

import (
	"bytes"
	"strings"
	"testing"

	"textkit/internal/testsupport"
)

func TestResolveOutputMode(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name     string
		format   string
		jsonFlag bool
		want     outputMode
	}{
		{"configured table", "table", false, modeTable},
		{"configured plain", "plain", false, modePlain},
		{"configured json", "json", false, modeJSON},
		{"auto without terminal", "auto", false, modePlain},
		{"json flag wins", "table", true, modeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testsupport.NewConfig(t, testsupport.WithOutputFormat(tt.format))
			if got := resolveOutputMode(cfg, tt.jsonFlag, &buf); got != tt.want {
				t.Errorf("resolveOutputMode(%q, %v) = %v, want %v", tt.format, tt.jsonFlag, got, tt.want)
			}
		})
	}
}

func TestShouldColorize(t *testing.T) {
	var buf bytes.Buffer

	cfg := testsupport.NewConfig(t)
	cfg.Output.Color = "always"
	if !shouldColorize(cfg, &buf) {
		t.Error("always must colorize even without a terminal")
	}

	cfg.Output.Color = "never"
	if shouldColorize(cfg, &buf) {
		t.Error("never must not colorize")
	}

	cfg.Output.Color = "auto"
	if shouldColorize(cfg, &buf) {
		t.Error("auto must not colorize a plain buffer")
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader("My Corpus", false)
	if len(lines) != 2 {
		t.Fatalf("expected header and rule, got %v", lines)
	}
	if lines[0] != "== My Corpus ==" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("rule %q does not match header width", lines[1])
	}

	colored := renderSectionHeader("My Corpus", true)
	if !strings.HasPrefix(colored[0], ansiBlue) || !strings.HasSuffix(colored[0], ansiReset) {
		t.Fatalf("colored header missing ANSI codes: %q", colored[0])
	}
}

func TestRenderTable(t *testing.T) {
	rendered := renderTable(
		[]string{"Word", "Count"},
		[][]string{{"alpha", "2"}, {"beta", "1"}},
		1,
	)

	for _, want := range []string{"Word", "Count", "alpha", "beta"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table output missing %q:\n%s", want, rendered)
		}
	}
	if renderTable(nil, nil) != "" {
		t.Error("headerless table must render empty")
	}
}
