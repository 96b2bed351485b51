package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"textkit/internal/testsupport"
)

// runCLI executes the command tree with captured output. HOME points at
// a scratch directory so the user's real configuration never leaks in.
func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTestConfig writes a config file from the given TOML lines; with
// no lines it defaults to plain output and quiet logging so assertions
// see bare data.
func writeTestConfig(t *testing.T, lines ...string) string {
	t.Helper()
	if len(lines) == 0 {
		lines = []string{
			"[output]",
			`format = "plain"`,
			`color = "never"`,
			"",
			"[logging]",
			`level = "error"`,
		}
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteFile(t, path, strings.Join(lines, "\n")+"\n")
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
