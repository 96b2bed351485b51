package main

import (
	"encoding/json"
	"strings"
	"testing"

	"textkit/internal/testsupport"
)

func TestCooccurCommandPlain(t *testing.T) {
	cfgPath := writeTestConfig(t)

	stdout, _, err := runCLI(t, cfgPath, "cooccur", "--text", "the quick brown fox", "--window", "2")
	if err != nil {
		t.Fatalf("cooccur returned error: %v", err)
	}

	want := "the quick\nquick brown\nbrown fox\n"
	if stdout != want {
		t.Fatalf("cooccur output = %q, want %q", stdout, want)
	}
}

func TestCooccurCommandWindowFromConfig(t *testing.T) {
	cfgPath := writeTestConfig(t,
		"[analysis]",
		"default_window = 3",
		"",
		"[output]",
		`format = "plain"`,
		`color = "never"`,
		"",
		"[logging]",
		`level = "error"`,
	)

	stdout, _, err := runCLI(t, cfgPath, "cooccur", "--text", "the quick brown fox")
	if err != nil {
		t.Fatalf("cooccur returned error: %v", err)
	}

	want := "the quick brown\nquick brown fox\n"
	if stdout != want {
		t.Fatalf("cooccur output = %q, want %q", stdout, want)
	}
}

func TestCooccurCommandWindowExceedsWords(t *testing.T) {
	cfgPath := writeTestConfig(t)

	stdout, _, err := runCLI(t, cfgPath, "cooccur", "--text", "ab", "--window", "3")
	if err != nil {
		t.Fatalf("cooccur returned error: %v", err)
	}
	if stdout != "" {
		t.Fatalf("cooccur output = %q, want empty", stdout)
	}
}

func TestCooccurCommandRejectsWindowBelowOne(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, _, err := runCLI(t, cfgPath, "cooccur", "--text", "some words", "--window", "0")
	if err == nil || !strings.Contains(err.Error(), "invalid window") {
		t.Fatalf("error = %v, want invalid window", err)
	}
}

func TestCooccurCommandJSON(t *testing.T) {
	cfgPath := writeTestConfig(t)

	stdout, _, err := runCLI(t, cfgPath, "cooccur", "--text", "a b c", "--window", "2", "--json")
	if err != nil {
		t.Fatalf("cooccur returned error: %v", err)
	}

	var report struct {
		Window int        `json:"window"`
		Tuples [][]string `json:"tuples"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("unmarshal output %q: %v", stdout, err)
	}
	if report.Window != 2 {
		t.Fatalf("window = %d, want 2", report.Window)
	}
	if len(report.Tuples) != 2 || report.Tuples[0][0] != "a" || report.Tuples[0][1] != "b" {
		t.Fatalf("tuples = %v, want [[a b] [b c]]", report.Tuples)
	}
}

func TestCooccurCommandFileKeepsLinesSeparate(t *testing.T) {
	cfgPath := writeTestConfig(t)
	path := testsupport.CorpusFile(t, "alpha beta\ngamma delta\n")

	stdout, _, err := runCLI(t, cfgPath, "cooccur", "--file", path, "--window", "2")
	if err != nil {
		t.Fatalf("cooccur returned error: %v", err)
	}

	want := "alpha beta\ngamma delta\n"
	if stdout != want {
		t.Fatalf("cooccur output = %q, want %q", stdout, want)
	}
}

func TestCooccurCommandTableMode(t *testing.T) {
	cfgPath := writeTestConfig(t,
		"[output]",
		`format = "table"`,
		`color = "never"`,
		"",
		"[logging]",
		`level = "error"`,
	)

	stdout, _, err := runCLI(t, cfgPath, "cooccur", "--text", "one two three", "--window", "2")
	if err != nil {
		t.Fatalf("cooccur returned error: %v", err)
	}

	requireContains(t, stdout, "Word 1")
	requireContains(t, stdout, "Word 2")
	requireContains(t, stdout, "2 tuples of 2 words")
}
