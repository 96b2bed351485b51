package textkit

import (
	"errors"
	"path/filepath"
	"testing"

	"textkit/internal/testsupport"
)

func TestTextAndFileConstructors(t *testing.T) {
	text := Text("some words")
	if text.Kind() != SourceText || text.Value() != "some words" {
		t.Fatalf("Text source = %v/%q, want text/some words", text.Kind(), text.Value())
	}

	file := File("/no/check/happens/here.txt")
	if file.Kind() != SourceFile || file.Value() != "/no/check/happens/here.txt" {
		t.Fatalf("File source = %v/%q", file.Kind(), file.Value())
	}
}

func TestDetectPrefersExistingRegularFile(t *testing.T) {
	path := testsupport.CorpusFile(t, "hello from disk\n")

	src := Detect(path)
	if src.Kind() != SourceFile {
		t.Fatalf("Detect(existing file) kind = %v, want %v", src.Kind(), SourceFile)
	}
	if src.Value() != path {
		t.Fatalf("Detect value = %q, want %q", src.Value(), path)
	}
}

func TestDetectFallsBackToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain sentence", "the quick brown fox"},
		{"missing path", filepath.Join(t.TempDir(), "absent.txt")},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Detect(tt.input)
			if src.Kind() != SourceText {
				t.Errorf("Detect(%q) kind = %v, want %v", tt.input, src.Kind(), SourceText)
			}
		})
	}
}

func TestDetectIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if src := Detect(dir); src.Kind() != SourceText {
		t.Fatalf("Detect(directory) kind = %v, want %v", src.Kind(), SourceText)
	}
}

func TestZeroSourceRejected(t *testing.T) {
	var zero Source

	if _, err := WordFrequency(zero, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("WordFrequency(zero) error = %v, want ErrInvalidInput", err)
	}
	if _, err := UniqueWords(zero); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("UniqueWords(zero) error = %v, want ErrInvalidInput", err)
	}
	if _, err := CoOccurrence(zero, 2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("CoOccurrence(zero) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Lines(zero); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Lines(zero) error = %v, want ErrInvalidInput", err)
	}
}

func TestSourceKindString(t *testing.T) {
	tests := []struct {
		kind SourceKind
		want string
	}{
		{SourceText, "text"},
		{SourceFile, "file"},
		{SourceInvalid, "invalid"},
		{SourceKind(99), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("SourceKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
