package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories first.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// CorpusFile writes content into a fresh temp file and returns its path.
// The file is removed with the test's temp directory.
func CorpusFile(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "corpus.txt")
	WriteFile(t, path, content)
	return path
}
