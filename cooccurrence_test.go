package textkit

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"

	"textkit/internal/testsupport"
)

func TestCoOccurrencePairs(t *testing.T) {
	got, err := CoOccurrence(Text("the quick brown fox"), 2)
	if err != nil {
		t.Fatalf("CoOccurrence returned error: %v", err)
	}

	want := [][]string{
		{"the", "quick"},
		{"quick", "brown"},
		{"brown", "fox"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CoOccurrence = %v, want %v", got, want)
	}
}

func TestCoOccurrenceWindowExceedsWords(t *testing.T) {
	got, err := CoOccurrence(Text("ab"), 3)
	if err != nil {
		t.Fatalf("CoOccurrence returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("CoOccurrence = %v, want no tuples", got)
	}
}

func TestCoOccurrenceWindowOneYieldsEveryWord(t *testing.T) {
	text := "one two three four five"

	got, err := CoOccurrence(Text(text), 1)
	if err != nil {
		t.Fatalf("CoOccurrence returned error: %v", err)
	}
	words := Words(text)
	if len(got) != len(words) {
		t.Fatalf("window 1 produced %d tuples, want %d", len(got), len(words))
	}
	for i, tuple := range got {
		if len(tuple) != 1 || tuple[0] != words[i] {
			t.Errorf("tuple[%d] = %v, want [%s]", i, tuple, words[i])
		}
	}
}

func TestCoOccurrenceWindowEqualsWordCount(t *testing.T) {
	got, err := CoOccurrence(Text("alpha beta gamma"), 3)
	if err != nil {
		t.Fatalf("CoOccurrence returned error: %v", err)
	}

	want := [][]string{{"alpha", "beta", "gamma"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CoOccurrence = %v, want %v", got, want)
	}
}

func TestCoOccurrenceRejectsWindowBelowOne(t *testing.T) {
	for _, window := range []int{0, -1, -100} {
		_, err := CoOccurrence(Text("some words here"), window)
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("CoOccurrence(window=%d) error = %v, want ErrInvalidWindow", window, err)
		}
	}
}

func TestCoOccurrenceFileKeepsLinesSeparate(t *testing.T) {
	path := testsupport.CorpusFile(t, "alpha beta\ngamma delta\n")

	got, err := CoOccurrence(File(path), 2)
	if err != nil {
		t.Fatalf("CoOccurrence returned error: %v", err)
	}

	// No (beta, gamma) tuple: windows never cross line boundaries.
	want := [][]string{
		{"alpha", "beta"},
		{"gamma", "delta"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CoOccurrence = %v, want %v", got, want)
	}
}

func TestCoOccurrenceFileSkipsShortLines(t *testing.T) {
	path := testsupport.CorpusFile(t, "lonely\n\nfull pair here\n")

	got, err := CoOccurrence(File(path), 2)
	if err != nil {
		t.Fatalf("CoOccurrence returned error: %v", err)
	}

	want := [][]string{
		{"full", "pair"},
		{"pair", "here"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CoOccurrence = %v, want %v", got, want)
	}
}

func TestCoOccurrenceMissingFileWrapsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := CoOccurrence(File(path), 2)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrFileRead) {
		t.Fatalf("error = %v, want ErrFileRead in chain", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want underlying fs.ErrNotExist preserved", err)
	}
}
