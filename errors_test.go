package textkit

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestWrapReadChain(t *testing.T) {
	cause := fs.ErrPermission
	err := wrapRead("read", "/data/corpus.txt", cause)

	if !errors.Is(err, ErrFileRead) {
		t.Fatalf("error = %v, want ErrFileRead in chain", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("error = %v, want cause preserved", err)
	}
	if !strings.Contains(err.Error(), "/data/corpus.txt") {
		t.Fatalf("error %q does not name the path", err)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidInput, ErrInvalidWindow, ErrFileRead}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v", a, b)
			}
		}
	}
}
