package textkit

import (
	"fmt"
	"os"
)

// SourceKind identifies how a Source's value is interpreted.
type SourceKind int

const (
	// SourceInvalid is the kind of the zero Source; operations reject it.
	SourceInvalid SourceKind = iota
	// SourceText marks literal text content.
	SourceText
	// SourceFile marks the path of a text file.
	SourceFile
)

// String returns the kind's lowercase label.
func (k SourceKind) String() string {
	switch k {
	case SourceText:
		return "text"
	case SourceFile:
		return "file"
	default:
		return "invalid"
	}
}

// Source carries one unit of analyzable input: either literal text
// content or the path of a text file. Construct it with Text, File, or
// Detect; the zero value is invalid and fails every operation with
// ErrInvalidInput.
type Source struct {
	kind  SourceKind
	value string
}

// Text returns a Source holding literal text content.
func Text(content string) Source {
	return Source{kind: SourceText, value: content}
}

// File returns a Source naming a text file. No existence check happens
// here; read failures surface according to each operation's error rules.
func File(path string) Source {
	return Source{kind: SourceFile, value: path}
}

// Detect resolves the classic text-or-path convenience: the argument
// names a file iff a regular file exists at that path at call time,
// otherwise it is literal text.
//
// The probe is a known footgun: literal text that happens to match an
// existing path is silently treated as a file. Callers that cannot
// tolerate that use Text or File directly.
func Detect(textOrFile string) Source {
	if info, err := os.Stat(textOrFile); err == nil && info.Mode().IsRegular() {
		return File(textOrFile)
	}
	return Text(textOrFile)
}

// Kind reports how the Source's value is interpreted.
func (s Source) Kind() SourceKind {
	return s.kind
}

// Value returns the literal text or file path carried by the Source.
func (s Source) Value() string {
	return s.value
}

func (s Source) validate() error {
	switch s.kind {
	case SourceText, SourceFile:
		return nil
	default:
		return fmt.Errorf("%w: source must be built with Text, File, or Detect", ErrInvalidInput)
	}
}
