package textkit

import "fmt"

// CoOccurrence returns the ordered window-length tuples of adjacent
// normalized words in src, in order of appearance. A chunk with fewer
// than window words contributes no tuples. For file sources every line
// is an independent chunk, so tuples never span line boundaries; literal
// text is a single chunk.
//
// window must be at least 1 or the call fails with ErrInvalidWindow.
// Read failures on file sources are wrapped with ErrFileRead.
func CoOccurrence(src Source, window int) ([][]string, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}
	if window < 1 {
		return nil, fmt.Errorf("%w: window must be at least 1, got %d", ErrInvalidWindow, window)
	}

	tuples := make([][]string, 0)
	pair := func(chunk string) {
		words := Words(chunk)
		for i := 0; i+window <= len(words); i++ {
			tuple := make([]string, window)
			copy(tuple, words[i:i+window])
			tuples = append(tuples, tuple)
		}
	}

	if src.kind == SourceFile {
		if err := eachLine(src.value, pair); err != nil {
			return nil, wrapRead("read", src.value, err)
		}
		return tuples, nil
	}
	pair(src.value)
	return tuples, nil
}
