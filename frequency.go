package textkit

// WordFilter decides whether a normalized word participates in an
// analysis. A nil WordFilter keeps every word.
type WordFilter func(word string) bool

// WordFrequency counts how often each normalized word occurs in src.
// File sources are processed line by line so large files are never held
// in memory whole; literal text is processed as one chunk. When filter
// is non-nil only the words it accepts are counted.
//
// Empty input yields an empty map. Read failures on file sources
// propagate raw, without the ErrFileRead marker.
func WordFrequency(src Source, filter WordFilter) (map[string]int, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	freq := make(map[string]int)
	count := func(chunk string) {
		for _, word := range Words(chunk) {
			if filter != nil && !filter(word) {
				continue
			}
			freq[word]++
		}
	}

	if src.kind == SourceFile {
		if err := eachLine(src.value, count); err != nil {
			return nil, err
		}
		return freq, nil
	}
	count(src.value)
	return freq, nil
}
