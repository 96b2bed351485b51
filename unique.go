package textkit

// UniqueWords collects the set of distinct normalized words in src.
// File sources are processed line by line. Read failures are wrapped
// with ErrFileRead and carry the underlying cause.
func UniqueWords(src Source) (map[string]struct{}, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	words := make(map[string]struct{})
	collect := func(chunk string) {
		for _, word := range Words(chunk) {
			words[word] = struct{}{}
		}
	}

	if src.kind == SourceFile {
		if err := eachLine(src.value, collect); err != nil {
			return nil, wrapRead("read", src.value, err)
		}
		return words, nil
	}
	collect(src.value)
	return words, nil
}
