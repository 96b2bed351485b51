// Package textkit provides small text-analysis utilities over literal text
// or text files: word-frequency counting, unique-word extraction,
// adjacent-word co-occurrence pairing, and lazy line iteration.
//
// Every operation shares one normalizer: characters outside [A-Za-z0-9\s]
// are deleted (so punctuation merges neighboring characters instead of
// separating them), the remainder is lowercased, and words are split on
// runs of whitespace.
//
// Input is described by a Source. Detect reproduces the classic
// convenience of passing "text or a file path" in one string and resolving
// the ambiguity with a filesystem probe; Text and File pin the
// interpretation explicitly for callers that cannot tolerate the probe's
// ambiguity.
//
// File sources are processed one line at a time, so inputs larger than
// memory are fine. The operations are synchronous and keep no state
// between calls; the only held resource is the line iterator's file
// handle, which is released when iteration ends or is abandoned.
package textkit
