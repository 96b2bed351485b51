package textkit

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"textkit/internal/logging"
)

// LinesOption customizes how Lines reports read failures.
type LinesOption func(*linesConfig)

type linesConfig struct {
	sink func(error)
}

// WithErrorSink routes read failures encountered during iteration to fn
// instead of the default logger. The sequence still ends after the first
// failure; the sink only observes it.
func WithErrorSink(fn func(error)) LinesOption {
	return func(cfg *linesConfig) {
		if fn != nil {
			cfg.sink = fn
		}
	}
}

// WithLogger reports read failures as warnings on logger.
func WithLogger(logger *slog.Logger) LinesOption {
	return func(cfg *linesConfig) {
		if logger == nil {
			return
		}
		cfg.sink = func(err error) {
			logger.Warn("line iteration read failure", logging.Error(err))
		}
	}
}

// Lines returns a lazy, forward-only, single-pass sequence of lines
// drawn from src.
//
// Literal text is normalized whole (the same character deletion and
// lowercasing as Normalize) and split on the newline character only;
// empty segments from consecutive newlines are yielded. File sources
// yield each raw line verbatim, trailing terminator included, in file
// order. The file opens when iteration begins and closes when iteration
// ends, fails, or the caller stops early.
//
// Unlike the other operations, read failures here are not fatal: the
// configured sink observes the error (by default a warning on
// slog.Default()) and the sequence simply ends. An unusable Source is
// still rejected eagerly with ErrInvalidInput.
func Lines(src Source, opts ...LinesOption) (iter.Seq[string], error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	cfg := linesConfig{sink: defaultLineSink}
	for _, opt := range opts {
		opt(&cfg)
	}

	if src.kind == SourceFile {
		return fileLines(src.value, cfg.sink), nil
	}
	return textLines(src.value), nil
}

func defaultLineSink(err error) {
	slog.Default().Warn("line iteration read failure", logging.Error(err))
}

func textLines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, segment := range strings.Split(Normalize(content), "\n") {
			if !yield(segment) {
				return
			}
		}
	}
}

func fileLines(path string, sink func(error)) iter.Seq[string] {
	return func(yield func(string) bool) {
		file, err := os.Open(path)
		if err != nil {
			sink(err)
			return
		}
		defer file.Close()

		reader := bufio.NewReader(file)
		for {
			line, err := reader.ReadString('\n')
			if line != "" && !yield(line) {
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					sink(err)
				}
				return
			}
		}
	}
}
