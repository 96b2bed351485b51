package textkit

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// eachLine streams the file at path through fn one line at a time, with
// line terminators stripped. Lines may be arbitrarily long; a final
// chunk without a terminator still counts as a line. Open and read
// errors are returned as-is; callers decide whether to tag them with
// ErrFileRead.
func eachLine(path string, fn func(line string)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			fn(strings.TrimSuffix(line, "\r"))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
