package fileutil

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrBinaryFile is returned by ReadLines for files containing a NUL byte
var ErrBinaryFile = errors.New("binary file")

// ReadLines calls fn for every line of the file at path with its 1-based line number.
// Line terminators ("\n" or "\r\n") are stripped; other content is passed verbatim.
//
// Files containing a NUL byte are treated as binary: fn is never called and
// ErrBinaryFile is returned. The file is read fully before fn runs, so no caller
// lock needs to be held across the blocking read.
func ReadLines(path string, fn func(lineNumber int, line string)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return fmt.Errorf("%s: %w", path, ErrBinaryFile)
	}

	reader := bufio.NewReader(bytes.NewReader(data))
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNumber++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fn(lineNumber, line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
}
