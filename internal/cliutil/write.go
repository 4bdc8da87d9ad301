// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) {
	for _, line := range lines {
		Writef(w, "%s\n", line)
	}
}

// ReadLines reads r to EOF and returns its lines without terminators.
// A trailing "\r" is dropped so CRLF input yields the same lines as LF.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cliutil: reading input: %w", err)
	}
	return lines, nil
}
