package main

import (
	"bufio"
	"io"
	"strings"
)

// readLines returns the non-empty lines of r. Lines are not trimmed beyond
// the line terminator, so surrounding whitespace reaches the URL check.
func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	var out []string
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out, s.Err()
}

// isHex64 validates that a string is exactly 64 hexadecimal characters
func isHex64(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range []byte(s) {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
