package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readAddressList returns the non-empty, non-comment lines of r, trimmed.
// Text after a # is a comment.
func readAddressList(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.ContainsAny(text, " \t") {
			return nil, fmt.Errorf("line %d: expected one address, got %q", line, text)
		}
		out = append(out, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading address list: %w", err)
	}
	return out, nil
}
