package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLineCol parses "line:col", both 1-based.
func parseLineCol(s string) (line, col int, err error) {
	l, c, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid position %q (expected line:col)", s)
	}
	if line, err = strconv.Atoi(l); err != nil || line < 1 {
		return 0, 0, fmt.Errorf("invalid line in %q", s)
	}
	if col, err = strconv.Atoi(c); err != nil || col < 1 {
		return 0, 0, fmt.Errorf("invalid column in %q", s)
	}
	return line, col, nil
}

// parseLineRange parses "a:b" or a single line "a". An empty string
// selects every line and returns 0, 0.
func parseLineRange(s string) (from, to int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	a, b, ok := strings.Cut(s, ":")
	if from, err = strconv.Atoi(a); err != nil || from < 1 {
		return 0, 0, fmt.Errorf("invalid line range %q", s)
	}
	if !ok {
		return from, from, nil
	}
	if to, err = strconv.Atoi(b); err != nil || to < from {
		return 0, 0, fmt.Errorf("invalid line range %q", s)
	}
	return from, to, nil
}
