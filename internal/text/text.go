// Package text provides text manipulation functions
// for help output, commit messages, and test fixtures.
package text

import "strings"

// Dedent removes the common indent from all lines in a string.
// It allows writing multi-line strings in Go source
// at the indentation level of the surrounding code:
//
//	const s = text.Dedent(`
//		foo
//		  bar
//	`)
//
// yields "foo\n  bar".
//
// The indent is taken from the first non-blank line.
// Leading blank lines are dropped,
// and a trailing whitespace-only line is dropped.
// Lines that do not carry the indent are kept as-is.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return ""
	}
	if last := lines[len(lines)-1]; len(lines) > 1 && strings.TrimSpace(last) == "" {
		lines = lines[:len(lines)-1]
	}

	first := lines[0]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines, "\n")
}

// Indent prefixes every non-empty line of s with the given prefix.
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Subject returns the first line of a commit message,
// with surrounding whitespace removed.
func Subject(msg string) string {
	msg = strings.TrimSpace(msg)
	subject, _, _ := strings.Cut(msg, "\n")
	return strings.TrimSpace(subject)
}
