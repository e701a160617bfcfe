package generator

import (
	"strings"
)

// Formatter rewrites generated code before it is synced. filename is the
// slash-separated path of the unit inside the tree.
type Formatter interface {
	Format(filename, code string) (string, error)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(filename, code string) (string, error)

// Format implements Formatter.
func (f FormatterFunc) Format(filename, code string) (string, error) {
	return f(filename, code)
}

// BasicFormatter normalizes whitespace: trailing spaces are trimmed, runs of
// blank lines collapse to one, leading blank lines are dropped and the unit
// ends with exactly one newline.
type BasicFormatter struct{}

// Format implements Formatter.
func (BasicFormatter) Format(_ string, code string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n") + "\n", nil
}
