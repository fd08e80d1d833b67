package format

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/opencode-ai/themer/internal/theme"
)

type shellFormat struct{}

func (shellFormat) Name() Name { return ShellAssignment }

// Decode parses shell-style assignments. Blank lines and lines whose
// first non-whitespace character is # are ignored; an optional
// "export " prefix is tolerated so sourced variable files read
// directly. A repeated key keeps its first position, last value wins.
func (shellFormat) Decode(text string) (*theme.Mapping, error) {
	mapping := theme.NewMapping()
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{
				Format:  ShellAssignment,
				Line:    lineNum,
				Message: "expected key=value",
			}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, &ParseError{
				Format:  ShellAssignment,
				Line:    lineNum,
				Message: "empty key",
			}
		}
		value, err := unquote(strings.TrimSpace(rawValue))
		if err != nil {
			return nil, &ParseError{
				Format:  ShellAssignment,
				Line:    lineNum,
				Message: err.Error(),
			}
		}
		mapping.Set(key, value)
	}

	return mapping, nil
}

// Encode renders one assignment per line. Values are quoted only when
// needed, matching how hand-written theme files look. A pair that one
// line of key=value text cannot reproduce, such as a value containing
// a newline or a key containing =, is an error rather than broken
// output.
func (shellFormat) Encode(pairs []Pair) (string, error) {
	var out strings.Builder
	for _, p := range pairs {
		if err := checkShellKey(p.Key); err != nil {
			return "", err
		}
		if err := checkLinePair(p.Key, p.Value); err != nil {
			return "", err
		}
		out.WriteString(p.Key)
		out.WriteByte('=')
		out.WriteString(quoteIfNeeded(p.Value))
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// checkShellKey rejects keys whose assignment line would decode to a
// different key, or not decode at all.
func checkShellKey(key string) error {
	if strings.Contains(key, "=") {
		return fmt.Errorf("key %q: key contains =", key)
	}
	if key != strings.TrimSpace(key) {
		return fmt.Errorf("key %q: key has surrounding whitespace", key)
	}
	if strings.HasPrefix(key, "#") {
		return fmt.Errorf("key %q: key reads as a comment", key)
	}
	if strings.HasPrefix(key, "export ") {
		return fmt.Errorf("key %q: export prefix is stripped on read", key)
	}
	return nil
}
