// Package format implements the descriptor text formats understood by
// the theme engine: shell-style assignments, INI with sections, and
// flat JSON objects. Each format decodes raw text into an untyped
// mapping and encodes ordered key/value pairs back to text.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/themer/internal/theme"
)

// Name identifies a descriptor text format.
type Name string

const (
	// ShellAssignment is key=value text with optional quoting and
	// #-prefixed comments, as used by shell-sourced theme files.
	ShellAssignment Name = "shell"
	// IniSections is key=value text grouped under [section] headers;
	// section names become key prefixes.
	IniSections Name = "ini"
	// JSON is a flat JSON object of key/value pairs.
	JSON Name = "json"
)

// ErrUnknownFormat is returned when a format name is not recognized.
var ErrUnknownFormat = errors.New("unknown descriptor format")

// ParseError describes a syntax failure in descriptor text. A failed
// parse is all-or-nothing; no partial mapping is produced.
type ParseError struct {
	Format  Name
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Format, e.Message)
}

// Pair is one ordered key/value pair handed to an encoder.
type Pair struct {
	Key   string
	Value string
}

// Format decodes descriptor text to a mapping and encodes ordered
// pairs back to descriptor text.
type Format interface {
	Name() Name
	Decode(text string) (*theme.Mapping, error)
	Encode(pairs []Pair) (string, error)
}

// Lookup returns the format implementation for name.
func Lookup(name Name) (Format, bool) {
	switch name {
	case ShellAssignment:
		return shellFormat{}, true
	case IniSections:
		return iniFormat{}, true
	case JSON:
		return jsonFormat{}, true
	default:
		return nil, false
	}
}

// Sniff guesses the format of descriptor text. It is a convenience
// fallback for callers without a format hint; production paths should
// pass an explicit format.
func Sniff(text string) Format {
	for _, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		if strings.HasPrefix(t, "{") {
			return jsonFormat{}
		}
		if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
			return iniFormat{}
		}
		return shellFormat{}
	}
	return shellFormat{}
}

// Decode parses text using the hinted format, or a sniffed one when
// hint is empty.
func Decode(text string, hint Name) (*theme.Mapping, error) {
	if hint == "" {
		return Sniff(text).Decode(text)
	}
	f, ok := Lookup(hint)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, hint)
	}
	return f.Decode(text)
}

// checkLinePair rejects a pair that a line-oriented encoding cannot
// reproduce: an empty key, or a key or value spanning multiple lines.
func checkLinePair(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	if strings.ContainsAny(key, "\n\r") {
		return fmt.Errorf("key %q: key spans multiple lines", key)
	}
	if strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("key %q: value spans multiple lines", key)
	}
	return nil
}

// unquote strips one matching pair of surrounding single or double
// quotes. Values are opaque strings; no word-splitting or substitution
// is performed. An unterminated opening quote is a syntax error.
func unquote(s string) (string, error) {
	if len(s) < 1 {
		return s, nil
	}
	q := s[0]
	if q != '\'' && q != '"' {
		return s, nil
	}
	if len(s) < 2 || s[len(s)-1] != q {
		return "", fmt.Errorf("unbalanced %c quote", q)
	}
	return s[1 : len(s)-1], nil
}

// quoteIfNeeded wraps a value in quotes when emitting it bare would
// change how it reads back.
func quoteIfNeeded(v string) string {
	if v == "" {
		return "''"
	}
	if strings.ContainsAny(v, " \t") || v[0] == '\'' || v[0] == '"' {
		if strings.Contains(v, "'") {
			return `"` + v + `"`
		}
		return "'" + v + "'"
	}
	return v
}
