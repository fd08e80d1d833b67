package format

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/themer/internal/theme"
)

// sectionSep joins a section name and a key into a flat mapping key,
// e.g. [urgency=high] + border-color -> "urgency=high.border-color".
const sectionSep = "."

type iniFormat struct{}

func (iniFormat) Name() Name { return IniSections }

// Decode parses INI-style text. Keys under a [section] header are
// prefixed with the section name; keys before any header stay bare.
func (iniFormat) Decode(text string) (*theme.Mapping, error) {
	mapping := theme.NewMapping()
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	section := ""

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, &ParseError{
					Format:  IniSections,
					Line:    lineNum,
					Message: "unterminated section header",
				}
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			if section == "" {
				return nil, &ParseError{
					Format:  IniSections,
					Line:    lineNum,
					Message: "empty section name",
				}
			}
			continue
		}

		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{
				Format:  IniSections,
				Line:    lineNum,
				Message: "expected key=value",
			}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, &ParseError{
				Format:  IniSections,
				Line:    lineNum,
				Message: "empty key",
			}
		}
		value, err := unquote(strings.TrimSpace(rawValue))
		if err != nil {
			return nil, &ParseError{
				Format:  IniSections,
				Line:    lineNum,
				Message: err.Error(),
			}
		}
		if section != "" {
			key = section + sectionSep + key
		}
		mapping.Set(key, value)
	}

	return mapping, nil
}

// Encode renders pairs back into sectioned INI text. A key containing
// the section separator is split at its first occurrence; bare keys
// come first, then sections in order of first appearance. Regrouping
// is inherent to the layout: a dotted key always lands under its
// section header regardless of where it sat in the input, and keys
// interleaved across sections come back grouped. Decoding the output
// yields the same mapping, not the same line order.
//
// A pair whose rendered line would decode differently, such as a
// value containing a newline or a key part containing =, is an error
// rather than broken output. Section names may contain = freely;
// only the part after the separator is held to key rules.
func (iniFormat) Encode(pairs []Pair) (string, error) {
	type sectionPairs struct {
		name  string
		pairs []Pair
	}

	var global []Pair
	var sections []*sectionPairs
	index := make(map[string]*sectionPairs)

	for _, p := range pairs {
		if err := checkLinePair(p.Key, p.Value); err != nil {
			return "", err
		}
		section, key, ok := strings.Cut(p.Key, sectionSep)
		if !ok {
			if err := checkIniKey(p.Key); err != nil {
				return "", err
			}
			global = append(global, p)
			continue
		}
		if section == "" {
			return "", fmt.Errorf("key %q: empty section name", p.Key)
		}
		if err := checkIniKey(key); err != nil {
			return "", err
		}
		sp, seen := index[section]
		if !seen {
			sp = &sectionPairs{name: section}
			index[section] = sp
			sections = append(sections, sp)
		}
		sp.pairs = append(sp.pairs, Pair{Key: key, Value: p.Value})
	}

	var out strings.Builder
	for _, p := range global {
		writeIniPair(&out, p)
	}
	for _, sp := range sections {
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteByte('[')
		out.WriteString(sp.name)
		out.WriteString("]\n")
		for _, p := range sp.pairs {
			writeIniPair(&out, p)
		}
	}
	return out.String(), nil
}

// checkIniKey rejects key parts whose rendered line would decode to a
// different key, or be misread as a header or comment.
func checkIniKey(key string) error {
	if key == "" {
		return errors.New("empty key")
	}
	if strings.Contains(key, "=") {
		return fmt.Errorf("key %q: key contains =", key)
	}
	if key != strings.TrimSpace(key) {
		return fmt.Errorf("key %q: key has surrounding whitespace", key)
	}
	if strings.HasPrefix(key, "#") || strings.HasPrefix(key, "[") {
		return fmt.Errorf("key %q: key reads as a comment or header", key)
	}
	return nil
}

func writeIniPair(out *strings.Builder, p Pair) {
	out.WriteString(p.Key)
	out.WriteString(" = ")
	out.WriteString(quoteIfNeeded(p.Value))
	out.WriteByte('\n')
}
