package format

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/opencode-ai/themer/internal/theme"
)

type jsonFormat struct{}

func (jsonFormat) Name() Name { return JSON }

// Decode parses a flat JSON object. Decoding goes through the token
// stream rather than a map so source key order is preserved. Numbers
// and booleans are carried as their literal text; nested objects,
// arrays, and nulls are syntax errors because descriptors are flat.
func (jsonFormat) Decode(text string) (*theme.Mapping, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Format: JSON, Message: err.Error()}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &ParseError{Format: JSON, Message: "expected a JSON object"}
	}

	mapping := theme.NewMapping()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Format: JSON, Message: err.Error()}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &ParseError{Format: JSON, Message: "expected object key"}
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Format: JSON, Message: err.Error()}
		}
		switch v := valTok.(type) {
		case string:
			mapping.Set(key, v)
		case json.Number:
			mapping.Set(key, v.String())
		case bool:
			if v {
				mapping.Set(key, "true")
			} else {
				mapping.Set(key, "false")
			}
		default:
			return nil, &ParseError{
				Format:  JSON,
				Message: "key " + key + ": descriptor values must be flat scalars",
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, &ParseError{Format: JSON, Message: err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Format: JSON, Message: "trailing data after object"}
	}
	return mapping, nil
}

// Encode renders pairs as a pretty-printed flat JSON object in pair
// order. All values are emitted as JSON strings, matching how color
// scheme documents store hex colors.
func (jsonFormat) Encode(pairs []Pair) (string, error) {
	var out strings.Builder
	out.WriteString("{\n")
	for i, p := range pairs {
		key, err := json.Marshal(p.Key)
		if err != nil {
			return "", err
		}
		value, err := json.Marshal(p.Value)
		if err != nil {
			return "", err
		}
		out.WriteString("  ")
		out.Write(key)
		out.WriteString(": ")
		out.Write(value)
		if i < len(pairs)-1 {
			out.WriteByte(',')
		}
		out.WriteByte('\n')
	}
	out.WriteString("}\n")
	return out.String(), nil
}
