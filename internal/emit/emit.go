// Package emit renders validated theme records back into the text
// format a consuming subsystem reads.
package emit

import (
	"fmt"

	"github.com/opencode-ai/themer/internal/format"
	"github.com/opencode-ai/themer/internal/schema"
	"github.com/opencode-ai/themer/internal/theme"
)

// EmitError describes a value that could not be rendered: a nil value
// in a hand-built record, or text the target format cannot reproduce,
// such as a raw value spanning multiple lines in a line-oriented
// format.
type EmitError struct {
	Subsystem string
	Key       string
	Message   string
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit %s: key %s: %s", e.Subsystem, e.Key, e.Message)
}

// Emit renders a validated record in the schema's target format. Keys
// follow the schema's declared order, then any unknown keys in their
// record insertion order.
func Emit(record *theme.Record, s *schema.Schema) (string, error) {
	f, ok := format.Lookup(s.Format)
	if !ok {
		return "", fmt.Errorf("%w: %q", format.ErrUnknownFormat, s.Format)
	}

	pairs := make([]format.Pair, 0, record.Len())
	for _, entry := range s.Entries {
		value, present := record.Get(entry.Key)
		if !present {
			continue
		}
		if value == nil {
			return "", &EmitError{Subsystem: s.Subsystem, Key: entry.Key, Message: "unrenderable nil value"}
		}
		pairs = append(pairs, format.Pair{Key: entry.Key, Value: value.String()})
	}
	for _, key := range record.Keys() {
		if _, known := s.Entry(key); known {
			continue
		}
		value, _ := record.Get(key)
		if value == nil {
			return "", &EmitError{Subsystem: s.Subsystem, Key: key, Message: "unrenderable nil value"}
		}
		pairs = append(pairs, format.Pair{Key: key, Value: value.String()})
	}

	text, err := f.Encode(pairs)
	if err != nil {
		return "", &EmitError{Subsystem: s.Subsystem, Message: err.Error()}
	}
	return text, nil
}
