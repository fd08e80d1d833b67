// Package validate checks parsed theme mappings against subsystem
// schemas, coercing raw strings into typed values.
package validate

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themer/internal/schema"
	"github.com/opencode-ai/themer/internal/theme"
)

// Reason classifies a validation violation.
type Reason string

const (
	// MissingRequired marks a required key with no default that the
	// mapping does not define.
	MissingRequired Reason = "missing-required"
	// MalformedColor marks a value that is not a valid hex color.
	MalformedColor Reason = "malformed-color"
	// MalformedPath marks an empty or invalid path.
	MalformedPath Reason = "malformed-path"
	// MalformedFont marks a value that is not a valid font spec.
	MalformedFont Reason = "malformed-font"
	// MalformedNumber marks a value that is not a valid number.
	MalformedNumber Reason = "malformed-number"
	// UnknownEnum marks a value outside an entry's allowed set.
	UnknownEnum Reason = "unknown-enum"
)

// Violation describes one offending key.
type Violation struct {
	Key    string
	Reason Reason
	Detail string
}

func (v Violation) String() string {
	if v.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", v.Key, v.Reason, v.Detail)
	}
	return fmt.Sprintf("%s: %s", v.Key, v.Reason)
}

// ViolationReport collects every violation found in one validation
// pass. It implements error so callers can surface it directly.
type ViolationReport struct {
	Subsystem  string
	Violations []Violation
}

func (r *ViolationReport) Error() string {
	parts := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %d violation(s): %s", r.Subsystem, len(r.Violations), strings.Join(parts, "; "))
}

func (r *ViolationReport) add(key string, reason Reason, detail string) {
	r.Violations = append(r.Violations, Violation{Key: key, Reason: reason, Detail: detail})
}

// Validate checks a merged mapping against a schema. Violations are
// collected exhaustively rather than failing on the first bad key, so
// one pass reports every problem. On success the returned record holds
// a typed value for every schema entry that resolved (from the mapping
// or its default), followed by unknown keys carried through as raw
// values in their source order. A record is never returned alongside
// violations.
func Validate(mapping *theme.Mapping, s *schema.Schema) (*theme.Record, error) {
	if mapping == nil {
		mapping = theme.NewMapping()
	}
	record := theme.NewRecord()
	report := &ViolationReport{Subsystem: s.Subsystem}

	for _, entry := range s.Entries {
		raw, present := mapping.Get(entry.Key)
		if !present {
			if entry.Default != nil {
				record.Set(entry.Key, entry.Default)
			} else if entry.Required {
				report.add(entry.Key, MissingRequired, "")
			}
			continue
		}

		value, reason, detail := coerce(raw, entry)
		if reason != "" {
			report.add(entry.Key, reason, detail)
			continue
		}
		record.Set(entry.Key, value)
	}

	// Unknown keys pass through untouched so consumer-specific
	// extensions survive a round trip.
	for _, key := range mapping.Keys() {
		if _, known := s.Entry(key); known {
			continue
		}
		raw, _ := mapping.Get(key)
		record.Set(key, theme.Raw(raw))
	}

	if len(report.Violations) > 0 {
		return nil, report
	}
	return record, nil
}

func coerce(raw string, entry schema.Entry) (theme.Value, Reason, string) {
	switch entry.Kind {
	case theme.KindColor:
		c, err := theme.ParseColor(raw)
		if err != nil {
			return nil, MalformedColor, err.Error()
		}
		return c, "", ""
	case theme.KindPath:
		p, err := theme.ParsePath(raw)
		if err != nil {
			return nil, MalformedPath, err.Error()
		}
		return p, "", ""
	case theme.KindFont:
		f, err := theme.ParseFontSpec(raw)
		if err != nil {
			return nil, MalformedFont, err.Error()
		}
		return f, "", ""
	case theme.KindNumber:
		n, err := theme.ParseNumber(raw)
		if err != nil {
			return nil, MalformedNumber, err.Error()
		}
		return n, "", ""
	case theme.KindEnum:
		for _, allowed := range entry.Enum {
			if raw == allowed {
				return theme.Enum(raw), "", ""
			}
		}
		return nil, UnknownEnum, fmt.Sprintf("%q not in [%s]", raw, strings.Join(entry.Enum, ", "))
	default:
		return theme.Raw(raw), "", ""
	}
}
