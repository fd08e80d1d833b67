// Package resolver orchestrates theme resolution: parse the base and
// override descriptors, merge them, validate against the target
// subsystem's schema, and emit the subsystem's native text.
package resolver

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themer/internal/emit"
	"github.com/opencode-ai/themer/internal/format"
	"github.com/opencode-ai/themer/internal/geometry"
	"github.com/opencode-ai/themer/internal/schema"
	"github.com/opencode-ai/themer/internal/theme"
	"github.com/opencode-ai/themer/internal/validate"
)

// Stage names the pipeline step a resolution failed in.
type Stage string

const (
	// StageLoad covers schema lookup and descriptor parsing.
	StageLoad Stage = "load"
	// StageMerge covers combining base and overrides.
	StageMerge Stage = "merge"
	// StageValidate covers schema validation.
	StageValidate Stage = "validate"
	// StageEmit covers rendering the subsystem output.
	StageEmit Stage = "emit"
)

// ResolveError wraps a stage failure with its theme and subsystem. The
// underlying error is a *format.ParseError, *validate.ViolationReport,
// or *emit.EmitError depending on the stage.
type ResolveError struct {
	Stage     Stage
	Theme     string
	Subsystem string
	Err       error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s/%s: %s: %v", e.Theme, e.Subsystem, e.Stage, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Source is one descriptor text plus an optional format hint. An empty
// hint falls back to content sniffing.
type Source struct {
	Text   string
	Format format.Name
}

// Request describes one theme resolution.
type Request struct {
	Theme     string
	Subsystem string
	Base      Source
	Overrides []Source

	// Scale is an optional display scale factor applied to schema
	// entries marked scaled, after merging. Zero means no scaling.
	Scale float64
}

// Resolver drives the resolution pipeline. All stages are pure, so a
// single Resolver is safe for concurrent use.
type Resolver struct {
	registry *schema.Registry
	logger   zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver backed by the given schema registry.
func New(registry *schema.Registry, opts ...Option) *Resolver {
	r := &Resolver{
		registry: registry,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs parse, merge, validate, and emit for one theme and
// subsystem. The first failing stage short-circuits; either a fully
// validated, fully emitted output is returned or nothing is.
func (r *Resolver) Resolve(req Request) (string, error) {
	start := time.Now()
	logger := r.logger.With().
		Str("run_id", uuid.NewString()).
		Str("theme", req.Theme).
		Str("subsystem", req.Subsystem).
		Logger()

	sch, ok := r.registry.Lookup(req.Subsystem)
	if !ok {
		err := &ResolveError{
			Stage:     StageLoad,
			Theme:     req.Theme,
			Subsystem: req.Subsystem,
			Err:       fmt.Errorf("%w: %q", schema.ErrSubsystemNotFound, req.Subsystem),
		}
		logger.Error().Err(err.Err).Msg("unknown subsystem")
		return "", err
	}

	base, err := format.Decode(req.Base.Text, req.Base.Format)
	if err != nil {
		logger.Error().Err(err).Msg("base descriptor failed to parse")
		return "", &ResolveError{Stage: StageLoad, Theme: req.Theme, Subsystem: req.Subsystem, Err: err}
	}

	overrides := make([]*theme.Mapping, 0, len(req.Overrides))
	for i, src := range req.Overrides {
		o, err := format.Decode(src.Text, src.Format)
		if err != nil {
			logger.Error().Err(err).Int("override", i).Msg("override descriptor failed to parse")
			return "", &ResolveError{Stage: StageLoad, Theme: req.Theme, Subsystem: req.Subsystem, Err: err}
		}
		overrides = append(overrides, o)
	}

	merged := theme.Merge(base, overrides...)
	if req.Scale > 0 {
		merged = geometry.Apply(merged, sch, geometry.Clamp(req.Scale))
	}

	record, err := validate.Validate(merged, sch)
	if err != nil {
		logger.Error().Err(err).Msg("validation failed")
		return "", &ResolveError{Stage: StageValidate, Theme: req.Theme, Subsystem: req.Subsystem, Err: err}
	}

	text, err := emit.Emit(record, sch)
	if err != nil {
		logger.Error().Err(err).Msg("emit failed")
		return "", &ResolveError{Stage: StageEmit, Theme: req.Theme, Subsystem: req.Subsystem, Err: err}
	}

	logger.Debug().
		Int("keys", record.Len()).
		Int("overrides", len(req.Overrides)).
		Dur("elapsed", time.Since(start)).
		Msg("theme resolved")
	return text, nil
}
