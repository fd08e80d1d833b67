package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themer/internal/config"
	"github.com/opencode-ai/themer/internal/geometry"
	"github.com/opencode-ai/themer/internal/resolver"
)

// Applier resolves every subsystem of a pack and writes the rendered
// descriptors to their configured output paths.
type Applier struct {
	resolver *resolver.Resolver
	cfg      *config.Config
	logger   zerolog.Logger
}

// ApplierOption configures an Applier.
type ApplierOption func(*Applier)

// WithLogger sets the logger used while applying packs.
func WithLogger(logger zerolog.Logger) ApplierOption {
	return func(a *Applier) {
		a.logger = logger
	}
}

// NewApplier creates an Applier.
func NewApplier(res *resolver.Resolver, cfg *config.Config, opts ...ApplierOption) *Applier {
	a := &Applier{
		resolver: res,
		cfg:      cfg,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply resolves every subsystem the pack targets, in name order, and
// returns the rendered text per subsystem. The first failing subsystem
// aborts the whole apply; nothing partial is returned.
func (a *Applier) Apply(p *Pack) (map[string]string, error) {
	if p == nil {
		return nil, fmt.Errorf("pack is required")
	}

	scale := 0.0
	if a.cfg.ScreenWidth > 0 {
		scale = geometry.ComputeScale(a.cfg.ScreenWidth)
	}

	names := make([]string, 0, len(p.Subsystems))
	for name := range p.Subsystems {
		names = append(names, name)
	}
	sort.Strings(names)

	outputs := make(map[string]string, len(names))
	for _, name := range names {
		sources := p.Subsystems[name]
		text, err := a.resolver.Resolve(resolver.Request{
			Theme:     p.Name,
			Subsystem: name,
			Base:      sources.Base,
			Overrides: sources.Overrides,
			Scale:     scale,
		})
		if err != nil {
			return nil, err
		}
		outputs[name] = text
	}

	a.logger.Info().
		Str("pack", p.Name).
		Int("subsystems", len(outputs)).
		Float64("scale", scale).
		Msg("pack applied")
	return outputs, nil
}

// Write stores rendered subsystem outputs at the paths configured for
// them. Subsystems with no configured output path are skipped.
func (a *Applier) Write(outputs map[string]string) error {
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path, ok := a.cfg.Outputs[name]
		if !ok || path == "" {
			a.logger.Debug().Str("subsystem", name).Msg("no output path configured, skipping")
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output dir for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(outputs[name]), 0o644); err != nil {
			return fmt.Errorf("write %s output %s: %w", name, path, err)
		}
		a.logger.Info().Str("subsystem", name).Str("path", path).Msg("output written")
	}
	return nil
}
