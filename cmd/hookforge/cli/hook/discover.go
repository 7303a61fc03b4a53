package hook

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/logging"
)

// Unit is one extension unit: a named group of hook implementations
// registered together. Units are plain values listed at a known entry
// point, so discovery order is the unit list order and nothing is
// loaded dynamically.
type Unit struct {
	// Name identifies the unit in diagnostics and listings, e.g.
	// "builtin/bashguard".
	Name string
	// SelfTest marks example units that exist for exercising the
	// pipeline. They are skipped unless explicitly included.
	SelfTest bool
	// Hooks yields the unit's candidates. An error here fails the
	// unit, not the discovery pass.
	Hooks func() ([]Candidate, error)
}

// Options controls a discovery pass.
type Options struct {
	// IncludeSelfTests also registers units marked SelfTest.
	IncludeSelfTests bool
	// Quiet suppresses per-hook registration confirmations.
	Quiet bool
	// Out receives registration confirmations. Nil or Quiet
	// discards them.
	Out io.Writer
	// Diag receives unit failures and registration warnings. Nil
	// discards them.
	Diag io.Writer
}

// Discover walks units in order and builds the registry for this
// invocation. A unit that fails to produce its hooks is reported to
// Diag and skipped; the rest of the pass continues. Disabled
// candidates are dropped before registration. Each surviving
// candidate is registered once per event kind its implementation can
// handle, in catalog order.
func Discover(units []Unit, opts Options) *Registry {
	out := opts.Out
	if opts.Quiet || out == nil {
		out = io.Discard
	}
	diag := opts.Diag
	if diag == nil {
		diag = io.Discard
	}

	ctx := logging.WithComponent(context.Background(), "discovery")
	reg := NewRegistry(out)

	for _, unit := range units {
		if unit.SelfTest && !opts.IncludeSelfTests {
			logging.Debug(ctx, "skipping self-test unit", slog.String("unit", unit.Name))
			continue
		}

		candidates, err := unit.Hooks()
		if err != nil {
			fmt.Fprintf(diag, "⚠️  Failed to load %s: %v\n", unit.Name, err)
			logging.Warn(ctx, "unit failed to load",
				slog.String("unit", unit.Name),
				slog.String("error", err.Error()),
			)
			continue
		}

		for _, c := range candidates {
			if c.Disabled {
				logging.Debug(ctx, "skipping disabled hook",
					slog.String("unit", unit.Name),
					slog.String("hook", c.Name),
				)
				continue
			}
			kinds := event.KindsOf(c.Impl)
			if len(kinds) == 0 {
				fmt.Fprintf(diag, "⚠️  Hook %s from %s handles no event kind\n", c.Name, unit.Name)
				continue
			}
			for _, kind := range kinds {
				if err := reg.Register(kind, c, unit.Name); err != nil {
					fmt.Fprintf(diag, "⚠️  Skipping %s.%s: %v\n", kind, c.Name, err)
				}
			}
		}
	}

	logging.Debug(ctx, "discovery complete", slog.Int("hooks", reg.Len()))
	return reg
}
