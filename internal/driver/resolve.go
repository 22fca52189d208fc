package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fen/internal/diag"
	"fen/internal/project"
	"fen/internal/resolved"
	"fen/internal/resolver"
	"fen/internal/source"
)

// Options tunes one driver run. Zero values fall back to the manifest
// defaults.
type Options struct {
	MaxDiagnostics int
	Jobs           int
	Dedup          bool
	Observer       PhaseObserver
	Cache          *ExportCache // nil disables export caching
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = project.DefaultMaxDiagnostics
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	return o
}

// ResolveUnits runs the two-phase pipeline over a set of units: a single
// sequential declare pass builds the shared registry and module tree, then
// every unit is resolved in parallel against the now read-only tables.
// Declare-phase diagnostics land in the returned bag; per-unit diagnostics
// land in each Result's bag.
func ResolveUnits(ctx context.Context, interner *source.Interner, units []Unit, opts Options) (*resolver.Declarer, *diag.Bag, []Result, error) {
	opts = opts.withDefaults()

	declareBag := diag.NewBag(opts.MaxDiagnostics)
	declarer := resolver.NewDeclarer(interner, diag.BagReporter{Bag: declareBag})

	endDeclare := opts.Observer.observe(PhaseDeclare)
	unitNS := make([]resolved.NamespaceID, len(units))
	for i, unit := range units {
		unitNS[i] = declarer.DeclareProgram(unit.Path, unit.Program)
	}
	// Re-exports run once every unit is declared, so a public use can
	// point at a unit declared later in the list.
	for i, unit := range units {
		declarer.ReExports(unitNS[i], unit.Program)
	}
	endDeclare()

	// Refresh the on-disk export surfaces. A digest hit means the unit is
	// unchanged since the last run and its payload is already installed.
	if opts.Cache != nil {
		for i, unit := range units {
			if unit.Digest.IsZero() {
				continue
			}
			var cached ExportPayload
			if hit, err := opts.Cache.Get(unit.Digest, &cached); err == nil && hit {
				continue
			}
			if payload := ExportsOf(declarer.Registry, unitNS[i], interner, unit.Name, unit.Digest); payload != nil {
				_ = opts.Cache.Put(unit.Digest, payload)
			}
		}
	}

	results := make([]Result, len(units))

	endResolve := opts.Observer.observe(PhaseResolve)
	defer endResolve()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Jobs, max(len(units), 1)))
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			var reporter diag.Reporter = diag.BagReporter{Bag: bag}
			if opts.Dedup {
				reporter = diag.NewDedupReporter(reporter)
			}
			c := resolver.NewContext(declarer.Registry, declarer.Tree, unitNS[i], interner, reporter)
			results[i] = Result{
				Name:      unit.Name,
				Namespace: unitNS[i],
				Module:    c.ResolveProgram(unit.Program),
				Bag:       bag,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return declarer, declareBag, results, err
	}
	return declarer, declareBag, results, nil
}
