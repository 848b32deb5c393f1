// Package clrdecl converts CLR assembly metadata exports into
// TypeScript declaration files. The pipeline is strictly sequential:
// load, shape, name, plan, validate, emit. Every stage consumes the
// immutable output of the previous one; the only shared mutable state
// is the naming engine's append-only decision log.
package clrdecl

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/config"
	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/logger"
	"github.com/clrdecl/clrdecl/namer"
	"github.com/clrdecl/clrdecl/plan"
	"github.com/clrdecl/clrdecl/provider"
	"github.com/clrdecl/clrdecl/shape"
	"github.com/clrdecl/clrdecl/typescript"
	"github.com/clrdecl/clrdecl/typescript/sink"
	"github.com/clrdecl/clrdecl/validate"
)

// Result carries everything one pipeline run produced.
type Result struct {
	Graph    *ir.SymbolGraph
	Renamer  *namer.Renamer
	Plan     *plan.Plan
	Report   *validate.Report
	Manifest *provider.Manifest
}

// Check runs the pipeline up to and including the validation gate,
// without writing any output.
func Check(cfg config.Config) (*Result, error) {
	graph, manifest, err := provider.LoadAll(cfg.Inputs)
	if err != nil {
		return nil, err
	}

	rn := namer.New(namer.Options{
		TypeTransform:   namer.Transform(cfg.Policy.TypeNameTransform),
		MemberTransform: namer.Transform(cfg.Policy.MemberNameTransform),
		Overrides:       cfg.Policy.ExplicitNameOverrides,
	})

	shaped, err := shape.NewEngine(logger.Logger).Run(graph, rn)
	if err != nil {
		return nil, errors.Wrap(err, "shaping symbol graph")
	}

	if err := namer.Assign(shaped, rn, namer.AssignOptions{
		IncludeInternal: cfg.Policy.IncludeInternalTypes,
	}); err != nil {
		return nil, errors.Wrap(err, "assigning names")
	}

	p, err := plan.Build(shaped, plan.Options{
		IncludeInternal: cfg.Policy.IncludeInternalTypes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building emission plan")
	}

	report := validate.Run(shaped, rn, p, validate.Options{
		IncludeInternal:                cfg.Policy.IncludeInternalTypes,
		AllowConstructorConstraintLoss: cfg.Policy.AllowConstructorConstraintLoss,
	})

	return &Result{
		Graph:    shaped,
		Renamer:  rn,
		Plan:     p,
		Report:   report,
		Manifest: manifest,
	}, nil
}

// Generate runs the full pipeline and, when the validation gate passes,
// writes the declaration files and sidecar through the sink. A blocked
// report is not an error: the caller inspects Result.Report and decides
// how to surface it.
func Generate(ctx context.Context, cfg config.Config, out sink.OutputSink, runID string) (*Result, error) {
	res, err := Check(cfg)
	if err != nil {
		return nil, err
	}
	if res.Report.Blocked() {
		logger.Logger.Warnw("validation blocked emission",
			"errors", res.Report.Errors, "warnings", res.Report.Warnings)
		return res, nil
	}

	err = typescript.Emit(ctx, res.Graph, res.Plan, res.Renamer, res.Manifest, out, typescript.EmitOptions{
		RunID:           runID,
		SidecarFormat:   cfg.SidecarFormat,
		IncludeInternal: cfg.Policy.IncludeInternalTypes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "emitting declarations")
	}
	return res, nil
}
