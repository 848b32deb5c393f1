package typescript

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/logger"
	"github.com/clrdecl/clrdecl/namer"
	"github.com/clrdecl/clrdecl/plan"
	"github.com/clrdecl/clrdecl/provider"
	"github.com/clrdecl/clrdecl/typescript/sink"
)

// sidecarBaseName is the sidecar file name without extension.
const sidecarBaseName = "clrdecl.meta"

// EmitOptions configures one emission run.
type EmitOptions struct {
	RunID           string
	SidecarFormat   string // "json" or "yaml"
	IncludeInternal bool
}

// Emit writes the complete output set through the sink: one .d.ts per
// namespace, the barrel index, and the binding sidecar. Emit consumes
// only graphs that passed the validation gate.
func Emit(ctx context.Context, g *ir.SymbolGraph, p *plan.Plan, r *namer.Renamer, manifest *provider.Manifest, out sink.OutputSink, opts EmitOptions) error {
	e := NewEmitter(g)

	for _, np := range p.Namespaces {
		body, err := e.EmitNamespace(np)
		if err != nil {
			return err
		}
		if err := out.WriteFile(ctx, np.FileName, body); err != nil {
			return errors.Wrapf(err, "writing %s", np.FileName)
		}
		logger.Logger.Debugw("namespace emitted",
			"file", np.FileName, "types", len(np.Types))
	}

	if err := out.WriteFile(ctx, "index.d.ts", e.EmitBarrel(p)); err != nil {
		return errors.Wrap(err, "writing barrel")
	}

	sc := BuildSidecar(g, r, manifest, opts.RunID, opts.IncludeInternal)
	encoded, err := sc.Encode(opts.SidecarFormat)
	if err != nil {
		return err
	}
	name := sidecarBaseName + "." + sidecarExt(opts.SidecarFormat)
	if err := out.WriteFile(ctx, name, encoded); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return nil
}

func sidecarExt(format string) string {
	if format == "yaml" {
		return "yaml"
	}
	return "json"
}
