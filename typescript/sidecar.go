package typescript

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
	"github.com/clrdecl/clrdecl/provider"
)

// Sidecar is the machine-readable companion to the declaration files:
// CLR binding info, everything that was omitted and why, the complete
// rename audit, and the explicit view layout. Runtime binding layers
// consume this instead of re-deriving decisions from the .d.ts text.
type Sidecar struct {
	RunID         string                  `json:"runId" yaml:"runId"`
	FormatVersion string                  `json:"formatVersion" yaml:"formatVersion"`
	Assemblies    []provider.AssemblyInfo `json:"assemblies" yaml:"assemblies"`

	Bindings  []Binding    `json:"bindings" yaml:"bindings"`
	Omissions []Omission   `json:"omissions,omitempty" yaml:"omissions,omitempty"`
	Renames   []Rename     `json:"renames" yaml:"renames"`
	Views     []ViewRecord `json:"views,omitempty" yaml:"views,omitempty"`
}

// Binding maps one emitted type back to its CLR identity.
type Binding struct {
	Type      string `json:"type" yaml:"type"`
	Namespace string `json:"namespace" yaml:"namespace"`
	TsName    string `json:"tsName" yaml:"tsName"`
}

// Omission records one member dropped from text output.
type Omission struct {
	Type    string `json:"type" yaml:"type"`
	Member  string `json:"member" yaml:"member"`
	ClrName string `json:"clrName" yaml:"clrName"`
	Reason  string `json:"reason" yaml:"reason"`
}

// Rename is one naming decision in the audit trail.
type Rename struct {
	Scope       string `json:"scope" yaml:"scope"`
	ClrName     string `json:"clrName" yaml:"clrName"`
	Final       string `json:"final" yaml:"final"`
	Strategy    string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	SuffixIndex int    `json:"suffixIndex,omitempty" yaml:"suffixIndex,omitempty"`
	Reason      string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ViewRecord describes one explicit interface view.
type ViewRecord struct {
	Owner     string   `json:"owner" yaml:"owner"`
	Interface string   `json:"interface" yaml:"interface"`
	Property  string   `json:"property" yaml:"property"`
	Members   []string `json:"members" yaml:"members"`
}

// BuildSidecar assembles the sidecar from the final graph and the
// naming decision log. Order follows graph and log order, both already
// deterministic.
func BuildSidecar(g *ir.SymbolGraph, r *namer.Renamer, manifest *provider.Manifest, runID string, includeInternal bool) *Sidecar {
	sc := &Sidecar{RunID: runID}
	if manifest != nil {
		sc.FormatVersion = manifest.FormatVersion
		sc.Assemblies = manifest.Assemblies
	}

	g.EachType(func(ns *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		if !namer.Emittable(t, includeInternal) {
			return
		}
		sc.Bindings = append(sc.Bindings, Binding{
			Type:      t.ID.Key(),
			Namespace: ns.Name,
			TsName:    t.TsEmitName,
		})
		for _, m := range t.Members() {
			b := m.Base()
			if b.EmitScope == ir.ScopeOmitted {
				sc.Omissions = append(sc.Omissions, Omission{
					Type:    t.ID.Key(),
					Member:  b.ID.Key(),
					ClrName: b.ClrName,
					Reason:  b.OmitReason,
				})
			}
		}
		for _, v := range t.ExplicitViews {
			rec := ViewRecord{
				Owner:     t.ID.Key(),
				Interface: v.Source.TypeID().Key(),
				Property:  v.PropertyName,
			}
			for _, id := range v.Members {
				rec.Members = append(rec.Members, id.Key())
			}
			sc.Views = append(sc.Views, rec)
		}
	})

	for _, d := range r.Decisions() {
		rename := Rename{
			Scope:       d.ScopeKey,
			ClrName:     d.ClrName,
			Final:       d.Final,
			SuffixIndex: d.SuffixIndex,
			Reason:      d.Reason,
			Source:      d.Source,
		}
		if d.Strategy != namer.StrategyNone {
			rename.Strategy = d.Strategy.String()
		}
		sc.Renames = append(sc.Renames, rename)
	}
	return sc
}

// Encode serializes the sidecar in the requested format ("json" or
// "yaml").
func (sc *Sidecar) Encode(format string) ([]byte, error) {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(sc)
		return out, errors.Wrap(err, "encoding sidecar yaml")
	default:
		out, err := json.MarshalIndent(sc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding sidecar json")
		}
		return append(out, '\n'), nil
	}
}
