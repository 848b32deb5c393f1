package typescript

import (
	"strconv"
	"strings"

	"github.com/clrdecl/clrdecl/ir"
)

// printer lowers type references to TypeScript type expressions. It
// never decides names: emitted types print their frozen TsEmitName,
// well-known BCL types print their builtin lowering, and anything else
// prints as unknown (flagged by validation, not hidden by the printer).
type printer struct {
	graph *ir.SymbolGraph
}

func (p *printer) ref(r ir.TypeRef) string {
	switch r.Kind {
	case ir.RefGenericParam:
		return r.ParamName
	case ir.RefCycleBreak:
		return strings.TrimPrefix(r.FullName, "$")
	case ir.RefArray:
		elem := "unknown"
		if r.Elem != nil {
			elem = p.ref(*r.Elem)
		}
		if needsParens(elem) {
			elem = "(" + elem + ")"
		}
		return elem + strings.Repeat("[]", max(r.Rank, 1))
	case ir.RefPointer, ir.RefFunctionPtr:
		return "never"
	case ir.RefNamed:
		return p.named(r)
	default:
		return "unknown"
	}
}

func (p *printer) named(r ir.TypeRef) string {
	switch r.FullName {
	case "System.Nullable`1":
		if len(r.TypeArgs) == 1 {
			return p.ref(r.TypeArgs[0]) + " | null"
		}
		return "unknown | null"
	case "System.Collections.Generic.KeyValuePair`2":
		if len(r.TypeArgs) == 2 {
			return "[" + p.ref(r.TypeArgs[0]) + ", " + p.ref(r.TypeArgs[1]) + "]"
		}
		return "[unknown, unknown]"
	case "System.Threading.Tasks.Task", "System.Threading.Tasks.ValueTask":
		return "Promise<void>"
	}

	base := ""
	if t := p.graph.FindType(r.TypeID()); t != nil && t.TsEmitName != "" {
		base = t.TsEmitName
	} else if ts, ok := BuiltinType(r.FullName); ok {
		base = ts
	} else {
		return "unknown"
	}

	if len(r.TypeArgs) == 0 {
		return base
	}
	args := make([]string, len(r.TypeArgs))
	for i, a := range r.TypeArgs {
		args[i] = p.ref(a)
	}
	return base + "<" + strings.Join(args, ", ") + ">"
}

// needsParens reports whether a type expression must be parenthesized
// before an array suffix.
func needsParens(expr string) bool {
	return strings.ContainsAny(expr, "|&")
}

func (p *printer) params(params []ir.Param) string {
	parts := make([]string, 0, len(params))
	for i, param := range params {
		name := param.Name
		if name == "" {
			name = "arg" + strconv.Itoa(i)
		}
		opt := ""
		if param.Optional {
			opt = "?"
		}
		parts = append(parts, name+opt+": "+p.ref(param.Type))
	}
	return strings.Join(parts, ", ")
}

// typeParams prints a generic parameter list with resolved constraint
// bounds, or "" when there are none.
func (p *printer) typeParams(params []ir.GenericParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for i := range params {
		gp := &params[i]
		part := gp.Name
		if bounds := p.bounds(gp); bounds != "" {
			part += " extends " + bounds
		}
		parts = append(parts, part)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// bounds joins a parameter's resolved constraints into an intersection.
// Cycle sentinels and special constraints (class/struct/new) contribute
// no printable bound.
func (p *printer) bounds(gp *ir.GenericParam) string {
	var parts []string
	for _, ref := range gp.Resolved {
		if ref.Kind == ir.RefCycleBreak {
			continue
		}
		parts = append(parts, p.ref(ref))
	}
	return strings.Join(parts, " & ")
}
