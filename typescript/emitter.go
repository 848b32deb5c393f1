package typescript

import (
	"bytes"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/plan"
)

const indent = "    "

// Emitter writes the declaration text for one namespace file. It is
// purely mechanical: every identifier it writes was frozen by the
// naming phase, every placement by the shape engine.
type Emitter struct {
	printer *printer
}

// NewEmitter returns an emitter over the named graph.
func NewEmitter(g *ir.SymbolGraph) *Emitter {
	return &Emitter{printer: &printer{graph: g}}
}

// EmitNamespace renders one namespace plan into a .d.ts file body.
func (e *Emitter) EmitNamespace(np *plan.NamespacePlan) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	for _, imp := range np.Imports {
		buf.WriteString("import { ")
		for i, name := range imp.Names {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(name)
		}
		buf.WriteString(" } from \"./" + imp.To + "\";\n")
	}
	if len(np.Imports) > 0 {
		buf.WriteByte('\n')
	}

	for i, t := range np.Types {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := e.emitType(&buf, t); err != nil {
			return nil, errors.Wrapf(err, "emitting %s", t.ID.ClrFullName)
		}
	}
	return buf.Bytes(), nil
}

// EmitBarrel renders the index.d.ts re-exporting every namespace file.
func (e *Emitter) EmitBarrel(p *plan.Plan) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	for _, np := range p.Namespaces {
		buf.WriteString("export * from \"./" + np.Name + "\";\n")
	}
	return buf.Bytes()
}

const header = "// Code generated by clrdecl. DO NOT EDIT.\n\n"

func (e *Emitter) emitType(buf *bytes.Buffer, t *ir.TypeSymbol) error {
	if t.TsEmitName == "" {
		return errors.AssertionFailedf("type %s has no final name", t.ID.Key())
	}
	switch t.Kind {
	case ir.KindEnum:
		e.emitEnum(buf, t)
	case ir.KindDelegate:
		e.emitDelegate(buf, t)
	case ir.KindInterface:
		e.emitInterface(buf, t)
	default:
		e.emitClass(buf, t)
	}
	return nil
}

func (e *Emitter) emitEnum(buf *bytes.Buffer, t *ir.TypeSymbol) {
	buf.WriteString("export declare enum " + t.TsEmitName + " {\n")
	for _, m := range t.EnumMembers {
		buf.WriteString(indent + m.Name + " = " + strconv.FormatInt(m.Value, 10) + ",\n")
	}
	buf.WriteString("}\n")
}

// emitDelegate lowers a delegate to a function type alias built from
// its Invoke signature.
func (e *Emitter) emitDelegate(buf *bytes.Buffer, t *ir.TypeSymbol) {
	var invoke *ir.Method
	for _, m := range t.Methods {
		if m.ClrName == "Invoke" {
			invoke = m
			break
		}
	}
	buf.WriteString("export type " + t.TsEmitName + e.printer.typeParams(t.GenericParams) + " = ")
	if invoke == nil {
		buf.WriteString("(...args: unknown[]) => unknown;\n")
		return
	}
	buf.WriteString("(" + e.printer.params(invoke.Params) + ") => " + e.printer.ref(invoke.ReturnType) + ";\n")
}

func (e *Emitter) emitInterface(buf *bytes.Buffer, t *ir.TypeSymbol) {
	buf.WriteString("export interface " + t.TsEmitName + e.printer.typeParams(t.GenericParams))
	if len(t.Interfaces) > 0 {
		buf.WriteString(" extends ")
		for i, iface := range t.Interfaces {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(e.printer.ref(iface))
		}
	}
	buf.WriteString(" {\n")
	e.emitSurfaceMembers(buf, t, false)
	buf.WriteString("}\n")
}

func (e *Emitter) emitClass(buf *bytes.Buffer, t *ir.TypeSymbol) {
	buf.WriteString("export declare ")
	if t.Abstract && t.Kind == ir.KindClass {
		buf.WriteString("abstract ")
	}
	buf.WriteString("class " + t.TsEmitName + e.printer.typeParams(t.GenericParams))
	if t.BaseType != nil {
		buf.WriteString(" extends " + e.printer.ref(*t.BaseType))
	}
	if len(t.Interfaces) > 0 {
		buf.WriteString(" implements ")
		for i, iface := range t.Interfaces {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(e.printer.ref(iface))
		}
	}
	buf.WriteString(" {\n")
	for _, c := range t.Ctors {
		if c.EmitScope != ir.ScopeClassSurface && c.EmitScope != ir.ScopeStaticSurface {
			continue
		}
		buf.WriteString(indent + "constructor(" + e.printer.params(c.Params) + ");\n")
	}
	e.emitSurfaceMembers(buf, t, true)
	e.emitViews(buf, t)
	buf.WriteString("}\n")
}

// emitSurfaceMembers writes the class-surface and static-surface
// members in declaration order. Constructors are handled by the caller;
// omitted and view-only members never appear here.
func (e *Emitter) emitSurfaceMembers(buf *bytes.Buffer, t *ir.TypeSymbol, allowStatic bool) {
	for _, m := range t.Members() {
		b := m.Base()
		if m.MemberKind() == ir.MemberCtor {
			continue
		}
		switch b.EmitScope {
		case ir.ScopeClassSurface:
		case ir.ScopeStaticSurface:
			if !allowStatic {
				continue
			}
		default:
			continue
		}
		buf.WriteString(indent)
		if b.Static && allowStatic {
			buf.WriteString("static ")
		}
		e.emitMemberBody(buf, m)
	}
}

func (e *Emitter) emitMemberBody(buf *bytes.Buffer, m ir.Member) {
	b := m.Base()
	switch mm := m.(type) {
	case *ir.Method:
		buf.WriteString(b.TsEmitName + e.printer.typeParams(mm.GenericParams) +
			"(" + e.printer.params(mm.Params) + "): " + e.printer.ref(mm.ReturnType) + ";\n")
	case *ir.Property:
		if !mm.HasSetter {
			buf.WriteString("readonly ")
		}
		buf.WriteString(b.TsEmitName + ": " + e.printer.ref(mm.Type) + ";\n")
	case *ir.Field:
		if mm.Const || mm.ReadOnly {
			buf.WriteString("readonly ")
		}
		buf.WriteString(b.TsEmitName + ": " + e.printer.ref(mm.Type) + ";\n")
	case *ir.Event:
		buf.WriteString("readonly " + b.TsEmitName + ": " + e.printer.ref(mm.HandlerType) + ";\n")
	}
}

// emitViews writes each explicit view as a readonly property whose type
// is an inline object listing the view's members under their
// view-scoped names.
func (e *Emitter) emitViews(buf *bytes.Buffer, t *ir.TypeSymbol) {
	if len(t.ExplicitViews) == 0 {
		return
	}

	byID := make(map[string]ir.Member)
	for _, m := range t.Members() {
		byID[m.Base().ID.Key()] = m
	}

	for _, v := range t.ExplicitViews {
		buf.WriteString(indent + "readonly " + v.PropertyName + ": {\n")
		for _, id := range v.Members {
			m, ok := byID[id.Key()]
			if !ok {
				continue
			}
			buf.WriteString(indent + indent)
			e.emitMemberBody(buf, m)
		}
		buf.WriteString(indent + "};\n")
	}
}
