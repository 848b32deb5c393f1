package provider

import (
	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
)

func convertType(assembly string, tj typeJSON) (*ir.TypeSymbol, error) {
	kind, err := parseKind(tj.Kind)
	if err != nil {
		return nil, err
	}
	vis, err := parseVisibility(tj.Visibility)
	if err != nil {
		return nil, err
	}

	t := &ir.TypeSymbol{
		ID:         ir.TypeStableID{Assembly: assembly, ClrFullName: tj.FullName},
		ClrName:    tj.FullName,
		Kind:       kind,
		Visibility: vis,
		Abstract:   tj.Abstract,
		Sealed:     tj.Sealed,
	}

	if tj.Base != nil {
		base := convertRef(*tj.Base)
		t.BaseType = &base
	}
	for _, rj := range tj.Interfaces {
		t.Interfaces = append(t.Interfaces, convertRef(rj))
	}
	t.GenericParams = convertGenericParams(tj.GenericParams)

	if err := convertMembers(assembly, tj, t); err != nil {
		return nil, err
	}

	for _, nj := range tj.Nested {
		nested, err := convertType(assembly, nj)
		if err != nil {
			return nil, err
		}
		t.Nested = append(t.Nested, nested)
	}

	for _, ej := range tj.EnumMembers {
		t.EnumMembers = append(t.EnumMembers, ir.EnumMember{Name: ej.Name, Value: ej.Value})
	}
	return t, nil
}

func convertMembers(assembly string, tj typeJSON, t *ir.TypeSymbol) error {
	for _, mj := range tj.Methods {
		vis, err := parseVisibility(mj.Visibility)
		if err != nil {
			return errors.Wrapf(err, "method %s", mj.Name)
		}
		params := convertParams(mj.Params)
		ret := convertRef(mj.Returns)
		m := &ir.Method{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly:      assembly,
					DeclaringType: tj.FullName,
					Name:          mj.Name,
					Signature:     ir.MethodSignature(ir.ParamTypeNames(params), ret.Erased()),
				},
				ClrName:    mj.Name,
				Visibility: vis,
				Static:     mj.Static,
			},
			Params:        params,
			ReturnType:    ret,
			GenericParams: convertGenericParams(mj.GenericParams),
			Abstract:      mj.Abstract,
			Virtual:       mj.Virtual,
			Override:      mj.Override,
			Hiding:        mj.Hides,
		}
		t.Methods = append(t.Methods, m)
	}

	for _, pj := range tj.Properties {
		vis, err := parseVisibility(pj.Visibility)
		if err != nil {
			return errors.Wrapf(err, "property %s", pj.Name)
		}
		indexParams := convertParams(pj.IndexParams)
		sig := ""
		if len(indexParams) > 0 {
			sig = ir.IndexerSignature(ir.ParamTypeNames(indexParams))
		}
		p := &ir.Property{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly:      assembly,
					DeclaringType: tj.FullName,
					Name:          pj.Name,
					Signature:     sig,
				},
				ClrName:    pj.Name,
				Visibility: vis,
				Static:     pj.Static,
			},
			Type:        convertRef(pj.Type),
			IndexParams: indexParams,
			HasGetter:   pj.HasGetter,
			HasSetter:   pj.HasSetter,
			Hiding:      pj.Hides,
		}
		t.Properties = append(t.Properties, p)
	}

	for _, fj := range tj.Fields {
		vis, err := parseVisibility(fj.Visibility)
		if err != nil {
			return errors.Wrapf(err, "field %s", fj.Name)
		}
		f := &ir.Field{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly:      assembly,
					DeclaringType: tj.FullName,
					Name:          fj.Name,
				},
				ClrName:    fj.Name,
				Visibility: vis,
				Static:     fj.Static,
			},
			Type:       convertRef(fj.Type),
			Const:      fj.Const,
			ReadOnly:   fj.ReadOnly,
			ConstValue: fj.ConstValue,
		}
		t.Fields = append(t.Fields, f)
	}

	for _, ej := range tj.Events {
		vis, err := parseVisibility(ej.Visibility)
		if err != nil {
			return errors.Wrapf(err, "event %s", ej.Name)
		}
		e := &ir.Event{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly:      assembly,
					DeclaringType: tj.FullName,
					Name:          ej.Name,
				},
				ClrName:    ej.Name,
				Visibility: vis,
				Static:     ej.Static,
			},
			HandlerType: convertRef(ej.HandlerType),
		}
		t.Events = append(t.Events, e)
	}

	for _, cj := range tj.Ctors {
		vis, err := parseVisibility(cj.Visibility)
		if err != nil {
			return errors.Wrap(err, "constructor")
		}
		params := convertParams(cj.Params)
		c := &ir.Ctor{
			MemberBase: ir.MemberBase{
				ID: ir.MemberStableID{
					Assembly:      assembly,
					DeclaringType: tj.FullName,
					Name:          ".ctor",
					Signature:     ir.CtorSignature(ir.ParamTypeNames(params)),
				},
				ClrName:    ".ctor",
				Visibility: vis,
			},
			Params: params,
		}
		t.Ctors = append(t.Ctors, c)
	}
	return nil
}

func convertParams(params []paramJSON) []ir.Param {
	out := make([]ir.Param, 0, len(params))
	for _, pj := range params {
		out = append(out, ir.Param{
			Name:     pj.Name,
			Type:     convertRef(pj.Type),
			Optional: pj.Optional,
			ByRef:    pj.ByRef,
		})
	}
	return out
}

func convertGenericParams(params []genericParamJSON) []ir.GenericParam {
	out := make([]ir.GenericParam, 0, len(params))
	for _, gj := range params {
		p := ir.GenericParam{
			Name:                  gj.Name,
			Position:              gj.Position,
			Variance:              parseVariance(gj.Variance),
			ReferenceConstraint:   gj.IsClass,
			ValueConstraint:       gj.IsStruct,
			DefaultCtorConstraint: gj.HasNewCtor,
		}
		for _, rj := range gj.Constraints {
			p.RawConstraints = append(p.RawConstraints, convertRef(rj))
		}
		out = append(out, p)
	}
	return out
}

func convertRef(rj refJSON) ir.TypeRef {
	switch rj.Kind {
	case "param":
		return ir.ParamRef(rj.Param)
	case "array":
		rank := rj.Rank
		if rank == 0 {
			rank = 1
		}
		elem := ir.TypeRef{}
		if rj.Elem != nil {
			elem = convertRef(*rj.Elem)
		}
		return ir.ArrayRef(elem, rank)
	case "pointer":
		ref := ir.TypeRef{Kind: ir.RefPointer}
		if rj.Elem != nil {
			elem := convertRef(*rj.Elem)
			ref.Elem = &elem
		}
		return ref
	case "fnptr":
		return ir.TypeRef{Kind: ir.RefFunctionPtr}
	default:
		args := make([]ir.TypeRef, 0, len(rj.TypeArgs))
		for _, aj := range rj.TypeArgs {
			args = append(args, convertRef(aj))
		}
		return ir.NamedRef(rj.Assembly, rj.FullName, args...)
	}
}

func parseKind(s string) (ir.TypeKind, error) {
	switch s {
	case "class":
		return ir.KindClass, nil
	case "struct":
		return ir.KindStruct, nil
	case "interface":
		return ir.KindInterface, nil
	case "enum":
		return ir.KindEnum, nil
	case "delegate":
		return ir.KindDelegate, nil
	case "staticClass":
		return ir.KindStaticClass, nil
	default:
		return 0, errors.Newf("unknown type kind %q", s)
	}
}

func parseVisibility(s string) (ir.Visibility, error) {
	switch s {
	case "public":
		return ir.Public, nil
	case "internal":
		return ir.Internal, nil
	case "protected":
		return ir.Protected, nil
	case "private":
		return ir.Private, nil
	default:
		return 0, errors.Newf("unknown visibility %q", s)
	}
}

func parseVariance(s string) ir.Variance {
	switch s {
	case "out":
		return ir.Covariant
	case "in":
		return ir.Contravariant
	default:
		return ir.Invariant
	}
}
