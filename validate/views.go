package validate

import (
	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/namer"
)

// checkViews enforces the three view hard rules: a view contains at
// least one member, at most one view exists per (type, interface)
// pair, and the view's surface property name is a valid, sanitized
// identifier.
func checkViews(c *Context) {
	c.eachEmittedType(func(_ *ir.NamespaceSymbol, t *ir.TypeSymbol) {
		typeKey := t.ID.Key()
		seen := make(map[string]bool)

		for _, v := range t.ExplicitViews {
			if len(v.Members) == 0 {
				c.Errorf(CodeEmptyView, typeKey, "",
					"explicit view %s has no members", v.Key())
			}

			srcKey := v.Source.TypeID().Key()
			if seen[srcKey] {
				c.Errorf(CodeDuplicateView, typeKey, "",
					"type declares more than one view for interface %s", v.Source.ShortName())
			}
			seen[srcKey] = true

			switch {
			case v.PropertyName == "":
				c.Errorf(CodeBadViewProperty, typeKey, "",
					"explicit view %s has no property name", v.Key())
			case namer.IsReservedWord(v.PropertyName) || !namer.ValidIdentifier(v.PropertyName):
				c.Errorf(CodeBadViewProperty, typeKey, "",
					"view property name %q is not a valid sanitized identifier", v.PropertyName)
			}
		}
	})
}
