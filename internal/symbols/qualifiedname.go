package symbols

import (
	"fmt"
	"go/types"
	"strings"
)

// QualifiedGenericName returns "<package-path>.<Outer...>.<Name>" for a
// named type, with a backtick-arity suffix for generic types (e.g.
// "github.com/genpack/genpack/runtime/wire/tuple.T3`3"). It is the
// strategy-registry key and must be
// stable regardless of which type arguments (if any) instantiate it.
func QualifiedGenericName(t types.Type) string {
	named, ok := t.(*types.Named)
	if !ok {
		return t.String()
	}
	obj := named.Obj()
	name := obj.Name()
	arity := named.TypeParams().Len()
	if arity == 0 {
		arity = named.TypeArgs().Len()
	}
	base := name
	if pkg := obj.Pkg(); pkg != nil {
		base = pkg.Path() + "." + name
	}
	if arity > 0 {
		return fmt.Sprintf("%s`%d", base, arity)
	}
	return base
}

// IdentifierWithArguments returns "<package-name>.<Name>" (the package
// name, not its import path) with concrete type arguments rendered in
// square brackets, recursively formatted the same way. This is what
// generated source actually spells out (e.g. "tuple.T2[int, string]").
func IdentifierWithArguments(t types.Type) string {
	switch v := t.(type) {
	case *types.Named:
		obj := v.Obj()
		base := obj.Name()
		if pkg := obj.Pkg(); pkg != nil {
			base = pkg.Name() + "." + obj.Name()
		}
		if args := v.TypeArgs(); args != nil && args.Len() > 0 {
			parts := make([]string, args.Len())
			for i := 0; i < args.Len(); i++ {
				parts[i] = IdentifierWithArguments(args.At(i))
			}
			return fmt.Sprintf("%s[%s]", base, strings.Join(parts, ", "))
		}
		return base
	case *types.Pointer:
		return "*" + IdentifierWithArguments(v.Elem())
	case *types.Slice:
		return "[]" + IdentifierWithArguments(v.Elem())
	case *types.Array:
		return fmt.Sprintf("[%d]%s", v.Len(), IdentifierWithArguments(v.Elem()))
	case *types.Basic:
		return v.Name()
	default:
		return t.String()
	}
}
