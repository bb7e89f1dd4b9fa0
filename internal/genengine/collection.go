package genengine

import (
	"go/types"

	"github.com/genpack/genpack/internal/strategy"
	"github.com/genpack/genpack/internal/symbols"
)

// collectionElemType reports whether named exposes an All() method shaped
// like seq.Seq[T] — the idiomatic Go marker for "this is an enumerable
// collection" in a range-over-func world, taking the place of C#'s
// IEnumerable<T> interface check — and if so returns T.
func collectionElemType(named *types.Named) (types.Type, bool) {
	for _, m := range symbols.EnumerateMembers(named) {
		if m.Kind != symbols.KindMethod || m.Name != "All" || m.Signature == nil {
			continue
		}
		if m.Signature.Params().Len() != 0 || m.Signature.Results().Len() != 1 {
			continue
		}
		ret, ok := m.Signature.Results().At(0).Type().(*types.Named)
		if !ok || symbols.QualifiedGenericName(ret) != seqQualifiedName {
			continue
		}
		return ret.TypeArgs().At(0), true
	}
	return nil, false
}

// countAccessorExpr picks the count accessor the Write Emitter uses ahead
// of a collection's element loop: a Count field, a Length field, or a
// zero-arg Count() method. Per §4.3.5/§9, the choice is decided purely by
// enumeration order — each matching member overwrites the previous pick,
// so whichever of the three appears last among named's members wins.
func countAccessorExpr(named *types.Named, expr string) string {
	var chosen string
	for _, m := range symbols.EnumerateMembers(named) {
		switch {
		case m.Kind == symbols.KindField && m.Name == "Count":
			chosen = expr + ".Count"
		case m.Kind == symbols.KindField && m.Name == "Length":
			chosen = expr + ".Length"
		case m.Kind == symbols.KindMethod && m.Name == "Count" && m.Signature != nil && m.Signature.Params().Len() == 0:
			chosen = expr + ".Count()"
		}
	}
	return chosen
}

// pairElemTypes reports whether t is the pair.Pair[K, V] strategy shape,
// the Go analog of a KeyValuePair<K,V> element in a dictionary-shaped
// collection.
func pairElemTypes(t types.Type) (k, v types.Type, ok bool) {
	named, isNamed := t.(*types.Named)
	if !isNamed || symbols.QualifiedGenericName(named) != strategy.PairQualifiedName {
		return nil, nil, false
	}
	args := named.TypeArgs()
	return args.At(0), args.At(1), true
}

// sliceConstructor looks for a package-level function alongside named that
// builds it from a []elemT — the Go analog of a constructor overload
// accepting IEnumerable<T>. Only constructors in the same package are
// recognized; a cross-package constructor would need an import the
// orchestrator doesn't currently thread through.
func sliceConstructor(named *types.Named, elemT types.Type) (string, bool) {
	pkg := named.Obj().Pkg()
	if pkg == nil {
		return "", false
	}
	name := "New" + named.Obj().Name()
	obj := pkg.Scope().Lookup(name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return "", false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 1 {
		return "", false
	}
	sl, ok := sig.Params().At(0).Type().(*types.Slice)
	if !ok || !types.Identical(sl.Elem(), elemT) {
		return "", false
	}
	return name, true
}
