package symbols

import "go/types"

// IsPrimitive reports whether t is one of the widths the wire.Writer/
// wire.Reader handle natively: bool, the signed/unsigned integer widths,
// float32/64, string, and rune (the "char" slot). any ("object") is
// deliberately excluded — see the Open Question in SPEC_FULL.md: it is a
// primitive-shaped value with no obvious width, so the engine treats it as
// an invalid configuration rather than a primitive.
func IsPrimitive(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}
	switch b.Kind() {
	case types.Bool,
		types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64,
		types.Float32, types.Float64,
		types.String:
		// types.Int32 also matches rune, which is an alias of int32.
		return true
	default:
		return false
	}
}

// IsAnyType reports whether t is the empty interface ("object"/any).
func IsAnyType(t types.Type) bool {
	iface, ok := t.Underlying().(*types.Interface)
	return ok && iface.NumMethods() == 0
}

// IsEnum reports whether t is a named type whose underlying type is an
// integer and which has at least one declared constant of that type in
// its defining package — the Go analog of a C# enum, since Go has no
// dedicated enum keyword.
func IsEnum(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	b, ok := named.Underlying().(*types.Basic)
	if !ok || b.Info()&types.IsInteger == 0 {
		return false
	}
	pkg := named.Obj().Pkg()
	if pkg == nil {
		return false
	}
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if ok && types.Identical(c.Type(), named) {
			return true
		}
	}
	return false
}

// IsByteSlice reports whether t is []byte (or a named type over []byte),
// the array-of-bytes primitive the spec calls out as handled via a single
// buffered write rather than an index loop.
func IsByteSlice(t types.Type) bool {
	sl, ok := t.Underlying().(*types.Slice)
	if !ok {
		return false
	}
	b, ok := sl.Elem().Underlying().(*types.Basic)
	return ok && b.Kind() == types.Uint8
}

// IsSlice reports whether t is a slice type (the generator's baseline
// "array" shape for the purposes of §4.3 rule 6 / §4.4 rule 6).
func IsSlice(t types.Type) (elem types.Type, ok bool) {
	sl, is := t.Underlying().(*types.Slice)
	if !is {
		return nil, false
	}
	return sl.Elem(), true
}

// IsPointer reports whether t is a pointer type — the engine's nullable
// wrapper, since Go has no dedicated T? syntax.
func IsPointer(t types.Type) (elem types.Type, ok bool) {
	p, is := t.(*types.Pointer)
	if !is {
		return nil, false
	}
	return p.Elem(), true
}

// IsInterface reports whether t is an interface type (bare, i.e. not the
// canonical sequence shape, which the Write/Read Emitters recognize
// separately by qualified name before this check).
func IsInterface(t types.Type) bool {
	_, ok := t.Underlying().(*types.Interface)
	return ok
}

// IsStructOrEnum reports whether t should be treated as a value type for
// purposes of the "non-nullable reference composite" wrapping rule in
// §4.3.5 / §4.4.5: Go structs and enum-shaped named integers behave like
// C# value types (never nil), everything else (pointers aside, already
// peeled off) is reference-shaped and needs the presence tag.
func IsStructOrEnum(t types.Type) bool {
	if IsEnum(t) {
		return true
	}
	_, ok := t.Underlying().(*types.Struct)
	return ok
}
