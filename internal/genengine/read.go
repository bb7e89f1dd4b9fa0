package genengine

import (
	"fmt"
	"go/types"

	"github.com/genpack/genpack/internal/codewriter"
	"github.com/genpack/genpack/internal/diagnostic"
	"github.com/genpack/genpack/internal/strategy"
	"github.com/genpack/genpack/internal/symbols"
)

// ReadEmitter implements §4.4: recursive strategy dispatch for unpack code.
// Emit returns a Go expression evaluating to the decoded value, having
// already written whatever supporting statements that expression depends
// on to w — the same contract as strategy.ReadContext.Emit, so a built-in
// strategy's Deserialize can recurse into it and vice versa.
type ReadEmitter struct {
	Registry *strategy.Registry
	Index    SerializabilityIndex
}

func (e *ReadEmitter) Emit(w *codewriter.Writer, t types.Type, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) string {
	// Rule 1: nullable wrapper (*T).
	if elem, ok := symbols.IsPointer(t); ok {
		present := identPrefix + "Present"
		ptr := identPrefix + "Ptr"
		w.Printf("%s, err := r.ReadBool()", present)
		w.Line("if err != nil {")
		w.Begin()
		w.Line("return nil, err")
		w.End()
		w.Line("}")
		w.Printf("var %s %s", ptr, symbols.IdentifierWithArguments(t))
		scope := w.Encapsulate()
		scope.Open(fmt.Sprintf("if %s", present))
		// elem recurses under its own "Inner"-suffixed prefix: most
		// sub-emitters name their result identPrefix+"Val", which would
		// otherwise collide with this rule's own val binding below.
		inner := e.Emit(w, elem, identPrefix+"Inner", loc, diags)
		val := identPrefix + "Val"
		w.Printf("%s := %s", val, inner)
		w.Printf("%s = &%s", ptr, val)
		scope.Reference()
		return ptr
	}

	// Rule 2: registered strategy.
	key := symbols.QualifiedGenericName(t)
	if strat, ok := e.Registry.Lookup(key); ok {
		return strat.Deserialize(&strategy.ReadContext{
			W:   w,
			Loc: loc,
			Emit: func(et types.Type, eident string) string {
				return e.Emit(w, et, eident, loc, diags)
			},
		}, t, identPrefix)
	}

	// Rule 3: primitive.
	if symbols.IsAnyType(t) {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDMissingPackingMethod,
			"missing packing method",
			"property %q of type any has no registered wire decoding; give it a concrete type", loc, identPrefix))
		return "nil"
	}
	if symbols.IsPrimitive(t) {
		return e.emitPrimitiveRead(w, t, identPrefix)
	}

	// Rule 4: enum.
	if symbols.IsEnum(t) {
		raw := identPrefix + "Raw"
		w.Printf("%s, err := r.ReadInt32()", raw)
		w.Line("if err != nil {")
		w.Begin()
		w.Line("return nil, err")
		w.End()
		w.Line("}")
		return fmt.Sprintf("%s(%s)", symbols.IdentifierWithArguments(t), raw)
	}

	// Rule 6 (array) is checked before rule 5's generic composite fallback,
	// mirroring the Write Emitter.
	if elemT, ok := symbols.IsSlice(t); ok {
		return e.emitArrayRead(w, t, elemT, identPrefix, loc, diags)
	}

	// Rule 5: class/struct/interface.
	return e.emitCompositeRead(w, t, identPrefix, loc, diags)
}

func (e *ReadEmitter) emitPrimitiveRead(w *codewriter.Writer, t types.Type, identPrefix string) string {
	b := t.Underlying().(*types.Basic)
	method := primitiveReadMethod(b.Kind())
	v := identPrefix + "Val"
	w.Printf("%s, err := r.%s()", v, method)
	w.Line("if err != nil {")
	w.Begin()
	w.Line("return nil, err")
	w.End()
	w.Line("}")
	if named, ok := t.(*types.Named); ok {
		// Named primitive (e.g. a distinct string/int type that isn't an
		// enum): the wire methods always return the underlying basic kind,
		// so the result needs an explicit conversion back.
		return fmt.Sprintf("%s(%s)", symbols.IdentifierWithArguments(named), v)
	}
	return v
}

func primitiveReadMethod(kind types.BasicKind) string {
	switch kind {
	case types.Bool:
		return "ReadBool"
	case types.Int8:
		return "ReadInt8"
	case types.Int16:
		return "ReadInt16"
	case types.Int32:
		return "ReadInt32"
	case types.Int, types.Int64:
		return "ReadInt64"
	case types.Uint16:
		return "ReadUint16"
	case types.Uint32:
		return "ReadUint32"
	case types.Uint, types.Uint64:
		return "ReadUint64"
	case types.Uint8:
		return "ReadByte"
	case types.Float32:
		return "ReadFloat32"
	case types.Float64:
		return "ReadFloat64"
	case types.String:
		return "ReadString"
	default:
		return "ReadInt64"
	}
}

func (e *ReadEmitter) emitArrayRead(w *codewriter.Writer, t, elemT types.Type, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) string {
	if isByteBasic(elemT) {
		v := identPrefix + "Val"
		w.Printf("%s, err := r.ReadBytes()", v)
		w.Line("if err != nil {")
		w.Begin()
		w.Line("return nil, err")
		w.End()
		w.Line("}")
		return v
	}
	length := identPrefix + "Length"
	w.Printf("%s, err := r.ReadInt32()", length)
	w.Line("if err != nil {")
	w.Begin()
	w.Line("return nil, err")
	w.End()
	w.Line("}")
	slice := identPrefix + "Slice"
	w.Printf("%s := make(%s, %s)", slice, symbols.IdentifierWithArguments(t), length)
	idx := identPrefix + "Idx"
	w.Printf("for %s := int32(0); %s < %s; %s++ {", idx, idx, length, idx)
	w.Begin()
	elemExpr := e.Emit(w, elemT, identPrefix+"Elem", loc, diags)
	w.Printf("%s[%s] = %s", slice, idx, elemExpr)
	w.End()
	w.Line("}")
	return slice
}

func (e *ReadEmitter) emitCompositeRead(w *codewriter.Writer, t types.Type, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) string {
	named, isNamed := t.(*types.Named)

	// §4.4.5.d: declared type is exactly the canonical sequence interface.
	if isNamed && symbols.QualifiedGenericName(named) == seqQualifiedName {
		elemT := named.TypeArgs().At(0)
		length := identPrefix + "Length"
		w.Printf("%s, err := r.ReadInt32()", length)
		w.Line("if err != nil {")
		w.Begin()
		w.Line("return nil, err")
		w.End()
		w.Line("}")
		items := identPrefix + "Items"
		w.Printf("%s := make([]%s, %s)", items, symbols.IdentifierWithArguments(elemT), length)
		idx := identPrefix + "Idx"
		w.Printf("for %s := int32(0); %s < %s; %s++ {", idx, idx, length, idx)
		w.Begin()
		elemExpr := e.Emit(w, elemT, identPrefix+"Elem", loc, diags)
		w.Printf("%s[%s] = %s", items, idx, elemExpr)
		w.End()
		w.Line("}")
		return fmt.Sprintf("seq.FromSlice(%s)", items)
	}

	if symbols.IsInterface(t) {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDInterfaceProperties,
			"bare interface property",
			"property %q has a bare interface type; only the canonical sequence interface is supported", loc, identPrefix))
		return "nil"
	}

	if !isNamed {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDMissingPackingMethod,
			"missing packing method",
			"property %q has an unrecognized composite type with no packing method", loc, identPrefix))
		return "nil"
	}

	// §4.4.5's construction/insertion cascade for a user collection type:
	// Add(T) > Add(K,V) for a deconstruction-shaped element > a
	// package-level constructor from a slice of T > EnumerableProperties.
	if elemT, ok := collectionElemType(named); ok {
		return e.emitCollectionRead(w, named, elemT, identPrefix, loc, diags)
	}

	hasUnpack := symbols.HasMethod(named, "Unpack")
	willHaveUnpack := e.Index != nil && e.Index.IsMarkedSerializable(named)
	if !hasUnpack && !willHaveUnpack {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDMissingPackingMethod,
			"missing packing method",
			"type %s has no Pack method and is not marked serializable", loc, symbols.QualifiedGenericName(named)))
		return "nil"
	}

	if symbols.IsStructOrEnum(t) {
		return e.emitOwnUnpack(w, named, identPrefix, loc, diags)
	}

	// Non-nullable reference composite: symmetric to the Write Emitter's
	// presence tag, only materializing the value when it was actually set.
	present := identPrefix + "Present"
	val := identPrefix + "Val"
	w.Printf("%s, err := r.ReadBool()", present)
	w.Line("if err != nil {")
	w.Begin()
	w.Line("return nil, err")
	w.End()
	w.Line("}")
	w.Printf("var %s %s", val, symbols.IdentifierWithArguments(t))
	scope := w.Encapsulate()
	scope.Open(fmt.Sprintf("if %s", present))
	inner := e.emitOwnUnpack(w, named, identPrefix+"Inner", loc, diags)
	w.Printf("%s = %s", val, inner)
	scope.Reference()
	return val
}

// emitOwnUnpack builds a zero value of the composite's own type and calls
// its instance Unpack(reader) method (hand-authored or generated — this
// emitter never cares which) to fill it in place, the same contract §4.4's
// "invoke the type's single-argument constructor taking a reader"
// describes, rendered onto Go's in-place Unpack method instead of a
// reader-taking constructor overload.
func (e *ReadEmitter) emitOwnUnpack(w *codewriter.Writer, named *types.Named, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) string {
	val := identPrefix + "Val"
	w.Printf("var %s %s", val, symbols.IdentifierWithArguments(named))
	w.Printf("if err := %s.Unpack(r); err != nil {", val)
	w.Begin()
	w.Line("return nil, err")
	w.End()
	w.Line("}")
	return val
}

// emitCollectionRead builds a value of the user collection type named,
// whose elements are elemT, from the wire's length-prefixed element
// stream. See §4.4.5's four-way construction cascade.
func (e *ReadEmitter) emitCollectionRead(w *codewriter.Writer, named *types.Named, elemT types.Type, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) string {
	typeIdent := symbols.IdentifierWithArguments(named)

	// §4.4.5's cascade tries Add(T) ahead of the pair-deconstructing
	// Add(K, V): a collection whose Add accepts the element type whole
	// wins even when that element type happens to also be pair-shaped.
	if symbols.HasMethod(named, "Add", symbols.QualifiedGenericName(elemT)) {
		return e.emitCascadeLoop(w, named, typeIdent, elemT, identPrefix, loc, diags, func(elemExpr string) string {
			return fmt.Sprintf("result.Add(%s)", elemExpr)
		})
	}

	if k, v, ok := pairElemTypes(elemT); ok && symbols.HasMethod(named, "Add", symbols.QualifiedGenericName(k), symbols.QualifiedGenericName(v)) {
		return e.emitCascadeLoop(w, named, typeIdent, elemT, identPrefix, loc, diags, func(elemExpr string) string {
			return fmt.Sprintf("result.Add(%s.Key, %s.Value)", elemExpr, elemExpr)
		})
	}

	if ctorName, ok := sliceConstructor(named, elemT); ok {
		length := identPrefix + "Length"
		w.Printf("%s, err := r.ReadInt32()", length)
		w.Line("if err != nil {")
		w.Begin()
		w.Line("return nil, err")
		w.End()
		w.Line("}")
		items := identPrefix + "Items"
		w.Printf("%s := make([]%s, %s)", items, symbols.IdentifierWithArguments(elemT), length)
		idx := identPrefix + "Idx"
		w.Printf("for %s := int32(0); %s < %s; %s++ {", idx, idx, length, idx)
		w.Begin()
		elemExpr := e.Emit(w, elemT, identPrefix+"Elem", loc, diags)
		w.Printf("%s[%s] = %s", items, idx, elemExpr)
		w.End()
		w.Line("}")
		return fmt.Sprintf("%s(%s)", ctorName, items)
	}

	e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDEnumerableProperties,
		"unconstructable collection",
		"property %q has a collection type with no Add method or slice constructor to rebuild it", loc, identPrefix))
	return fmt.Sprintf("%s{}", typeIdent)
}

func (e *ReadEmitter) emitCascadeLoop(w *codewriter.Writer, named *types.Named, typeIdent string, elemT types.Type, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic, insert func(elemExpr string) string) string {
	length := identPrefix + "Length"
	w.Printf("%s, err := r.ReadInt32()", length)
	w.Line("if err != nil {")
	w.Begin()
	w.Line("return nil, err")
	w.End()
	w.Line("}")
	w.Printf("result := &%s{}", typeIdent)
	idx := identPrefix + "Idx"
	w.Printf("for %s := int32(0); %s < %s; %s++ {", idx, idx, length, idx)
	w.Begin()
	elemExpr := e.Emit(w, elemT, identPrefix+"Elem", loc, diags)
	w.Printf("%s := %s", identPrefix+"Entry", elemExpr)
	w.Line(insert(identPrefix + "Entry"))
	w.End()
	w.Line("}")
	return "*result"
}

// throwDiagnostic records d and emits a panic statement carrying the same
// message, mirroring the Write Emitter's two error planes (§7).
func (e *ReadEmitter) throwDiagnostic(w *codewriter.Writer, diags *[]diagnostic.Diagnostic, d diagnostic.Diagnostic) {
	*diags = append(*diags, d)
	w.Printf("panic(%q)", d.Error())
}

