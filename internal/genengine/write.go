package genengine

import (
	"fmt"
	"go/types"

	"github.com/genpack/genpack/internal/codewriter"
	"github.com/genpack/genpack/internal/diagnostic"
	"github.com/genpack/genpack/internal/strategy"
	"github.com/genpack/genpack/internal/symbols"
)

const seqQualifiedName = "github.com/genpack/genpack/runtime/wire/seq.Seq`1"

// SerializabilityIndex answers whether a named type is (or will be, once
// this generation pass finishes) a candidate that owns a Pack/Unpack
// method pair — either because it was hand-authored, or because it
// carries the Serializable marker and will receive generated ones.
type SerializabilityIndex interface {
	IsMarkedSerializable(named *types.Named) bool
}

// WriteEmitter implements §4.3: recursive strategy dispatch for pack code.
type WriteEmitter struct {
	Registry *strategy.Registry
	Index    SerializabilityIndex
}

// Emit writes the statements that pack a value of type t, read from expr,
// into w. loc locates the owning property for diagnostics; identPrefix is
// the stable lexical prefix for any temporaries this call (or its
// recursive children) introduce. Diagnostics are appended to diags.
func (e *WriteEmitter) Emit(w *codewriter.Writer, t types.Type, expr, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) {
	// Rule 1: nullable wrapper (*T).
	if elem, ok := symbols.IsPointer(t); ok {
		scope := w.Encapsulate()
		w.Printf("if err := w.WriteBool(%s != nil); err != nil {", expr)
		w.Begin()
		w.Line("return err")
		w.End()
		w.Line("}")
		scope.Open(fmt.Sprintf("if %s != nil", expr))
		e.Emit(w, elem, "(*"+expr+")", identPrefix, loc, diags)
		scope.Reference()
		return
	}

	// Rule 2: registered strategy.
	key := symbols.QualifiedGenericName(t)
	if strat, ok := e.Registry.Lookup(key); ok {
		strat.Serialize(&strategy.WriteContext{
			W:   w,
			Loc: loc,
			Emit: func(et types.Type, eexpr, eident string) {
				e.Emit(w, et, eexpr, eident, loc, diags)
			},
		}, t, expr, identPrefix)
		return
	}

	// Rule 3: primitive.
	if symbols.IsAnyType(t) {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDMissingPackingMethod,
			"missing packing method",
			"property %q of type any has no registered wire encoding; give it a concrete type", loc, identPrefix))
		return
	}
	if symbols.IsPrimitive(t) {
		e.emitPrimitiveWrite(w, t, expr, identPrefix)
		return
	}

	// Rule 4: enum.
	if symbols.IsEnum(t) {
		w.Printf("if err := w.WriteInt32(int32(%s)); err != nil {", expr)
		w.Begin()
		w.Line("return err")
		w.End()
		w.Line("}")
		return
	}

	// Rule 6 (array) is checked before rule 5's generic composite fallback
	// since a Go slice is itself a *types.Slice, never a *types.Named.
	if elemT, ok := symbols.IsSlice(t); ok {
		e.emitArrayWrite(w, elemT, expr, identPrefix, loc, diags)
		return
	}

	// Rule 5: class/struct/interface.
	e.emitCompositeWrite(w, t, expr, identPrefix, loc, diags)
}

func (e *WriteEmitter) emitPrimitiveWrite(w *codewriter.Writer, t types.Type, expr, identPrefix string) {
	b := t.Underlying().(*types.Basic)
	if b.Kind() == types.String {
		w.Printf("if %s == \"\" {", expr)
		w.Begin()
		w.Printf("return wire.ErrDefaultReferenceValue(%q)", identPrefix)
		w.End()
		w.Line("}")
	}
	method := primitiveWriteMethod(b.Kind())
	w.Printf("if err := w.%s(%s); err != nil {", method, expr)
	w.Begin()
	w.Line("return err")
	w.End()
	w.Line("}")
}

func primitiveWriteMethod(kind types.BasicKind) string {
	switch kind {
	case types.Bool:
		return "WriteBool"
	case types.Int8:
		return "WriteInt8"
	case types.Int16:
		return "WriteInt16"
	case types.Int32:
		return "WriteInt32"
	case types.Int, types.Int64:
		return "WriteInt64"
	case types.Uint16:
		return "WriteUint16"
	case types.Uint32:
		return "WriteUint32"
	case types.Uint, types.Uint64:
		return "WriteUint64"
	case types.Uint8:
		return "WriteByte"
	case types.Float32:
		return "WriteFloat32"
	case types.Float64:
		return "WriteFloat64"
	case types.String:
		return "WriteString"
	default:
		return "WriteInt64"
	}
}

func (e *WriteEmitter) emitCompositeWrite(w *codewriter.Writer, t types.Type, expr, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) {
	named, isNamed := t.(*types.Named)

	// Enumerable-of-T: our seq.Seq[T] interface analog.
	if isNamed && symbols.QualifiedGenericName(named) == seqQualifiedName {
		elemT := named.TypeArgs().At(0)
		items := identPrefix + "Items"
		w.Printf("%s := seq.Collect(%s)", items, expr)
		w.Printf("if err := w.WriteInt32(int32(len(%s))); err != nil {", items)
		w.Begin()
		w.Line("return err")
		w.End()
		w.Line("}")
		idx, entry := identPrefix+"Idx", identPrefix+"Entry"
		w.Printf("for %s, %s := range %s {", idx, entry, items)
		w.Begin()
		e.Emit(w, elemT, entry, identPrefix, loc, diags)
		w.End()
		w.Line("}")
		return
	}

	// A user collection type recognized by its All() Seq[T] method: write
	// the count via whichever accessor the type exposes (§4.3.5's
	// Count/Length/Count() cascade), then iterate.
	if isNamed {
		if elemT, ok := collectionElemType(named); ok {
			count := countAccessorExpr(named, expr)
			if count != "" {
				w.Printf("if err := w.WriteInt32(int32(%s)); err != nil {", count)
				w.Begin()
				w.Line("return err")
				w.End()
				w.Line("}")
				entry := identPrefix + "Entry"
				w.Printf("for %s := range %s.All() {", entry, expr)
				w.Begin()
				e.Emit(w, elemT, entry, identPrefix, loc, diags)
				w.End()
				w.Line("}")
				return
			}
		}
	}

	if symbols.IsInterface(t) {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDInterfaceProperties,
			"bare interface property",
			"property %q has a bare interface type; only the canonical sequence interface is supported", loc, identPrefix))
		return
	}

	if !isNamed {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDMissingPackingMethod,
			"missing packing method",
			"property %q has an unrecognized composite type with no packing method", loc, identPrefix))
		return
	}

	hasPack := symbols.HasMethod(named, "Pack")
	willHavePack := e.Index != nil && e.Index.IsMarkedSerializable(named)
	if !hasPack && !willHavePack {
		e.throwDiagnostic(w, diags, diagnostic.New(diagnostic.IDMissingPackingMethod,
			"missing packing method",
			"type %s has no Pack method and is not marked serializable", loc, symbols.QualifiedGenericName(named)))
		return
	}

	if symbols.IsStructOrEnum(t) {
		w.Printf("if err := %s.Pack(w); err != nil {", expr)
		w.Begin()
		w.Line("return err")
		w.End()
		w.Line("}")
		return
	}

	// Non-nullable reference composite: wrap with its own presence tag.
	scope := w.Encapsulate()
	written := identPrefix + "Written"
	w.Printf("%s := %s != nil", written, expr)
	w.Printf("if err := w.WriteBool(%s); err != nil {", written)
	w.Begin()
	w.Line("return err")
	w.End()
	w.Line("}")
	scope.Open(fmt.Sprintf("if %s", written))
	w.Printf("if err := %s.Pack(w); err != nil {", expr)
	w.Begin()
	w.Line("return err")
	w.End()
	w.Line("}")
	scope.Reference()
}

func (e *WriteEmitter) emitArrayWrite(w *codewriter.Writer, elemT types.Type, expr, identPrefix string, loc diagnostic.Location, diags *[]diagnostic.Diagnostic) {
	if isByteBasic(elemT) {
		w.Printf("if err := w.WriteBytes(%s); err != nil {", expr)
		w.Begin()
		w.Line("return err")
		w.End()
		w.Line("}")
		return
	}
	length := identPrefix + "Length"
	w.Printf("%s := len(%s)", length, expr)
	w.Printf("if err := w.WriteInt32(int32(%s)); err != nil {", length)
	w.Begin()
	w.Line("return err")
	w.End()
	w.Line("}")
	idx := identPrefix + "Idx"
	w.Printf("for %s := 0; %s < %s; %s++ {", idx, idx, length, idx)
	w.Begin()
	e.Emit(w, elemT, fmt.Sprintf("%s[%s]", expr, idx), identPrefix, loc, diags)
	w.End()
	w.Line("}")
}

func isByteBasic(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.Uint8
}

// throwDiagnostic records d and emits a panic statement carrying the same
// message, so the shape error surfaces both to the host and, if the dead
// branch is ever executed, at runtime — §7's two error planes.
func (e *WriteEmitter) throwDiagnostic(w *codewriter.Writer, diags *[]diagnostic.Diagnostic, d diagnostic.Diagnostic) {
	*diags = append(*diags, d)
	w.Printf("panic(%q)", d.Error())
}
