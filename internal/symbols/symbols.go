// Package symbols adapts go/types and go/packages into the narrow symbol
// API contract the generation engine (internal/genengine) actually needs:
// qualified names, member enumeration, predicates, and source locations.
//
// The engine works with go/types values but never imports go/packages or
// go/ast. This mirrors the spec's carve-out of the host analyzer as an
// external collaborator: here the "host" is golang.org/x/tools/go/packages
// plus the standard library's go/types, and this package is the thin seam
// between that host and the engine's own strategy/emitter logic.
package symbols

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/genpack/genpack/internal/diagnostic"
)

// Kind distinguishes the two member shapes the engine cares about.
type Kind int

const (
	KindField Kind = iota
	KindMethod
)

// Member is one field or method discovered by EnumerateMembers.
type Member struct {
	Name       string
	Kind       Kind
	Type       types.Type
	Tag        string       // struct tag text, only meaningful for KindField
	Signature  *types.Signature // only meaningful for KindMethod
	Exported   bool
	Inherited  bool // came from an embedded type or an implemented interface
}

// Type wraps a types.Type with the position information and doc comment
// needed for diagnostics and marker-attribute recognition.
type Type struct {
	types.Type
	Named  *types.Named // nil for non-named types (e.g. slices, pointers)
	Fset   *token.FileSet
	Doc    *ast.CommentGroup // doc comment immediately above the declaration, if any
	Pos    token.Pos
}

// Location converts the symbol's declaration position into a
// diagnostic.Location using the owning FileSet.
func (t Type) Location() diagnostic.Location {
	if t.Fset == nil || t.Pos == token.NoPos {
		return diagnostic.Location{}
	}
	p := t.Fset.Position(t.Pos)
	return diagnostic.Location{File: p.Filename, Line: p.Line, Column: p.Column}
}

// HasPragma reports whether the type's doc comment carries the given
// "tool:directive" marker on its own line, comparing each comment line
// with its leading "//" and surrounding whitespace trimmed. Candidates does
// not call it: it recognizes the Serializable marker by an exact-text match
// against SerializeDirective.
func (t Type) HasPragma(directive string) bool {
	if t.Doc == nil {
		return false
	}
	for _, c := range t.Doc.List {
		line := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if line == directive {
			return true
		}
	}
	return false
}

// StructTagValue extracts the value of the given key from a raw struct tag
// string, e.g. StructTagValue(`pack:"force"`, "pack") == "force".
func StructTagValue(tag string, key string) (string, bool) {
	return reflect.StructTag(tag).Lookup(key)
}
