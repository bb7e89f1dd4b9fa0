// Package genengine is the code-generation core described by SPEC_FULL.md:
// Property Filter, Write/Read Emitters, and the per-candidate Orchestrator
// pipeline. It depends only on internal/symbols (the host analyzer seam),
// internal/strategy (the Default Strategies Registry), internal/codewriter,
// and internal/diagnostic — never on go/packages or go/ast directly, so the
// recursive strategy-dispatch logic stays independent of how declarations
// were discovered.
package genengine

import (
	"go/types"

	"github.com/genpack/genpack/internal/diagnostic"
)

// ClassDecl captures the lexical context of a candidate type: its name and
// any generic parameter list/constraints, so the emitted partial
// declaration echoes the original.
type ClassDecl struct {
	Name           string
	TypeParamNames []string // e.g. ["K", "V"]
	Constraints    []string // e.g. ["comparable", "any"], same order as TypeParamNames
}

// WorkItem describes a candidate type that passes the §4.5 preconditions.
// The Orchestrator does not build WorkItems: Compile works directly from
// the symbols.Type values that Package.Candidates returns.
type WorkItem struct {
	TypeSymbol    *types.Named
	ClassDecl     ClassDecl
	Namespace     string // Go: the package name
	Usings        []string
	ShouldOverride bool // base type is itself marked serializable
	Location      diagnostic.Location
}

// PropertyDescriptor is a member selected to participate in serialization,
// as decided by the Property Filter (filter.go).
type PropertyDescriptor struct {
	Name     string
	Type     types.Type
	Forced   bool
	ReadOnly bool // written but never read back — see SPEC_FULL.md's Open Question
	Location diagnostic.Location
}

// GeneratedUnit is one finished compilation unit: the source text for a
// single sibling file. Diagnostics raised while producing it are reported
// in Result.Diagnostics, not here.
type GeneratedUnit struct {
	Path        string
	PackageName string
	Source      string
}

// Result is what the Orchestrator publishes for an entire generation pass.
type Result struct {
	Units       []GeneratedUnit
	Diagnostics []diagnostic.Diagnostic
}
