// Package strategy implements the Default Strategies Registry: a stateless
// table, keyed by qualified generic name, of pack/unpack emitters for
// well-known composite types (time.Time, time.Duration, pair.Pair,
// tuple.T1..T7, uuid.UUID, json.RawMessage). New composite types register
// by adding an entry here; there is no reflection-driven dispatch at
// generation time or at runtime.
package strategy

import (
	"go/types"

	"github.com/genpack/genpack/internal/codewriter"
	"github.com/genpack/genpack/internal/diagnostic"
)

// WriteContext is the state a Strategy's Serialize function needs: the
// output buffer, a diagnostic location for the enclosing property, and a
// callback to recurse into the Write Emitter for an element type (e.g. a
// Pair's Key/Value, a Tuple's Item1..ItemN).
type WriteContext struct {
	W    *codewriter.Writer
	Loc  diagnostic.Location
	Emit func(t types.Type, expr string, identPrefix string)
}

// ReadContext is the symmetric state for Deserialize. Emit recurses into
// the Read Emitter for an element type and returns a Go expression string
// that evaluates to the decoded value (emitting any supporting statements
// to W first under the given temp-variable prefix).
type ReadContext struct {
	W    *codewriter.Writer
	Loc  diagnostic.Location
	Emit func(t types.Type, identPrefix string) string
}

// Strategy is a stateless pair of pack/unpack emitters for one recognized
// composite type family.
type Strategy struct {
	// Serialize emits the statements that write expr (a value of type t)
	// to ctx.W.
	Serialize func(ctx *WriteContext, t types.Type, expr string, identPrefix string)
	// Deserialize emits the statements that read a value of type t from
	// the reader and returns the Go expression evaluating to it.
	Deserialize func(ctx *ReadContext, t types.Type, identPrefix string) string
}

// Registry maps a strategy-registry key (QualifiedGenericName) to its
// Strategy. The zero value is empty; use NewRegistry for the built-ins.
type Registry struct {
	byName map[string]Strategy
}

// NewRegistry returns a Registry pre-populated with every built-in
// strategy from builtin.go.
func NewRegistry() *Registry {
	r := &Registry{byName: map[string]Strategy{}}
	registerBuiltins(r)
	return r
}

// Register adds or replaces the strategy for key.
func (r *Registry) Register(key string, s Strategy) {
	r.byName[key] = s
}

// Lookup returns the strategy registered for key, if any.
func (r *Registry) Lookup(key string) (Strategy, bool) {
	s, ok := r.byName[key]
	return s, ok
}
