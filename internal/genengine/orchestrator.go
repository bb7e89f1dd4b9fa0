package genengine

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"github.com/genpack/genpack/internal/codewriter"
	"github.com/genpack/genpack/internal/diagnostic"
	"github.com/genpack/genpack/internal/strategy"
	"github.com/genpack/genpack/internal/symbols"
)

// Orchestrator ties the host analyzer's candidates to the Property Filter
// and the Write/Read Emitters, producing one compilation unit per
// candidate (§4.5). It is the only piece of genengine aware of the whole
// per-type pipeline; everything it calls stays ignorant of where a
// candidate came from.
type Orchestrator struct {
	Registry *strategy.Registry
}

// serializableIndex answers SerializabilityIndex from the set of
// candidates discovered in this pass, so a property whose type is another
// candidate in the same run is accepted even before that candidate's own
// Pack/Unpack pair has been generated.
type serializableIndex struct {
	marked map[*types.Named]bool
}

func (s *serializableIndex) IsMarkedSerializable(named *types.Named) bool {
	return s.marked[named]
}

// Compile runs §4.5's full pipeline over every candidate pkg.Candidates()
// returns: the partial/alias/cross-package precondition, property
// filtering, and source assembly for the two emitters' output.
func (o *Orchestrator) Compile(pkg *symbols.Package) Result {
	candidates := pkg.Candidates()
	idx := &serializableIndex{marked: map[*types.Named]bool{}}

	var ok []symbols.Type
	var diags []diagnostic.Diagnostic

	for _, c := range candidates {
		if c.Named == nil || c.Named.Obj().Pkg() != pkg.Pkg.Types {
			// The Go analog of a missing `partial` modifier: either the
			// directive decorated something that isn't a named type at
			// all, or it decorates an alias whose target lives in another
			// package, so this package can never declare the Pack/Unpack
			// methods on it.
			diags = append(diags, diagnostic.New(diagnostic.IDSerializationMarking,
				"type cannot receive generated methods",
				"the genpack:serialize directive must decorate a type declared in its own package, not an alias to a type declared elsewhere",
				c.Location()))
			continue
		}
		idx.marked[c.Named] = true
		ok = append(ok, c)
	}

	we := &WriteEmitter{Registry: o.Registry, Index: idx}
	re := &ReadEmitter{Registry: o.Registry, Index: idx}

	var units []GeneratedUnit
	for _, sym := range ok {
		unit, unitDiags := o.compileOne(pkg, sym, idx, we, re)
		if unit.Path != "" {
			units = append(units, unit)
		}
		diags = append(diags, unitDiags...)
	}
	return Result{Units: units, Diagnostics: diags}
}

func (o *Orchestrator) compileOne(pkg *symbols.Package, sym symbols.Type, idx *serializableIndex, we *WriteEmitter, re *ReadEmitter) (GeneratedUnit, []diagnostic.Diagnostic) {
	named := sym.Named
	name := named.Obj().Name()
	var diags []diagnostic.Diagnostic

	// Every property reports at the owning type's declaration site: go/types
	// doesn't expose a struct field's own position without a second pass
	// over the AST, and the type's line is precise enough to locate the
	// offending property by name in the diagnostic message.
	loc := sym.Location()
	locFor := func(member string) diagnostic.Location { return loc }
	members := symbols.EnumerateMembers(named)

	base, baseNamed, shouldOverride := baseSerializableType(named, idx.IsMarkedSerializable)
	if shouldOverride {
		// The base's own Pack/Unpack already covers its fields; promoting
		// them here too would pack them twice through the same embedding
		// that makes v.ID shorthand for v.Base.ID.
		members = ownMembers(members)
	}
	props := FilterProperties(members, locFor)

	// §4.5 step 6: emit Pack/Unpack only when the user has not hand-authored
	// one. HasOwnMethod (not HasMethod) is deliberate: a promoted Pack/Unpack
	// inherited from an embedded serializable base must never be mistaken
	// for a hand-authored override on this type, or should_override's own
	// base-delegating Pack/Unpack would never get generated.
	skipPack := symbols.HasOwnMethod(named, "Pack")
	skipUnpack := symbols.HasOwnMethod(named, "Unpack")
	skipCtor := pkg.Pkg.Types.Scope().Lookup("New"+name+"FromReader") != nil
	if skipPack && skipUnpack && skipCtor {
		return GeneratedUnit{}, nil
	}

	refs := map[string]bool{}
	for _, p := range props {
		referencedPackages(p.Type, pkg.Pkg.Types, refs)
	}
	if shouldOverride {
		referencedPackages(baseNamed, pkg.Pkg.Types, refs)
	}

	body := codewriter.New()

	if !skipPack {
		if shouldOverride {
			body.Printf("// Pack hides %s.Pack; it packs %s's fields through an embedded call, then %s's own.", base, base, name)
		}
		body.Printf("func (v *%s) Pack(w *wire.Writer) error {", name)
		body.Begin()
		if shouldOverride {
			body.Printf("if err := v.%s.Pack(w); err != nil {", base)
			body.Begin()
			body.Line("return err")
			body.End()
			body.Line("}")
		}
		for _, p := range props {
			ident := lowerCamel(p.Name)
			we.Emit(body, p.Type, "v."+p.Name, ident, p.Location, &diags)
		}
		body.Line("return nil")
		body.End()
		body.Line("}")
		body.Line("")
	}

	if !skipUnpack {
		if shouldOverride {
			body.Printf("// Unpack hides %s.Unpack; it fills %s's fields through an embedded call, then %s's own.", base, base, name)
		}
		body.Printf("func (v *%s) Unpack(r *wire.Reader) error {", name)
		body.Begin()
		if shouldOverride {
			body.Printf("if err := v.%s.Unpack(r); err != nil {", base)
			body.Begin()
			body.Line("return err")
			body.End()
			body.Line("}")
		}
		for _, p := range props {
			if p.ReadOnly {
				continue
			}
			ident := lowerCamel(p.Name)
			expr := re.Emit(body, p.Type, ident, p.Location, &diags)
			body.Printf("v.%s = %s", p.Name, expr)
		}
		body.Line("return nil")
		body.End()
		body.Line("}")
		body.Line("")
	}

	if !skipCtor {
		body.Printf("func New%sFromReader(r *wire.Reader) (*%s, error) {", name, name)
		body.Begin()
		body.Printf("v := &%s{}", name)
		body.Line("if err := v.Unpack(r); err != nil {")
		body.Begin()
		body.Line("return nil, err")
		body.End()
		body.Line("}")
		body.Line("return v, nil")
		body.End()
		body.Line("}")
	}

	bodyText := strings.TrimRight(body.String(), "\n") + "\n"
	var refList []string
	for p := range refs {
		refList = append(refList, p)
	}
	src := assembleSource(pkg.Pkg.Name, refList, bodyText)
	path := strings.ToLower(name) + "_pack.go"
	return GeneratedUnit{Path: path, PackageName: pkg.Pkg.Name, Source: src}, diags
}

// baseSerializableType reports the name and type of named's embedded base
// type when that base is itself a serialize candidate — the Go stand-in
// for a base class whose own Serializable marker means this type's
// generated Pack should call base.Pack first and prepend its fields,
// rather than redeclaring them (§4.5's should_override flag).
func baseSerializableType(named *types.Named, isCandidate func(*types.Named) bool) (name string, baseNamed *types.Named, ok bool) {
	st, isStruct := named.Underlying().(*types.Struct)
	if !isStruct {
		return "", nil, false
	}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Anonymous() {
			continue
		}
		base, ok := f.Type().(*types.Named)
		if !ok {
			continue
		}
		if symbols.HasMethod(base, "Pack") || isCandidate(base) {
			return base.Obj().Name(), base, true
		}
	}
	return "", nil, false
}

// ownMembers drops every member EnumerateMembers attributed to an embedded
// base or interface, keeping only what named declares directly.
func ownMembers(members []symbols.Member) []symbols.Member {
	var out []symbols.Member
	for _, m := range members {
		if !m.Inherited {
			out = append(out, m)
		}
	}
	return out
}

// referencedPackages walks t (through pointers, slices, arrays, and
// generic type arguments) and records the import path of every named
// type's declaring package other than self, so the assembled file imports
// exactly what its field types and strategy calls need and nothing more —
// an unused import the Go compiler would reject.
func referencedPackages(t types.Type, self *types.Package, out map[string]bool) {
	switch v := t.(type) {
	case *types.Named:
		if pkg := v.Obj().Pkg(); pkg != nil && pkg != self {
			out[pkg.Path()] = true
		}
		if args := v.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				referencedPackages(args.At(i), self, out)
			}
		}
	case *types.Pointer:
		referencedPackages(v.Elem(), self, out)
	case *types.Slice:
		referencedPackages(v.Elem(), self, out)
	case *types.Array:
		referencedPackages(v.Elem(), self, out)
	}
}

// assembleSource wraps the emitted method bodies in a full compilation
// unit: the package clause, the runtime/strategy/field-type packages the
// body actually references, and the method bodies themselves.
func assembleSource(pkgName string, referenced []string, body string) string {
	imports := map[string]bool{"github.com/genpack/genpack/runtime/wire": true}
	for _, p := range referenced {
		imports[p] = true
	}
	for _, p := range inferredImports(body) {
		imports[p] = true
	}
	var paths []string
	for p := range imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by genpack. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkgName)
	sb.WriteString("import (\n")
	for _, p := range paths {
		fmt.Fprintf(&sb, "\t%q\n", p)
	}
	sb.WriteString(")\n\n")
	sb.WriteString(body)
	return sb.String()
}

// inferredImports scans the emitted body for recognizable call patterns
// from the Default Strategies Registry's built-ins and returns the import
// paths those patterns depend on. This is the generator's own substitute
// for a Go compiler's automatic import resolution, since the emitters
// build source as text rather than as an AST.
func inferredImports(body string) []string {
	markers := map[string]string{
		"time.Unix(":      "time",
		"time.Duration(":  "time",
		"uuid.FromBytes(": "github.com/google/uuid",
		"json.RawMessage(": "encoding/json",
		"pair.New(":       "github.com/genpack/genpack/runtime/wire/pair",
		"tuple.T":         "github.com/genpack/genpack/runtime/wire/tuple",
		"seq.FromSlice(":  "github.com/genpack/genpack/runtime/wire/seq",
		"seq.Collect(":    "github.com/genpack/genpack/runtime/wire/seq",
	}
	var out []string
	seen := map[string]bool{}
	for marker, path := range markers {
		if strings.Contains(body, marker) && !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}
	return out
}
