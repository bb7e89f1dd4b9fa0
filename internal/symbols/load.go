package symbols

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// SerializeDirective is the magic doc-comment pragma recognized "by simple
// name" as the Serializable marker attribute (§9: reimplementations
// should accept that an unrelated directive sharing this text would
// collide — there is no namespacing of doc-comment pragmas in Go, just as
// an attribute class name collision is accepted in the original design).
const SerializeDirective = "//genpack:serialize"

// Package is the host analyzer's view of one loaded Go package: its
// type-checked declarations plus enough syntax to recover doc comments
// and per-file import lists.
type Package struct {
	Fset *token.FileSet
	Pkg  *packages.Package
}

// Load loads the single package matching pattern (e.g. "./internal/models")
// with full type and syntax information. This is the concrete binding for
// the "host analyzer" the spec treats as an external collaborator — a real
// Roslyn-hosted generator would instead be invoked per-declaration by the
// compiler; go/packages is the closest Go has to that symbol API.
func Load(pattern string) (*Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedSyntax | packages.NeedImports | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading package %q: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package matched %q", pattern)
	}
	if len(packages.PrintErrors(pkgs)) > 0 {
		return nil, fmt.Errorf("package %q has load errors", pattern)
	}
	p := pkgs[0]
	return &Package{Fset: p.Fset, Pkg: p}, nil
}

// Candidates returns every named type declared in the package whose doc
// comment carries SerializeDirective, regardless of whether it is
// otherwise eligible (callers run the full WorkItem precondition check,
// including the alias/cross-package "partial" stand-in, separately).
func (p *Package) Candidates() []Type {
	var out []Type
	for _, file := range p.Pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			gd, ok := n.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				return true
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if doc == nil || !hasDirective(doc, SerializeDirective) {
					continue
				}
				obj := p.Pkg.TypesInfo.Defs[ts.Name]
				tn, ok := obj.(*types.TypeName)
				if !ok {
					continue
				}
				named, ok := tn.Type().(*types.Named)
				if !ok {
					continue
				}
				out = append(out, Type{
					Type:  named,
					Named: named,
					Fset:  p.Fset,
					Doc:   doc,
					Pos:   ts.Pos(),
				})
			}
			return true
		})
	}
	return out
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	for _, c := range doc.List {
		if c.Text == directive {
			return true
		}
	}
	return false
}

// FileOf returns the *ast.File declaring named, used by the orchestrator
// to recover the originating compilation unit's imports.
func (p *Package) FileOf(named *types.Named) *ast.File {
	pos := named.Obj().Pos()
	for _, f := range p.Pkg.Syntax {
		if f.Pos() <= pos && pos <= f.End() {
			return f
		}
	}
	return nil
}

// Imports returns the import paths a file declares, the Go analog of
// "usings from the originating compilation unit".
func Imports(f *ast.File) []string {
	var out []string
	for _, imp := range f.Imports {
		path := imp.Path.Value
		out = append(out, path[1:len(path)-1]) // strip quotes
	}
	return out
}

// ImportsFor returns the import paths declared in named's originating
// file, keeping go/ast entirely inside this package so callers never need
// to import it just to thread a file handle through.
func (p *Package) ImportsFor(named *types.Named) []string {
	f := p.FileOf(named)
	if f == nil {
		return nil
	}
	return Imports(f)
}
