package genengine

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/genpack/genpack/internal/symbols"
)

// localPackageDirs maps the runtime/wire subpackages a fixture might import
// to their on-disk location relative to this package, so test fixtures can
// reference the real seq.Seq/pair.Pair shapes instead of reimplementing
// them under a fake import path.
var localPackageDirs = map[string]string{
	"github.com/genpack/genpack/runtime/wire/seq":   "seq",
	"github.com/genpack/genpack/runtime/wire/pair":  "pair",
	"github.com/genpack/genpack/runtime/wire/tuple": "tuple",
}

type localImporter struct {
	fallback types.Importer
	cache    map[string]*types.Package
}

func newLocalImporter() *localImporter {
	return &localImporter{fallback: importer.Default(), cache: map[string]*types.Package{}}
}

func (li *localImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := li.cache[path]; ok {
		return pkg, nil
	}
	dirName, ok := localPackageDirs[path]
	if !ok {
		return li.fallback.Import(path)
	}

	dir := filepath.Join("..", "..", "runtime", "wire", dirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".go" {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, e.Name()), nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	conf := types.Config{Importer: li}
	pkg, err := conf.Check(path, fset, files, nil)
	if err != nil {
		return nil, err
	}
	li.cache[path] = pkg
	return pkg, nil
}

func checkPackage(t *testing.T, src string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "fixture.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	conf := types.Config{Importer: newLocalImporter()}
	pkg, err := conf.Check("fixture", fset, []*ast.File{f}, nil)
	if err != nil {
		t.Fatalf("type-checking fixture: %v", err)
	}
	return pkg
}

func namedType(t *testing.T, pkg *types.Package, name string) *types.Named {
	t.Helper()
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		t.Fatalf("no type %s in fixture package", name)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		t.Fatalf("%s is not a named type", name)
	}
	return named
}

func namedMembers(t *testing.T, pkg *types.Package, name string) []symbols.Member {
	t.Helper()
	return symbols.EnumerateMembers(namedType(t, pkg, name))
}
