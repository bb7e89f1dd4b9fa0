package symbols

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// checkPackage type-checks src as a standalone package named pkgName and
// returns its *types.Package, letting predicate/qualified-name tests work
// against real go/types values without a full go/packages load.
func checkPackage(t *testing.T, pkgName, src string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, pkgName+".go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check(pkgName, fset, []*ast.File{f}, nil)
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
