package symbols

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

const qualifiedNameFixture = `
package fixture

type Widget struct {
	Name string
}

type Box[T any] struct {
	Value T
}

type Pair2[K, V any] struct {
	Key K
	Val V
}
`

func TestQualifiedGenericNameNonGeneric(t *testing.T) {
	pkg := checkPackage(t, "fixture", qualifiedNameFixture)
	require.Equal(t, "fixture.Widget", QualifiedGenericName(namedType(t, pkg, "Widget")))
}

func TestQualifiedGenericNameGenericArity(t *testing.T) {
	pkg := checkPackage(t, "fixture", qualifiedNameFixture)
	require.Equal(t, "fixture.Box`1", QualifiedGenericName(namedType(t, pkg, "Box")))
	require.Equal(t, "fixture.Pair2`2", QualifiedGenericName(namedType(t, pkg, "Pair2")))
}

func TestQualifiedGenericNameNonNamedFallsBackToString(t *testing.T) {
	require.Equal(t, types.Typ[types.Int32].String(), QualifiedGenericName(types.Typ[types.Int32]))
}

func TestIdentifierWithArgumentsComposites(t *testing.T) {
	pkg := checkPackage(t, "fixture", qualifiedNameFixture)
	widget := namedType(t, pkg, "Widget")

	require.Equal(t, "fixture.Widget", IdentifierWithArguments(widget))
	require.Equal(t, "*fixture.Widget", IdentifierWithArguments(types.NewPointer(widget)))
	require.Equal(t, "[]fixture.Widget", IdentifierWithArguments(types.NewSlice(widget)))
	require.Equal(t, "[3]fixture.Widget", IdentifierWithArguments(types.NewArray(widget, 3)))
	require.Equal(t, "int32", IdentifierWithArguments(types.Typ[types.Int32]))
}
