package symbols

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

const predicateFixture = `
package fixture

type Status int32

const (
	StatusOK Status = iota
	StatusFailed
)

type NotAnEnum int32

type Blob []byte

type Widget struct {
	Name string
}

type Anything interface{}

type Stringer interface {
	String() string
}
`

func TestIsPrimitive(t *testing.T) {
	pkg := checkPackage(t, "fixture", predicateFixture)
	require.True(t, IsPrimitive(types.Typ[types.Int32]))
	require.True(t, IsPrimitive(types.Typ[types.String]))
	require.True(t, IsPrimitive(types.Typ[types.Bool]))
	require.False(t, IsPrimitive(namedType(t, pkg, "Widget")))
}

func TestIsAnyType(t *testing.T) {
	pkg := checkPackage(t, "fixture", predicateFixture)
	require.True(t, IsAnyType(namedType(t, pkg, "Anything")))
	require.False(t, IsAnyType(namedType(t, pkg, "Stringer")))
	require.False(t, IsAnyType(types.Typ[types.Int32]))
}

func TestIsEnum(t *testing.T) {
	pkg := checkPackage(t, "fixture", predicateFixture)
	require.True(t, IsEnum(namedType(t, pkg, "Status")))
	require.False(t, IsEnum(namedType(t, pkg, "NotAnEnum")), "an int32 type with no declared constants isn't an enum")
	require.False(t, IsEnum(types.Typ[types.Int32]))
}

func TestIsByteSlice(t *testing.T) {
	pkg := checkPackage(t, "fixture", predicateFixture)
	require.True(t, IsByteSlice(namedType(t, pkg, "Blob")))
	require.False(t, IsByteSlice(types.NewSlice(types.Typ[types.Int32])))
}

func TestIsSlice(t *testing.T) {
	sl := types.NewSlice(types.Typ[types.String])
	elem, ok := IsSlice(sl)
	require.True(t, ok)
	require.Equal(t, types.Typ[types.String], elem)

	_, ok = IsSlice(types.Typ[types.String])
	require.False(t, ok)
}

func TestIsPointer(t *testing.T) {
	ptr := types.NewPointer(types.Typ[types.Int32])
	elem, ok := IsPointer(ptr)
	require.True(t, ok)
	require.Equal(t, types.Typ[types.Int32], elem)

	_, ok = IsPointer(types.Typ[types.Int32])
	require.False(t, ok)
}

func TestIsInterface(t *testing.T) {
	pkg := checkPackage(t, "fixture", predicateFixture)
	require.True(t, IsInterface(namedType(t, pkg, "Anything")))
	require.False(t, IsInterface(namedType(t, pkg, "Widget")))
}

func TestIsStructOrEnum(t *testing.T) {
	pkg := checkPackage(t, "fixture", predicateFixture)
	require.True(t, IsStructOrEnum(namedType(t, pkg, "Widget")))
	require.True(t, IsStructOrEnum(namedType(t, pkg, "Status")))
	require.False(t, IsStructOrEnum(namedType(t, pkg, "Anything")))
	require.False(t, IsStructOrEnum(types.Typ[types.Int32]))
}
