package genengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const collectionFixture = `
package fixture

import (
	"github.com/genpack/genpack/runtime/wire/seq"
	"github.com/genpack/genpack/runtime/wire/pair"
)

type IntList struct {
	items []int
	Count int
}

func (l IntList) All() seq.Seq[int] { return seq.FromSlice(l.items) }
func (l *IntList) Add(v int)        { l.items = append(l.items, v); l.Count++ }

type Dict struct {
	entries []pair.Pair[string, int]
}

func (d Dict) All() seq.Seq[pair.Pair[string, int]] { return seq.FromSlice(d.entries) }
func (d *Dict) Add(k string, v int)                 {}

type FromCtor struct {
	items []int
}

func (f FromCtor) All() seq.Seq[int] { return seq.FromSlice(f.items) }

func NewFromCtor(items []int) *FromCtor { return &FromCtor{items: items} }

type Unconstructable struct {
	items []int
}

func (u Unconstructable) All() seq.Seq[int] { return seq.FromSlice(u.items) }

type Lengthy struct {
	items  []int
	Length int
}

func (l Lengthy) All() seq.Seq[int] { return seq.FromSlice(l.items) }

type CountMethod struct {
	items []int
}

func (c CountMethod) All() seq.Seq[int] { return seq.FromSlice(c.items) }
func (c CountMethod) Count() int        { return len(c.items) }

type NotACollection struct {
	Name string
}
`

func TestCollectionElemTypeDetectsAllMethod(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)

	elem, ok := collectionElemType(namedType(t, pkg, "IntList"))
	require.True(t, ok)
	require.Equal(t, "int", elem.String())

	_, ok = collectionElemType(namedType(t, pkg, "NotACollection"))
	require.False(t, ok)
}

func TestCollectionElemTypeResolvesElementFromPairDict(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	elem, ok := collectionElemType(namedType(t, pkg, "Dict"))
	require.True(t, ok)
	k, v, ok := pairElemTypes(elem)
	require.True(t, ok)
	require.Equal(t, "string", k.String())
	require.Equal(t, "int", v.String())
}

func TestCountAccessorExprPrefersCountField(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	require.Equal(t, "v.Count", countAccessorExpr(namedType(t, pkg, "IntList"), "v"))
}

func TestCountAccessorExprFallsBackToLengthField(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	require.Equal(t, "v.Length", countAccessorExpr(namedType(t, pkg, "Lengthy"), "v"))
}

func TestCountAccessorExprFallsBackToCountMethod(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	require.Equal(t, "v.Count()", countAccessorExpr(namedType(t, pkg, "CountMethod"), "v"))
}

func TestCountAccessorExprEmptyWhenNoneMatch(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	require.Equal(t, "", countAccessorExpr(namedType(t, pkg, "Unconstructable"), "v"))
}

func TestPairElemTypesRejectsNonPair(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	intList := namedType(t, pkg, "IntList")
	elem, ok := collectionElemType(intList)
	require.True(t, ok)
	_, _, ok = pairElemTypes(elem)
	require.False(t, ok)
}

func TestSliceConstructorFindsSamePackageConstructor(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	fromCtor := namedType(t, pkg, "FromCtor")
	elem, ok := collectionElemType(fromCtor)
	require.True(t, ok)

	name, ok := sliceConstructor(fromCtor, elem)
	require.True(t, ok)
	require.Equal(t, "NewFromCtor", name)
}

func TestSliceConstructorMissingReturnsFalse(t *testing.T) {
	pkg := checkPackage(t, collectionFixture)
	unconstructable := namedType(t, pkg, "Unconstructable")
	elem, ok := collectionElemType(unconstructable)
	require.True(t, ok)

	_, ok = sliceConstructor(unconstructable, elem)
	require.False(t, ok)
}
