package symbols

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const membersFixture = `
package fixture

type Base struct {
	ID string
	hidden int
}

func (b Base) Describe() string { return b.ID }

type Greeter interface {
	Greet() string
}

type Derived struct {
	Base
	Greeter
	Name string ` + "`pack:\"force,readonly\"`" + `
	Skip string ` + "`pack:\"ignore\"`" + `
}

func (d Derived) Greet() string { return "hi " + d.Name }

type Collection struct {
	items []int
}

func (c *Collection) Add(v int) { c.items = append(c.items, v) }
`

func TestEnumerateMembersOwnFieldsFirst(t *testing.T) {
	pkg := checkPackage(t, "fixture", membersFixture)
	members := EnumerateMembers(namedType(t, pkg, "Derived"))

	require.True(t, len(members) > 0)
	require.Equal(t, "Name", members[0].Name)
	require.Equal(t, KindField, members[0].Kind)
}

func TestEnumerateMembersIncludesInheritedFromEmbeddedBase(t *testing.T) {
	pkg := checkPackage(t, "fixture", membersFixture)
	members := EnumerateMembers(namedType(t, pkg, "Derived"))

	var sawID, sawDescribe bool
	for _, m := range members {
		if m.Name == "ID" {
			sawID = true
			require.True(t, m.Inherited)
		}
		if m.Name == "Describe" {
			sawDescribe = true
			require.True(t, m.Inherited)
		}
	}
	require.True(t, sawID, "expected Base.ID promoted into Derived's members")
	require.True(t, sawDescribe, "expected Base.Describe promoted into Derived's members")
}

func TestEnumerateMembersOwnMethodOverridesEmbeddedInterfaceMethod(t *testing.T) {
	pkg := checkPackage(t, "fixture", membersFixture)
	members := EnumerateMembers(namedType(t, pkg, "Derived"))

	var greetCount int
	var ownGreetSeen bool
	for _, m := range members {
		if m.Name == "Greet" {
			greetCount++
			if !m.Inherited {
				ownGreetSeen = true
			}
		}
	}
	require.Equal(t, 1, greetCount, "Derived's own Greet must hide Greeter's promoted one")
	require.True(t, ownGreetSeen)
}

func TestStructTagValueAndTagTokens(t *testing.T) {
	pkg := checkPackage(t, "fixture", membersFixture)
	members := EnumerateMembers(namedType(t, pkg, "Derived"))

	for _, m := range members {
		if m.Name != "Name" {
			continue
		}
		val, ok := StructTagValue(m.Tag, "pack")
		require.True(t, ok)
		require.Equal(t, "force,readonly", val)
		return
	}
	t.Fatal("Name field not found")
}

func TestHasMethodNoParams(t *testing.T) {
	pkg := checkPackage(t, "fixture", membersFixture)
	require.True(t, HasMethod(namedType(t, pkg, "Base"), "Describe"))
	require.False(t, HasMethod(namedType(t, pkg, "Base"), "Nope"))
}

func TestHasMethodWithParamTypes(t *testing.T) {
	pkg := checkPackage(t, "fixture", membersFixture)
	require.True(t, HasMethod(namedType(t, pkg, "Collection"), "Add", "int"))
	require.False(t, HasMethod(namedType(t, pkg, "Collection"), "Add", "string"))
}

func TestHasOwnMethodIgnoresPromotedMembers(t *testing.T) {
	pkg := checkPackage(t, "fixture", membersFixture)
	require.True(t, HasOwnMethod(namedType(t, pkg, "Base"), "Describe"))
	require.False(t, HasOwnMethod(namedType(t, pkg, "Derived"), "Describe"),
		"Describe is only promoted from Base, not declared on Derived itself")
	require.True(t, HasOwnMethod(namedType(t, pkg, "Derived"), "Greet"),
		"Greet is declared directly on Derived, shadowing Greeter's promoted one")
}
