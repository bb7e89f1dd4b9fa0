package symbols

import "go/types"

// EnumerateMembers returns named's own fields and methods, in declaration
// order, followed by the members of its embedded ("direct base") struct
// and any embedded interface, skipping any whose name already appears in
// the primary set. Static (package-level) declarations are never
// candidates, so there is no "static member" to exclude here — unlike a
// C# reflection-based enumeration, go/types never hands us one.
//
// De-duplication is by name only, matching §9's documented imprecision:
// an embedded type's method overridden at this level with a different
// signature still hides the embedded one under the same name.
func EnumerateMembers(named *types.Named) []Member {
	seen := map[string]bool{}
	var own, inherited []Member

	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if f.Anonymous() {
				continue // handled below as a base/interface, not an own field
			}
			own = append(own, Member{
				Name:     f.Name(),
				Kind:     KindField,
				Type:     f.Type(),
				Tag:      st.Tag(i),
				Exported: f.Exported(),
			})
			seen[f.Name()] = true
		}
	}
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		own = append(own, Member{
			Name:      m.Name(),
			Kind:      KindMethod,
			Type:      m.Type(),
			Signature: m.Type().(*types.Signature),
			Exported:  m.Exported(),
		})
		seen[m.Name()] = true
	}

	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if !f.Anonymous() {
				continue
			}
			base := f.Type()
			if ptr, ok := base.(*types.Pointer); ok {
				base = ptr.Elem()
			}
			switch u := base.(type) {
			case *types.Named:
				if iface, ok := u.Underlying().(*types.Interface); ok {
					inherited = append(inherited, interfaceMembers(iface, seen)...)
				} else if bn, ok := base.(*types.Named); ok {
					inherited = append(inherited, baseMembers(bn, seen)...)
				}
			case *types.Interface:
				inherited = append(inherited, interfaceMembers(u, seen)...)
			}
		}
	}
	return append(own, inherited...)
}

func baseMembers(named *types.Named, seen map[string]bool) []Member {
	var out []Member
	for _, m := range EnumerateMembers(named) {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		m.Inherited = true
		out = append(out, m)
	}
	return out
}

func interfaceMembers(iface *types.Interface, seen map[string]bool) []Member {
	var out []Member
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if seen[m.Name()] {
			continue
		}
		seen[m.Name()] = true
		out = append(out, Member{
			Name:      m.Name(),
			Kind:      KindMethod,
			Type:      m.Type(),
			Signature: m.Type().(*types.Signature),
			Exported:  m.Exported(),
			Inherited: true,
		})
	}
	return out
}

// HasOwnMethod reports whether named itself (not a promoted method from an
// embedded field) declares a method called name. Unlike HasMethod, it
// never consults EnumerateMembers' inherited set, so a base type's
// promoted Pack/Unpack is never mistaken for a hand-authored override on
// the subtype — the check the Orchestrator needs before deciding whether
// to generate Pack/Unpack at all.
func HasOwnMethod(named *types.Named, name string) bool {
	for i := 0; i < named.NumMethods(); i++ {
		if named.Method(i).Name() == name {
			return true
		}
	}
	return false
}

// HasMethod reports whether any enumerated method of t matches name and,
// when paramQualifiedTypes is non-empty, each parameter's qualified name
// in order.
func HasMethod(t *types.Named, name string, paramQualifiedTypes ...string) bool {
	for _, m := range EnumerateMembers(t) {
		if m.Kind != KindMethod || m.Name != name || m.Signature == nil {
			continue
		}
		if len(paramQualifiedTypes) == 0 {
			return true
		}
		sig := m.Signature
		if sig.Params().Len() != len(paramQualifiedTypes) {
			continue
		}
		match := true
		for i, want := range paramQualifiedTypes {
			if QualifiedGenericName(sig.Params().At(i).Type()) != want {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
