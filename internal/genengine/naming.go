package genengine

import "unicode"

// lowerCamel converts an exported Go identifier's leading run of upper-case
// letters to lower case, e.g. "FooBar" -> "fooBar", "ID" -> "id". It is how
// every temporary, loop index, and transient the emitters introduce derives
// its stable lexical prefix from the top identifier being packed/unpacked,
// per §4.3/§4.4's "stable lexical prefix... to avoid collisions under
// nesting" rule.
//
// Adapted from the teacher's naming helpers (SanitizeToken/HumanizeTitle in
// codegen/naming/naming.go), narrowed to the one rule this engine needs:
// deterministic, collision-avoiding identifiers rather than human titles.
func lowerCamel(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	i := 0
	for i < len(r) && unicode.IsUpper(r[i]) {
		i++
	}
	switch {
	case i == 0:
		return name
	case i == len(r):
		return toLowerRunes(r)
	case i == 1:
		r[0] = unicode.ToLower(r[0])
		return string(r)
	default:
		// keep the last captured upper-case rune as the start of the next
		// word, e.g. "IDToken" -> "idToken", not "iDToken".
		for j := 0; j < i-1; j++ {
			r[j] = unicode.ToLower(r[j])
		}
		return string(r)
	}
}

func toLowerRunes(r []rune) string {
	out := make([]rune, len(r))
	for i, c := range r {
		out[i] = unicode.ToLower(c)
	}
	return string(out)
}
