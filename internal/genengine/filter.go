package genengine

import (
	"strings"

	"github.com/genpack/genpack/internal/diagnostic"
	"github.com/genpack/genpack/internal/symbols"
)

// FilterProperties selects which enumerated members participate in
// serialization, per §3/§4.5's Property Filter rules:
//   - exclude members that are not fields ("not a property"),
//   - exclude pack:"ignore",
//   - include unconditionally pack:"force",
//   - otherwise include only exported fields.
//
// A pack:"force,readonly" field is included for write but flagged
// ReadOnly so the Read Emitter skips it, preserving the readonly+Force
// Open Question from §9 exactly: such a property is written but silently
// left at its zero value on deserialize.
func FilterProperties(members []symbols.Member, locFor func(name string) diagnostic.Location) []PropertyDescriptor {
	var out []PropertyDescriptor
	for _, m := range members {
		if m.Kind != symbols.KindField {
			continue
		}
		tokens := tagTokens(m.Tag)
		if tokens["ignore"] {
			continue
		}
		forced := tokens["force"]
		if !forced && !m.Exported {
			continue
		}
		out = append(out, PropertyDescriptor{
			Name:     m.Name,
			Type:     m.Type,
			Forced:   forced,
			ReadOnly: forced && tokens["readonly"],
			Location: locFor(m.Name),
		})
	}
	return out
}

func tagTokens(tag string) map[string]bool {
	out := map[string]bool{}
	val, ok := symbols.StructTagValue(tag, "pack")
	if !ok || val == "" {
		return out
	}
	for _, t := range strings.Split(val, ",") {
		out[strings.TrimSpace(t)] = true
	}
	return out
}
