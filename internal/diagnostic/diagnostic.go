// Package diagnostic defines the structured, located problem reports the
// generator accumulates during a pass instead of raising as Go errors.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a Diagnostic is. The generator currently
// only ever produces Error-severity diagnostics, but the type exists so a
// future relaxed check (e.g. a style warning) has somewhere to live.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Stable diagnostic ids, part of the engine's external contract.
const (
	IDSerializationMarking  = "SerializationMarking"
	IDInterfaceProperties   = "InterfaceProperties"
	IDMissingPackingMethod  = "MissingPackingMethod"
	IDEnumerableProperties  = "EnumerableProperties"
)

// Location pinpoints a diagnostic in source. Context locations (a second,
// related site) are represented by including a second Location in
// Diagnostic.Locations.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return "<generated>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is a located problem report. It is accumulated by the
// orchestrator during generation, never raised as a Go error directly,
// though it implements error so call sites that throw a generated
// statement and report to the host can share one message.
type Diagnostic struct {
	ID            string
	Title         string
	MessageFormat string
	Severity      Severity
	Locations     []Location
	FormatArgs    []any
}

// Message renders MessageFormat against FormatArgs with fmt.Sprintf, so the
// template's own verbs (%q, %s, ...) consume the arguments in order,
// matching the "positional template" wording in the data model.
func (d Diagnostic) Message() string {
	if len(d.FormatArgs) == 0 {
		return d.MessageFormat
	}
	return fmt.Sprintf(d.MessageFormat, d.FormatArgs...)
}

// Error implements the error interface so a Diagnostic can be used directly
// as the panic/throw payload emitted into generated code.
func (d Diagnostic) Error() string {
	var loc string
	if len(d.Locations) > 0 {
		loc = d.Locations[0].String()
	}
	return fmt.Sprintf("%s: %s [%s]", loc, d.Message(), d.ID)
}

// New builds a Diagnostic at severity Error, which is every diagnostic kind
// the generator currently emits.
func New(id, title, messageFormat string, loc Location, args ...any) Diagnostic {
	return Diagnostic{
		ID:            id,
		Title:         title,
		MessageFormat: messageFormat,
		Severity:      Error,
		Locations:     []Location{loc},
		FormatArgs:    args,
	}
}

// WithContext appends a secondary, related Location (e.g. the declaration
// site of an offending base type) to the diagnostic.
func (d Diagnostic) WithContext(loc Location) Diagnostic {
	d.Locations = append(d.Locations, loc)
	return d
}

// Join renders a list of diagnostics as a single multi-line string, used by
// the CLI's diagnostics subcommand.
func Join(diags []Diagnostic) string {
	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Error())
	}
	return b.String()
}
