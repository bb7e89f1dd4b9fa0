package strategy

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/genpack/genpack/internal/symbols"
)

const (
	keyTime     = "time.Time"
	keyDuration = "time.Duration"
	keyUUID     = "github.com/google/uuid.UUID"
	keyRawJSON  = "encoding/json.RawMessage"
	keyPair     = "github.com/genpack/genpack/runtime/wire/pair.Pair`2"
)

// PairQualifiedName is keyPair, exported so internal/genengine can recognize
// a pair.Pair[K, V] element type in the read-side collection construction
// cascade (§4.4.5's "deconstruction-shaped element" case) without
// duplicating the registry key.
const PairQualifiedName = keyPair

var tupleKeys = [7]string{
	"github.com/genpack/genpack/runtime/wire/tuple.T1`1",
	"github.com/genpack/genpack/runtime/wire/tuple.T2`2",
	"github.com/genpack/genpack/runtime/wire/tuple.T3`3",
	"github.com/genpack/genpack/runtime/wire/tuple.T4`4",
	"github.com/genpack/genpack/runtime/wire/tuple.T5`5",
	"github.com/genpack/genpack/runtime/wire/tuple.T6`6",
	"github.com/genpack/genpack/runtime/wire/tuple.T7`7",
}

func registerBuiltins(r *Registry) {
	r.Register(keyTime, timeStrategy())
	r.Register(keyDuration, durationStrategy())
	r.Register(keyUUID, uuidStrategy())
	r.Register(keyRawJSON, rawJSONStrategy())
	r.Register(keyPair, pairStrategy())
	for n := 1; n <= 7; n++ {
		r.Register(tupleKeys[n-1], tupleStrategy(n))
	}
}

// timeStrategy writes 64-bit tick count (UnixNano) and reconstructs via
// time.Unix(0, ticks), mirroring the DateTime wire contract in §4.6.
func timeStrategy() Strategy {
	return Strategy{
		Serialize: func(ctx *WriteContext, _ types.Type, expr, _ string) {
			ctx.W.Printf("if err := w.WriteInt64(%s.UnixNano()); err != nil {", expr)
			ctx.W.Begin()
			ctx.W.Line("return err")
			ctx.W.End()
			ctx.W.Line("}")
		},
		Deserialize: func(ctx *ReadContext, _ types.Type, identPrefix string) string {
			ticks := identPrefix + "Ticks"
			ctx.W.Printf("%s, err := r.ReadInt64()", ticks)
			ctx.W.Line("if err != nil {")
			ctx.W.Begin()
			ctx.W.Line("return nil, err")
			ctx.W.End()
			ctx.W.Line("}")
			return fmt.Sprintf("time.Unix(0, %s)", ticks)
		},
	}
}

// durationStrategy writes 64-bit tick count (nanoseconds) and reconstructs
// via time.Duration(ticks), mirroring the TimeSpan wire contract in §4.6.
func durationStrategy() Strategy {
	return Strategy{
		Serialize: func(ctx *WriteContext, _ types.Type, expr, _ string) {
			ctx.W.Printf("if err := w.WriteInt64(int64(%s)); err != nil {", expr)
			ctx.W.Begin()
			ctx.W.Line("return err")
			ctx.W.End()
			ctx.W.Line("}")
		},
		Deserialize: func(ctx *ReadContext, _ types.Type, identPrefix string) string {
			ticks := identPrefix + "Ticks"
			ctx.W.Printf("%s, err := r.ReadInt64()", ticks)
			ctx.W.Line("if err != nil {")
			ctx.W.Begin()
			ctx.W.Line("return nil, err")
			ctx.W.End()
			ctx.W.Line("}")
			return fmt.Sprintf("time.Duration(%s)", ticks)
		},
	}
}

// uuidStrategy writes/reads the 16-byte array as a single buffered blob
// (the domain-stack strategy grounded on goa-ai's use of google/uuid for
// message correlation — see SPEC_FULL.md's Default Strategies section).
func uuidStrategy() Strategy {
	return Strategy{
		Serialize: func(ctx *WriteContext, _ types.Type, expr, _ string) {
			ctx.W.Printf("if err := w.WriteBytes(%s[:]); err != nil {", expr)
			ctx.W.Begin()
			ctx.W.Line("return err")
			ctx.W.End()
			ctx.W.Line("}")
		},
		Deserialize: func(ctx *ReadContext, _ types.Type, identPrefix string) string {
			raw := identPrefix + "Raw"
			val := identPrefix + "UUID"
			ctx.W.Printf("%s, err := r.ReadBytes()", raw)
			ctx.W.Line("if err != nil {")
			ctx.W.Begin()
			ctx.W.Line("return nil, err")
			ctx.W.End()
			ctx.W.Line("}")
			ctx.W.Printf("%s, err := uuid.FromBytes(%s)", val, raw)
			ctx.W.Line("if err != nil {")
			ctx.W.Begin()
			ctx.W.Line("return nil, err")
			ctx.W.End()
			ctx.W.Line("}")
			return val
		},
	}
}

// rawJSONStrategy writes/reads json.RawMessage as a length-prefixed byte
// array, keeping the payload opaque to the generator.
func rawJSONStrategy() Strategy {
	return Strategy{
		Serialize: func(ctx *WriteContext, _ types.Type, expr, _ string) {
			ctx.W.Printf("if err := w.WriteBytes(%s); err != nil {", expr)
			ctx.W.Begin()
			ctx.W.Line("return err")
			ctx.W.End()
			ctx.W.Line("}")
		},
		Deserialize: func(ctx *ReadContext, _ types.Type, identPrefix string) string {
			raw := identPrefix + "Raw"
			ctx.W.Printf("%s, err := r.ReadBytes()", raw)
			ctx.W.Line("if err != nil {")
			ctx.W.Begin()
			ctx.W.Line("return nil, err")
			ctx.W.End()
			ctx.W.Line("}")
			return fmt.Sprintf("json.RawMessage(%s)", raw)
		},
	}
}

// pairStrategy writes key then value, reads key then value then builds
// pair.New(key, value), per §4.6's KeyValuePair contract.
func pairStrategy() Strategy {
	return Strategy{
		Serialize: func(ctx *WriteContext, t types.Type, expr, identPrefix string) {
			args := t.(*types.Named).TypeArgs()
			ctx.Emit(args.At(0), expr+".Key", identPrefix+"Key")
			ctx.Emit(args.At(1), expr+".Value", identPrefix+"Value")
		},
		Deserialize: func(ctx *ReadContext, t types.Type, identPrefix string) string {
			args := t.(*types.Named).TypeArgs()
			key := ctx.Emit(args.At(0), identPrefix+"Key")
			val := ctx.Emit(args.At(1), identPrefix+"Value")
			return fmt.Sprintf("pair.New(%s, %s)", key, val)
		},
	}
}

// tupleStrategy writes each item in order; reads each in order and
// constructs the instantiated tuple.TN[...] literal, per §4.6's Tuple
// contract.
func tupleStrategy(n int) Strategy {
	return Strategy{
		Serialize: func(ctx *WriteContext, t types.Type, expr, identPrefix string) {
			args := t.(*types.Named).TypeArgs()
			for i := 0; i < n; i++ {
				field := fmt.Sprintf("Item%d", i+1)
				ctx.Emit(args.At(i), fmt.Sprintf("%s.%s", expr, field), fmt.Sprintf("%s%s", identPrefix, field))
			}
		},
		Deserialize: func(ctx *ReadContext, t types.Type, identPrefix string) string {
			args := t.(*types.Named).TypeArgs()
			fields := make([]string, n)
			for i := 0; i < n; i++ {
				field := fmt.Sprintf("Item%d", i+1)
				val := ctx.Emit(args.At(i), identPrefix+field)
				fields[i] = fmt.Sprintf("%s: %s", field, val)
			}
			return fmt.Sprintf("%s{%s}", symbols.IdentifierWithArguments(t), strings.Join(fields, ", "))
		},
	}
}
