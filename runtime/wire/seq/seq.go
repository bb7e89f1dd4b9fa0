// Package seq defines the canonical "lazy sequence of T" the engine
// recognizes as the one interface shape it accepts in place of a concrete
// collection: a one-way, pull-based, single-type-parameter iterator
// function, following the same range-over-func shape as the standard
// library's iter.Seq[T] (any func(func(T) bool) is range-over-func
// compatible since Go 1.23, regardless of its named type).
package seq

// Seq is the enumerable-of-T interface the engine detects by qualified
// generic name and arity 1. It is range-over-func compatible: "for v :=
// range s" works directly on a Seq[T] value.
type Seq[T any] func(yield func(T) bool)

// FromSlice adapts a slice into a Seq, used by the Read Emitter's
// "declared type is exactly the canonical enumerable interface" case
// (§4.4.5.d) once the elements have been read into a temporary array.
func FromSlice[T any](s []T) Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains a Seq into a slice, used by the Write Emitter's count
// pre-pass (§4.3.5: "determine T, detect the count accessor... emit
// write(count), then a for-each").
func Collect[T any](s Seq[T]) []T {
	var out []T
	s(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
