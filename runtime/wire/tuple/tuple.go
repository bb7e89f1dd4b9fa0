// Package tuple defines the N-arity tuple family (N = 1..7) the strategy
// registry recognizes by qualified generic name, mirroring System.Tuple`1
// through System.Tuple`7. Go has no built-in tuple type, so user code that
// wants one of these wire shapes imports this package directly.
package tuple

type T1[A any] struct{ Item1 A }

type T2[A, B any] struct {
	Item1 A
	Item2 B
}

type T3[A, B, C any] struct {
	Item1 A
	Item2 B
	Item3 C
}

type T4[A, B, C, D any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
}

type T5[A, B, C, D, E any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
	Item5 E
}

type T6[A, B, C, D, E, F any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
	Item5 E
	Item6 F
}

type T7[A, B, C, D, E, F, G any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
	Item5 E
	Item6 F
	Item7 G
}
