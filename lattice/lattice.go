// Package lattice provides semi-lattice abstractions over immutable
// values, meant as the algebraic building blocks of fixpoint-style
// dataflow analyses: a solver instantiates a variant, then calls Bot,
// Lub and Beq at each iteration step until it converges. The package
// performs no iteration itself.
//
// Every element is an immutable value: operations return new elements,
// possibly sharing structure with their inputs, and an element may be
// read from any number of goroutines without synchronization.
package lattice

// Lattice is the capability set a lattice variant provides over its
// element type T. Implementations must satisfy laws the interface cannot
// express and which are not checked at runtime:
//
//   - Beq decides an approximation of the lattice's equivalence:
//     Beq(x, y) true implies x and y are equivalent. The converse need
//     not hold: Beq may be conservative on equivalent values with
//     different representations, but must never report true incorrectly.
//   - Ge is a partial order compatible with the equivalence, so
//     equivalent elements compare Ge both ways.
//   - Bot is least: Ge(x, Bot()) for every x.
//   - Lub is an upper bound: Ge(Lub(x, y), x) and Ge(Lub(x, y), y). It
//     need not be the least upper bound; any monotone upper bound keeps
//     a fixpoint iteration converging.
type Lattice[T any] interface {
	Beq(x, y T) bool
	Ge(x, y T) bool
	Bot() T
	Lub(x, y T) T
}

// WithTop extends Lattice with a greatest element: Ge(Top(), x) for
// every x.
type WithTop[T any] interface {
	Lattice[T]
	Top() T
}
