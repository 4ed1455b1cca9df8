package lattice

import "fmt"

type flatTag uint8

const (
	flatBot flatTag = iota
	flatInj
	flatTop
)

// FlatElem is an element of the flat lattice over T: bottom, a single
// injected value, or top. Injected values are pairwise incomparable.
type FlatElem[T comparable] struct {
	tag flatTag
	v   T
}

// Inject wraps a concrete value as a flat lattice element.
func Inject[T comparable](v T) FlatElem[T] { return FlatElem[T]{tag: flatInj, v: v} }

func (e FlatElem[T]) IsBot() bool { return e.tag == flatBot }

func (e FlatElem[T]) IsTop() bool { return e.tag == flatTop }

// Value returns the injected value, if e carries one.
func (e FlatElem[T]) Value() (T, bool) {
	if e.tag != flatInj {
		var zero T
		return zero, false
	}
	return e.v, true
}

func (e FlatElem[T]) String() string {
	switch e.tag {
	case flatBot:
		return "⊥"
	case flatTop:
		return "⊤"
	default:
		return fmt.Sprintf("%v", e.v)
	}
}

// Flat is the flat lattice over a comparable value type: joining two
// distinct injected values smashes the result to top.
type Flat[T comparable] struct{}

var _ WithTop[FlatElem[int]] = Flat[int]{}

func (Flat[T]) Beq(x, y FlatElem[T]) bool { return x == y }

func (Flat[T]) Ge(x, y FlatElem[T]) bool {
	switch {
	case x.tag == flatTop || y.tag == flatBot:
		return true
	case x.tag == flatInj && y.tag == flatInj:
		return x.v == y.v
	default:
		return false
	}
}

func (Flat[T]) Bot() FlatElem[T] { return FlatElem[T]{tag: flatBot} }

func (Flat[T]) Top() FlatElem[T] { return FlatElem[T]{tag: flatTop} }

func (Flat[T]) Lub(x, y FlatElem[T]) FlatElem[T] {
	switch {
	case x.tag == flatBot:
		return y
	case y.tag == flatBot:
		return x
	case x.tag == flatInj && y.tag == flatInj && x.v == y.v:
		return x
	default:
		return FlatElem[T]{tag: flatTop}
	}
}
