package lattice

import "fmt"

// OptionElem wraps an element of an underlying lattice with one extra
// greatest element: absence means top, presence carries the underlying
// value.
type OptionElem[T any] struct {
	present bool
	v       T
}

// Some wraps an underlying lattice element.
func Some[T any](v T) OptionElem[T] { return OptionElem[T]{present: true, v: v} }

// None is the added top.
func None[T any]() OptionElem[T] { return OptionElem[T]{} }

func (e OptionElem[T]) IsTop() bool { return !e.present }

// Value returns the wrapped element, if e is not the added top.
func (e OptionElem[T]) Value() (T, bool) {
	if !e.present {
		var zero T
		return zero, false
	}
	return e.v, true
}

func (e OptionElem[T]) String() string {
	if !e.present {
		return "⊤"
	}
	return fmt.Sprintf("%v", e.v)
}

// Option adds a top to any lattice by using the absent value to
// represent it. The join absorbs into absence; present values join in
// the base lattice.
type Option[T any, L Lattice[T]] struct {
	Base L
}

var _ WithTop[OptionElem[bool]] = Option[bool, Bool]{}

func (l Option[T, L]) Beq(x, y OptionElem[T]) bool {
	if !x.present || !y.present {
		return x.present == y.present
	}
	return l.Base.Beq(x.v, y.v)
}

func (l Option[T, L]) Ge(x, y OptionElem[T]) bool {
	switch {
	case !x.present:
		return true
	case !y.present:
		return false
	default:
		return l.Base.Ge(x.v, y.v)
	}
}

func (l Option[T, L]) Bot() OptionElem[T] { return Some(l.Base.Bot()) }

func (l Option[T, L]) Top() OptionElem[T] { return None[T]() }

func (l Option[T, L]) Lub(x, y OptionElem[T]) OptionElem[T] {
	if !x.present || !y.present {
		return None[T]()
	}
	return Some(l.Base.Lub(x.v, y.v))
}
