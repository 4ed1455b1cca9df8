package lattice

import (
	"github.com/cottand/dataflow/ptree"
	"github.com/cottand/dataflow/util"
)

// TopMapElem is an element of the top-default map lattice: either the
// dedicated universal-bottom value, or a map of exceptions where an
// absent key reads as the base lattice's top. The separate tag exists
// because "bottom at every key" cannot be expressed as a map of
// exceptions from top without ambiguity.
type TopMapElem[T any] struct {
	bot bool
	m   *ptree.Tree[T]
}

// IsBot reports whether e is the universal bottom, the element a solver
// gives program points it has not reached.
func (e TopMapElem[T]) IsBot() bool { return e.bot }

func (e TopMapElem[T]) String() string {
	if e.bot {
		return "⊥"
	}
	return "⊤ except " + e.m.String()
}

// TopMap is the lattice of sparse maps from positive keys to elements of
// a base lattice with top, where an absent key reads as top.
//
// The representation is canonical the same way Map's is, with top in the
// role of bottom: top values are never stored, and a bottom value
// anywhere collapses the whole element to the universal bottom.
type TopMap[T any, L WithTop[T]] struct {
	Base L
}

var _ WithTop[TopMapElem[bool]] = TopMap[bool, Bool]{}

func (l TopMap[T, L]) Bot() TopMapElem[T] { return TopMapElem[T]{bot: true} }

// Top is the map holding top at every key: no exceptions stored.
func (l TopMap[T, L]) Top() TopMapElem[T] { return TopMapElem[T]{} }

// Get returns the value at k: bottom on the universal bottom, the stored
// exception if there is one, top otherwise.
func (l TopMap[T, L]) Get(e TopMapElem[T], k ptree.Key) T {
	if e.bot {
		return l.Base.Bot()
	}
	if v, ok := e.m.Get(k); ok {
		return v
	}
	return l.Base.Top()
}

// Set stores v at k. Writing on the universal bottom is a no-op, since
// bottom absorbs updates. Writing a bottom value collapses the whole element to
// the universal bottom; writing top removes the key, since absence
// already reads as top.
func (l TopMap[T, L]) Set(e TopMapElem[T], k ptree.Key, v T) TopMapElem[T] {
	switch {
	case e.bot:
		return e
	case l.Base.Beq(v, l.Base.Bot()):
		return TopMapElem[T]{bot: true}
	case l.Base.Beq(v, l.Base.Top()):
		return TopMapElem[T]{m: e.m.Remove(k)}
	default:
		return TopMapElem[T]{m: e.m.Set(k, v)}
	}
}

func (l TopMap[T, L]) Beq(x, y TopMapElem[T]) bool {
	if x.bot || y.bot {
		return x.bot == y.bot
	}
	return ptree.Equal(l.Base.Beq, x.m, y.m)
}

// Ge compares pointwise. An absent key is top and only top is above top,
// so x may not store exceptions outside y's domain; within it, the
// stored values compare in the base lattice.
func (l TopMap[T, L]) Ge(x, y TopMapElem[T]) bool {
	switch {
	case y.bot:
		return true
	case x.bot:
		return false
	}
	for k, v := range y.m.All() {
		if !l.Base.Ge(l.Get(x, k), v) {
			return false
		}
	}
	for k := range util.Keys(x.m.All()) {
		if _, ok := y.m.Get(k); !ok {
			return false
		}
	}
	return true
}

// Lub joins pointwise. The universal bottom is the identity. A key
// absent on either side is top there, so its join is top and it stays
// absent in the result; a join that reaches top is removed for the same
// reason. The exception trees share structure the way Map's join does.
func (l TopMap[T, L]) Lub(x, y TopMapElem[T]) TopMapElem[T] {
	switch {
	case x.bot:
		return y
	case y.bot:
		return x
	}
	top := l.Base.Top()
	m := ptree.Combine(l.Base.Beq, func(a, b *T) *T {
		if a == nil || b == nil {
			return nil
		}
		v := l.Base.Lub(*a, *b)
		if l.Base.Beq(v, top) {
			return nil
		}
		return &v
	}, x.m, y.m)
	return TopMapElem[T]{m: m}
}
