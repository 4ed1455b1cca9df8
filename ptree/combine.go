package ptree

import (
	"github.com/cottand/dataflow/internal/debug"
	"github.com/cottand/dataflow/internal/log"
)

var logger = log.DefaultLogger.With("section", "ptree.combine")

// change classifies the outcome of transforming one subtree.
type change uint8

const (
	// unchanged: the result is the operand itself, untouched.
	unchanged change = iota
	// emptied: the operand had entries, the result has none.
	emptied
	// rebuilt: the result is a fresh allocation.
	rebuilt
)

// change2 classifies the outcome of merging two subtrees. A merge result
// "coincides" with an operand when every key's merged value is equal to
// that operand's value at that key, which for canonical trees means the
// result can stand in for the operand wholesale.
type change2 uint8

const (
	sameBoth change2 = iota
	sameLeft
	sameRight
	fresh
)

func (c change2) matchesLeft() bool  { return c == sameBoth || c == sameLeft }
func (c change2) matchesRight() bool { return c == sameBoth || c == sameRight }

// MapFilter applies f to every entry of m, keeping the entry when f's
// second result is true and dropping it otherwise. Absent keys stay
// absent; f is never consulted for them.
//
// Subtrees that f leaves untouched (every kept value beq-equal to the
// original) are returned as the same pointers. In particular, when f
// keeps every entry intact, the result is m itself and nothing is
// allocated.
func MapFilter[V any](beq func(V, V) bool, f func(V) (V, bool), m *Tree[V]) *Tree[V] {
	res, _ := mapFilter(beq, f, m)
	return res
}

func mapFilter[V any](beq func(V, V) bool, f func(V) (V, bool), m *Tree[V]) (*Tree[V], change) {
	if m == nil {
		return nil, unchanged
	}
	l, cl := mapFilter(beq, f, m.left)
	r, cr := mapFilter(beq, f, m.right)
	v := m.val
	sameVal := true
	if m.val != nil {
		switch nv, keep := f(*m.val); {
		case !keep:
			v, sameVal = nil, false
		case beq(nv, *m.val):
			// keep the original allocation so parents can share
		default:
			v, sameVal = &nv, false
		}
	}
	if sameVal && cl == unchanged && cr == unchanged {
		return m, unchanged
	}
	res := node(l, v, r)
	if res == nil {
		return nil, emptied
	}
	return res, rebuilt
}

// CombineFunc merges the values two trees hold at one key. A nil pointer
// encodes absence, both as operand and as result. It must map two
// absences to an absence; combining trees is otherwise a pointwise total
// recomputation over infinitely many absent keys. The precondition is the
// caller's to uphold; it is asserted in builds with the latticedebug tag.
type CombineFunc[V any] func(l, r *V) *V

// Combine merges a and b pointwise with f: for every key k, the result
// holds f of the two operands' values at k (absent encoded as nil).
//
// The result shares structure with the operands wherever the merge is a
// no-op: any subtree whose merged entries all coincide with one operand's
// is that operand's subtree, returned as the same pointer. When the whole
// merge coincides with both operands at once, the first operand is
// returned. That tie-break is arbitrary but kept fixed so callers can
// rely on it.
func Combine[V any](beq func(V, V) bool, f CombineFunc[V], a, b *Tree[V]) *Tree[V] {
	if debug.Enabled {
		debug.Assertf(f(nil, nil) == nil, "ptree: combine function must map two absences to an absence")
	}
	res, cls := combine(beq, f, a, b)
	if debug.Enabled {
		logger.Debug("combine", "len1", a.Len(), "len2", b.Len(), "shared", cls != fresh)
	}
	return res
}

func combine[V any](beq func(V, V) bool, f CombineFunc[V], a, b *Tree[V]) (*Tree[V], change2) {
	switch {
	case a == nil && b == nil:
		return nil, sameBoth
	case b == nil:
		// every key of this subtree is absent on the right, so the merge
		// reduces to a one-sided transform of a
		res, c := mapFilter(beq, func(v V) (V, bool) {
			return deref(f(&v, nil))
		}, a)
		switch c {
		case unchanged:
			return a, sameLeft
		case emptied:
			return nil, sameRight
		default:
			return res, fresh
		}
	case a == nil:
		res, c := mapFilter(beq, func(v V) (V, bool) {
			return deref(f(nil, &v))
		}, b)
		switch c {
		case unchanged:
			return b, sameRight
		case emptied:
			return nil, sameLeft
		default:
			return res, fresh
		}
	}

	l, cl := combine(beq, f, a.left, b.left)
	r, cr := combine(beq, f, a.right, b.right)
	var v *V
	if a.val != nil || b.val != nil {
		v = f(a.val, b.val)
	}
	valA := sameValue(beq, v, a.val)
	valB := sameValue(beq, v, b.val)
	matchA := valA && cl.matchesLeft() && cr.matchesLeft()
	matchB := valB && cl.matchesRight() && cr.matchesRight()
	switch {
	case matchA && matchB:
		// tie-break: the first operand stands for both
		return a, sameBoth
	case matchA:
		return a, sameLeft
	case matchB:
		return b, sameRight
	}
	// reuse an operand's value allocation when the merged value is equal
	// to it, so an enclosing Equal sees shared pointers early
	if valA {
		v = a.val
	} else if valB {
		v = b.val
	}
	return node(l, v, r), fresh
}

// sameValue reports whether a merged value coincides with an operand's:
// both absent, or both present and equal.
func sameValue[V any](beq func(V, V) bool, merged, operand *V) bool {
	if merged == nil || operand == nil {
		return merged == operand
	}
	return beq(*merged, *operand)
}

func deref[V any](v *V) (V, bool) {
	if v == nil {
		var zero V
		return zero, false
	}
	return *v, true
}
