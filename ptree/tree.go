// Package ptree implements a persistent radix tree over positive integer
// keys, together with sharing-preserving transforms over one tree
// (MapFilter) and two trees in parallel (Combine).
//
// Trees are immutable: every operation returns a new tree that shares
// structure with its inputs, so a tree may be held by any number of
// readers without synchronization. The representation is canonical, with
// a node existing only while its subtree holds at least one entry, which
// makes structural equality coincide with entry-wise equality and lets
// the combinators detect "nothing changed here" by comparing node
// pointers.
package ptree

import (
	"fmt"
	"iter"
	"strings"
)

// Key is a positive integer map key. The zero Key is not a valid key:
// Get treats it as absent and mutating operations panic on it.
type Key uint64

// Tree is a sparse persistent map from Key to V. The nil *Tree is the
// empty map and every method accepts a nil receiver.
//
// Keys are consumed bit by bit from the least significant end: key 1
// addresses a node's own entry, an even key descends left and an odd key
// descends right, shifting the key down one bit either way.
type Tree[V any] struct {
	left  *Tree[V]
	val   *V
	right *Tree[V]
}

// Empty returns the empty tree.
func Empty[V any]() *Tree[V] { return nil }

// node builds a tree node, collapsing to nil when the subtree would hold
// no entries. All construction goes through here to keep the
// representation canonical.
func node[V any](l *Tree[V], v *V, r *Tree[V]) *Tree[V] {
	if l == nil && v == nil && r == nil {
		return nil
	}
	return &Tree[V]{left: l, val: v, right: r}
}

func checkKey(k Key) {
	if k == 0 {
		panic("ptree: key must be positive")
	}
}

// Get returns the value stored at k, if any.
func (t *Tree[V]) Get(k Key) (V, bool) {
	for t != nil && k > 1 {
		if k&1 == 0 {
			t = t.left
		} else {
			t = t.right
		}
		k >>= 1
	}
	if t == nil || k != 1 || t.val == nil {
		var zero V
		return zero, false
	}
	return *t.val, true
}

// Set returns a tree with v stored at k, sharing every untouched subtree
// with the receiver.
func (t *Tree[V]) Set(k Key, v V) *Tree[V] {
	checkKey(k)
	return t.set(k, &v)
}

func (t *Tree[V]) set(k Key, v *V) *Tree[V] {
	var l, r *Tree[V]
	var own *V
	if t != nil {
		l, own, r = t.left, t.val, t.right
	}
	switch {
	case k == 1:
		own = v
	case k&1 == 0:
		l = l.set(k>>1, v)
	default:
		r = r.set(k>>1, v)
	}
	return &Tree[V]{left: l, val: own, right: r}
}

// Remove returns a tree with no entry at k. When k is already absent the
// receiver itself is returned.
func (t *Tree[V]) Remove(k Key) *Tree[V] {
	checkKey(k)
	if t == nil {
		return nil
	}
	switch {
	case k == 1:
		if t.val == nil {
			return t
		}
		return node(t.left, nil, t.right)
	case k&1 == 0:
		l := t.left.Remove(k >> 1)
		if l == t.left {
			return t
		}
		return node(l, t.val, t.right)
	default:
		r := t.right.Remove(k >> 1)
		if r == t.right {
			return t
		}
		return node(t.left, t.val, r)
	}
}

// Len returns the number of entries.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	n := t.left.Len() + t.right.Len()
	if t.val != nil {
		n++
	}
	return n
}

// All iterates over every entry in ascending key order.
func (t *Tree[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		t.Walk(yield)
	}
}

// Walk calls f on every entry in ascending key order, stopping early
// when f returns false.
//
// A node's key is its bit path under a leading one bit, so every key at
// depth d lies in [2^d, 2^(d+1)) and numeric order is level order:
// levels outside-in, and within a level ascending bit-path prefix. The
// walk keeps each level's nodes sorted by prefix, which the next level
// inherits by taking all even-bit children (same prefixes) before all
// odd-bit ones (same prefixes plus a bit above anything in the level).
func (t *Tree[V]) Walk(f func(Key, V) bool) {
	if t == nil {
		return
	}
	type frame struct {
		node   *Tree[V]
		prefix Key
	}
	cur := []frame{{t, 0}}
	for depth := uint(0); len(cur) > 0; depth++ {
		for _, fr := range cur {
			if fr.node.val != nil && !f(fr.prefix|1<<depth, *fr.node.val) {
				return
			}
		}
		next := make([]frame, 0, len(cur))
		for _, fr := range cur {
			if fr.node.left != nil {
				next = append(next, frame{fr.node.left, fr.prefix})
			}
		}
		for _, fr := range cur {
			if fr.node.right != nil {
				next = append(next, frame{fr.node.right, fr.prefix | 1<<depth})
			}
		}
		cur = next
	}
}

// Equal reports whether a and b hold the same keys with eq-equal values.
// It is conservative exactly when eq is: eq may report false on
// equivalent values it cannot decide equal, and Equal then does too.
func Equal[V any](eq func(V, V) bool, a, b *Tree[V]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if (a.val == nil) != (b.val == nil) {
		return false
	}
	if a.val != nil && !eq(*a.val, *b.val) {
		return false
	}
	return Equal(eq, a.left, b.left) && Equal(eq, a.right, b.right)
}

func (t *Tree[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range t.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d↦%v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
