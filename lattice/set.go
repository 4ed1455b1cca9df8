package lattice

// Sets is the capability a finite-set implementation provides to the set
// lattice: an empty value, membership, equality, inclusion and union
// over an opaque set type S of elements E. Implementations must never
// mutate their arguments.
type Sets[S, E any] interface {
	Empty() S
	Contains(s S, e E) bool
	Equal(x, y S) bool
	// Subset reports x ⊆ y.
	Subset(x, y S) bool
	Union(x, y S) S
}

// Set is the lattice of finite sets ordered by inclusion: bottom is the
// empty set and the join is union.
type Set[S, E any, F Sets[S, E]] struct {
	Sets F
}

func (l Set[S, E, F]) Beq(x, y S) bool { return l.Sets.Equal(x, y) }

func (l Set[S, E, F]) Ge(x, y S) bool { return l.Sets.Subset(y, x) }

func (l Set[S, E, F]) Bot() S { return l.Sets.Empty() }

func (l Set[S, E, F]) Lub(x, y S) S { return l.Sets.Union(x, y) }
