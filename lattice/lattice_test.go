package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkLattice exercises the algebraic laws of the capability contract
// over a sample of elements: the join is an upper bound, bottom is
// least, Beq is reflexive and symmetric, and Ge agrees with Beq.
func checkLattice[T any](t *testing.T, l Lattice[T], elems []T) {
	t.Helper()
	for _, x := range elems {
		assert.True(t, l.Ge(x, l.Bot()), "%v should be above bottom", x)
		assert.True(t, l.Beq(x, x), "Beq should be reflexive on %v", x)
		for _, y := range elems {
			assert.Equal(t, l.Beq(x, y), l.Beq(y, x), "Beq should be symmetric on %v, %v", x, y)
			if l.Beq(x, y) {
				assert.True(t, l.Ge(x, y) && l.Ge(y, x), "equal elements %v, %v should compare Ge both ways", x, y)
			}
			j := l.Lub(x, y)
			assert.True(t, l.Ge(j, x), "%v ⊔ %v = %v should be above %v", x, y, j, x)
			assert.True(t, l.Ge(j, y), "%v ⊔ %v = %v should be above %v", x, y, j, y)
		}
	}
}

func checkTop[T any](t *testing.T, l WithTop[T], elems []T) {
	t.Helper()
	for _, x := range elems {
		assert.True(t, l.Ge(l.Top(), x), "top should be above %v", x)
	}
}
