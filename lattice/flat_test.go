package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlat_Laws(t *testing.T) {
	l := Flat[int]{}
	elems := []FlatElem[int]{l.Bot(), Inject(1), Inject(2), l.Top()}
	checkLattice[FlatElem[int]](t, l, elems)
	checkTop[FlatElem[int]](t, l, elems)
}

func TestFlat_MismatchGoesTop(t *testing.T) {
	l := Flat[string]{}
	assert.Equal(t, l.Top(), l.Lub(Inject("a"), Inject("b")))
	assert.Equal(t, Inject("a"), l.Lub(Inject("a"), Inject("a")))
}

func TestFlat_BottomIsIdentity(t *testing.T) {
	l := Flat[int]{}
	assert.Equal(t, Inject(3), l.Lub(l.Bot(), Inject(3)))
	assert.Equal(t, Inject(3), l.Lub(Inject(3), l.Bot()))
	assert.Equal(t, l.Top(), l.Lub(l.Top(), Inject(3)))
}

func TestFlat_InjectedValuesIncomparable(t *testing.T) {
	l := Flat[int]{}
	assert.False(t, l.Ge(Inject(1), Inject(2)))
	assert.False(t, l.Ge(Inject(2), Inject(1)))
	assert.True(t, l.Ge(Inject(1), Inject(1)))
}

func TestFlatElem_Accessors(t *testing.T) {
	l := Flat[int]{}
	v, ok := Inject(7).Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = l.Top().Value()
	assert.False(t, ok)
	assert.True(t, l.Bot().IsBot())
	assert.True(t, l.Top().IsTop())
}
