package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBool_Laws(t *testing.T) {
	elems := []bool{false, true}
	checkLattice[bool](t, Bool{}, elems)
	checkTop[bool](t, Bool{}, elems)
}

func TestBool_LubIsOr(t *testing.T) {
	l := Bool{}
	assert.False(t, l.Lub(false, false))
	assert.True(t, l.Lub(false, true))
	assert.True(t, l.Lub(true, false))
	assert.True(t, l.Lub(true, true))
}

func TestBool_GeIncomparableOnlyWhenBelow(t *testing.T) {
	l := Bool{}
	assert.True(t, l.Ge(true, false))
	assert.False(t, l.Ge(false, true))
}
