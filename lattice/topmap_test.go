package lattice

import (
	"testing"

	"github.com/cottand/dataflow/ptree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopMap_ScenarioFlatInt: top-default maps over the flat lattice of
// integers. Writing top removes the key rather than storing it.
func TestTopMap_ScenarioFlatInt(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}
	base := Flat[int]{}

	m := l.Set(l.Top(), 5, Inject(42))
	require.Equal(t, Inject(42), l.Get(m, 5))
	require.Equal(t, 1, m.m.Len())

	m = l.Set(m, 5, base.Top())
	assert.Equal(t, 0, m.m.Len(), "an explicit top entry should be removed, not stored")
	assert.True(t, l.Get(m, 5).IsTop())
}

func TestTopMap_NoStoredTopEntries(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}
	base := Flat[int]{}

	m := l.Top()
	for k, v := range map[ptree.Key]FlatElem[int]{1: Inject(1), 2: base.Top(), 3: Inject(3), 9: base.Top()} {
		m = l.Set(m, k, v)
	}
	assert.Equal(t, 2, m.m.Len())
	for _, v := range m.m.All() {
		assert.False(t, v.IsTop(), "no stored entry may equal top")
	}
}

func TestTopMap_SetBottomCollapses(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}
	base := Flat[int]{}

	m := l.Set(l.Set(l.Top(), 1, Inject(1)), 2, Inject(2))
	collapsed := l.Set(m, 7, base.Bot())
	assert.True(t, collapsed.IsBot())
	assert.True(t, l.Beq(collapsed, l.Bot()), "collapse must reach the dedicated universal bottom regardless of prior contents")
}

func TestTopMap_SetOnBottomIsNoOp(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}
	got := l.Set(l.Bot(), 3, Inject(3))
	assert.True(t, got.IsBot(), "bottom absorbs updates")
	assert.True(t, l.Get(got, 3).IsBot())
}

func TestTopMap_LubAbsorbsBottom(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}
	m := l.Set(l.Top(), 1, Inject(1))

	assert.True(t, l.Beq(m, l.Lub(l.Bot(), m)))
	assert.True(t, l.Beq(m, l.Lub(m, l.Bot())))
}

func TestTopMap_LubSmashesToTop(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}

	x := l.Set(l.Top(), 1, Inject(1))
	y := l.Set(l.Top(), 1, Inject(2))
	joined := l.Lub(x, y)
	assert.True(t, l.Get(joined, 1).IsTop(), "distinct injected values join to top")
	assert.Equal(t, 0, joined.m.Len(), "a join reaching top leaves the key absent")
	assert.True(t, l.Beq(joined, l.Top()))
}

func TestTopMap_LubKeepsCommonEntries(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}

	x := l.Set(l.Set(l.Top(), 1, Inject(1)), 2, Inject(2))
	y := l.Set(l.Set(l.Top(), 1, Inject(1)), 3, Inject(3))
	joined := l.Lub(x, y)

	assert.Equal(t, Inject(1), l.Get(joined, 1))
	assert.True(t, l.Get(joined, 2).IsTop(), "a key absent on one side is top, which absorbs the join")
	assert.True(t, l.Get(joined, 3).IsTop())
}

func TestTopMap_Laws(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}

	elems := []TopMapElem[FlatElem[int]]{
		l.Bot(),
		l.Top(),
		l.Set(l.Top(), 1, Inject(1)),
		l.Set(l.Top(), 1, Inject(2)),
		l.Set(l.Set(l.Top(), 1, Inject(1)), 2, Inject(2)),
	}
	checkLattice[TopMapElem[FlatElem[int]]](t, l, elems)
	checkTop[TopMapElem[FlatElem[int]]](t, l, elems)
}

func TestTopMap_Ge(t *testing.T) {
	l := TopMap[FlatElem[int], Flat[int]]{}

	narrow := l.Set(l.Set(l.Top(), 1, Inject(1)), 2, Inject(2))
	wider := l.Set(l.Top(), 1, Inject(1))

	assert.True(t, l.Ge(wider, narrow), "fewer exceptions from top means higher")
	assert.False(t, l.Ge(narrow, wider))
	assert.False(t, l.Ge(l.Set(l.Top(), 1, Inject(9)), narrow), "incomparable stored values are unordered")
}
