package lattice

// Bool is the two-point lattice over booleans, ordered false < true,
// with logical or as the join.
type Bool struct{}

var _ WithTop[bool] = Bool{}

func (Bool) Beq(x, y bool) bool { return x == y }

func (Bool) Ge(x, y bool) bool { return x == y || x }

func (Bool) Bot() bool { return false }

func (Bool) Top() bool { return true }

func (Bool) Lub(x, y bool) bool { return x || y }
