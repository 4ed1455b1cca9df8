// Package debug gates the library's precondition checks. The checks
// guard programming errors at call sites (a combine function violating
// its absence contract), not runtime conditions, so they compile to
// no-ops unless the latticedebug build tag is set.
package debug

import "github.com/pkg/errors"

// Assertf panics with a stack-carrying error when cond is false and
// checks are enabled.
func Assertf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(errors.Errorf(format, args...))
	}
}
