package assert

import "github.com/oomph-ac/tickmove/oerror"

// IsTrue panics with a TickError built from message and args if ok is false. It is meant for invariants
// that only a programming error can break, never for validating input.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
