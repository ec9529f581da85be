package bignum

import "fmt"

// assertf panics with a formatted message if cond is false. It is the
// library's sole diagnostic surface, used at every precondition boundary
// documented as an unrecoverable violation: division by zero, a sign
// query against zero, a negative exponent, or an empty variadic
// sequence. There is no recoverable error channel for these; the caller
// is expected never to trigger them in correct code, the same contract
// stdlib math/big makes for the same class of violation.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
