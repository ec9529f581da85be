// Package bignum provides an arbitrary-precision signed integer type for
// Go. It is a from-scratch decimal-digit implementation: values are not
// backed by math/big, they are stored as an ordered sequence of decimal
// digits the way a hand-written bignum library stores them, which is
// what makes the multiplication and division strategies below meaningful
// to benchmark and tune.
//
// # Overview
//
// The package exposes a single type, BigInt, together with a set of pure
// functions operating on it. Every function reads its arguments and
// returns a freshly allocated result; no argument is ever mutated, with
// the sole exception of the two in-place convenience methods
// IncrementInPlace and DecrementInPlace.
//
// # Creating BigInts
//
//	a, err := bignum.NewFromString("18446744073709551617")
//	b := bignum.NewFromInt64(-2)
//	z := bignum.NewZero()
//
// # Arithmetic
//
//	sum  := bignum.Add(a, b)
//	diff := bignum.Sub(a, b)
//	prod := bignum.Mul(a, b)
//	pow  := bignum.Power(a, bignum.NewFromInt64(9))
//	q    := bignum.Quotient(a, b)
//	r    := bignum.Remainder(a, b)
//	g    := bignum.GCD(a, b)
//
// Mul dispatches between schoolbook and Karatsuba multiplication based on
// operand size (see KaratsubaThreshold); a number-theoretic-transform
// strategy is available explicitly through MulStrategy for callers who
// want it, but the default selector never reaches it.
//
// # Sequence helpers
//
// AddSeq, SubSeq and MulSeq fold the corresponding binary operation over
// an ordered slice, left to right — this matters for SubSeq, which is not
// associative. Min, Max, SizeMin and SizeMax fold similarly.
//
// # Error handling
//
// Malformed decimal strings passed to NewFromString are reported through
// a returned error (ErrInvalidDigit, ErrEmptyInput). Every other
// precondition violation documented on an operation below — division by
// zero, a negative exponent to Power, a sign query against zero, an empty
// variadic sequence — is unrecoverable and is reported by a panic, not an
// error return, matching the convention stdlib math/big itself uses for
// the same class of violation.
//
// # Thread safety
//
// BigInt values are immutable from the caller's perspective, excluding
// IncrementInPlace and DecrementInPlace. Distinct BigInts may be read and
// combined concurrently by distinct goroutines without coordination. A
// single BigInt shared across goroutines is safe only if none of them
// calls the in-place mutators.
package bignum
