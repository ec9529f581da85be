package bignum

// Power returns base raised to the exp-th power. exp must be
// non-negative; Power panics otherwise, rather than leaving the
// behavior unspecified. It implements right-to-left binary
// exponentiation: while exp is non-zero, if exp is odd the running
// result is multiplied by the running base and exp is decremented, then
// exp is halved and the running base is squared. The halving step uses
// Half rather than general division, keeping the loop cheap.
func Power(base, exp *BigInt) *BigInt {
	assertf(!exp.sign, "bignum: Power requires a non-negative exponent")

	result := NewFromInt64(1)
	a := base.Copy()
	e := exp.Copy()

	for !e.IsZero() {
		if e.IsOdd() {
			result = Mul(result, a)
			e = Decrement(e)
		}
		e = Half(e)
		a = Mul(a, a)
	}

	return result
}
