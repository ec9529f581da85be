package bignum

// QuoRem divides a by b using decimal schoolbook long division and
// returns the truncating quotient and the non-negative magnitude
// remainder. The quotient's sign is the XOR of the operand signs; the
// remainder is always 0 <= remainder < |b| and carries no sign — it is
// the "raw" remainder that Quotient and Remainder build on. QuoRem
// panics if b is zero.
func QuoRem(a, b *BigInt) (quotient, remainder *BigInt) {
	assertf(!b.IsZero(), "bignum: division by zero")

	aAbs, bAbs := Abs(a), Abs(b)
	q, r := quoRemMagnitude(aAbs, bAbs)
	q.sign = a.sign != b.sign
	q.trim()
	return q, r
}

// quoRemMagnitude divides |dividend| by |divisor| (both assumed
// non-negative) using the schoolbook long-division loop: walk the
// dividend's digits most-significant first, maintaining a running
// "current" remainder that each new digit is pulled down into, and at
// each step produce one quotient digit via the slow subtract-based
// primitive. A quotient digit of zero is simply the case where the
// current remainder is still smaller than the divisor after the
// pull-down — equivalent to the "pull down until large enough" framing,
// expressed per-digit.
func quoRemMagnitude(dividend, divisor *BigInt) (quotient, remainder *BigInt) {
	if compareMagnitude(dividend, divisor) < 0 {
		return NewZero(), dividend.Copy()
	}

	quotientDigits := make([]byte, 0, len(dividend.digits))
	current := NewZero()
	for _, d := range dividend.digits {
		current = pullDownDigit(current, d)
		q, r := quoRemSlowDigit(current, divisor)
		quotientDigits = append(quotientDigits, q)
		current = r
	}

	quotient = newFromDigits(quotientDigits).trim()
	remainder = current
	return quotient, remainder
}

// pullDownDigit appends digit d as the new least-significant digit of n,
// trimming any leading zeros that result.
func pullDownDigit(n *BigInt, d byte) *BigInt {
	digits := make([]byte, len(n.digits)+1)
	copy(digits, n.digits)
	digits[len(digits)-1] = d
	return newFromDigits(digits).trim()
}

// quoRemSlowDigit computes floor(current/divisor) and the matching
// remainder by repeated subtraction. The quotient is known to fit a
// single decimal digit (0-9) by construction of the caller's loop, so
// this runs at most nine subtractions.
func quoRemSlowDigit(current, divisor *BigInt) (q byte, r *BigInt) {
	rem := current
	for compareMagnitude(rem, divisor) >= 0 {
		rem = subMagnitude(rem, divisor).trim()
		q++
	}
	return q, rem
}

// Quotient returns the truncating quotient of a / b, with sign equal to
// the XOR of the operand signs. It panics if b is zero.
func Quotient(a, b *BigInt) *BigInt {
	q, _ := QuoRem(a, b)
	return q
}

// Remainder returns the "mathematician's" remainder of a / b: its sign
// follows b rather than a. When a and b share a sign,
// add(mul(Quotient(a,b), b), Remainder(a,b)) == a; when the signs differ
// it does not, because Quotient truncates toward zero (for example
// Remainder(-10, 4) is 2 while Quotient(-10, 4) is -2). With differing
// signs and a zero raw remainder the result is b itself. It panics if b
// is zero.
func Remainder(a, b *BigInt) *BigInt {
	assertf(!b.IsZero(), "bignum: division by zero")
	_, raw := QuoRem(a, b)

	switch {
	case a.sign && b.sign:
		return Neg(raw)
	case a.sign && !b.sign:
		return Sub(b, raw)
	case !a.sign && b.sign:
		return Add(b, raw)
	default:
		return raw
	}
}
