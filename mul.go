package bignum

// KaratsubaThreshold is the digit count at or above which Mul switches
// from schoolbook to Karatsuba multiplication. Both operands must be
// below the threshold for schoolbook to be used. It is a tunable, not a
// correctness-affecting constant: benchmark and adjust for your target
// workload.
var KaratsubaThreshold = 750

// Strategy selects a multiplication algorithm explicitly, bypassing the
// size-based selector Mul uses by default.
type Strategy int

const (
	// StrategySchoolbook forces long multiplication regardless of size.
	StrategySchoolbook Strategy = iota
	// StrategyKaratsuba forces the Karatsuba recursion regardless of size.
	StrategyKaratsuba
	// StrategyNTT forces the number-theoretic-transform convolution path.
	// Mul never selects this automatically; it exists for callers who
	// want to exercise or benchmark it directly.
	StrategyNTT
)

// Mul returns a * b, selecting schoolbook multiplication when both
// operands have fewer digits than KaratsubaThreshold, and Karatsuba
// otherwise. Use MulStrategy to force a specific algorithm, including
// the NTT convolution path that this selector never reaches.
func Mul(a, b *BigInt) *BigInt {
	if len(a.digits) < KaratsubaThreshold && len(b.digits) < KaratsubaThreshold {
		return mulSchoolbook(a, b)
	}
	return mulKaratsuba(a, b)
}

// MulStrategy returns a * b computed with the explicitly chosen strategy.
func MulStrategy(a, b *BigInt, s Strategy) *BigInt {
	switch s {
	case StrategySchoolbook:
		return mulSchoolbook(a, b)
	case StrategyKaratsuba:
		return mulKaratsuba(a, b)
	case StrategyNTT:
		return mulNTT(a, b)
	default:
		assertf(false, "bignum: unknown multiplication strategy %d", s)
		return nil
	}
}

// mulSchoolbook multiplies by the digit-by-digit long multiplication
// algorithm: for each digit of b (right to left), form the partial
// product of a by that single digit, shift it into place by the
// matching power of ten, and accumulate.
func mulSchoolbook(a, b *BigInt) *BigInt {
	if a.IsZero() || b.IsZero() {
		return NewZero()
	}

	sum := NewZero()
	la := len(a.digits)
	lb := len(b.digits)
	for power := 0; power < lb; power++ {
		bd := b.digits[lb-1-power]
		step := newEmpty(la + 1)
		carry := byte(0)
		for j := 0; j < la; j++ {
			ad := a.digits[la-1-j]
			prod := ad*bd + carry
			carry = prod / 10
			step.digits[len(step.digits)-1-j] = prod % 10
		}
		step.digits[0] = carry
		step.trim()
		sum = Add(sum, MulPow10(step, power))
	}

	sum.sign = a.sign != b.sign
	return sum.trim()
}

// mulKaratsuba multiplies using the recursive three-multiplication
// split. The base case (either operand a single digit) falls back to
// schoolbook multiplication.
func mulKaratsuba(a, b *BigInt) *BigInt {
	if len(a.digits) == 1 || len(b.digits) == 1 {
		return mulSchoolbook(a, b)
	}

	maxLen := len(a.digits)
	if len(b.digits) > maxLen {
		maxLen = len(b.digits)
	}
	m := (maxLen + 1) / 2

	h1, l1 := splitAt(a, lenMinus(a, m))
	h2, l2 := splitAt(b, lenMinus(b, m))

	z2 := Mul(h1, h2)
	z0 := Mul(l1, l2)
	sum1 := Add(h1, l1)
	sum2 := Add(h2, l2)
	z1 := Sub(Sub(Mul(sum1, sum2), z2), z0)

	res := AddSeq(MulPow10(z2, 2*m), MulPow10(z1, m), z0)
	res.sign = a.sign != b.sign
	return res.trim()
}

// lenMinus returns len(n.digits)-m, clamped at 0.
func lenMinus(n *BigInt, m int) int {
	if len(n.digits) > m {
		return len(n.digits) - m
	}
	return 0
}

// splitAt splits n's magnitude at digit index i (from the most
// significant end): high holds the first i digits, low holds the rest.
// If i is 0, high is zero and low is a copy of n's magnitude.
func splitAt(n *BigInt, i int) (high, low *BigInt) {
	if i <= 0 {
		return NewZero(), Abs(n)
	}
	if i >= len(n.digits) {
		return Abs(n), NewZero()
	}
	highDigits := make([]byte, i)
	copy(highDigits, n.digits[:i])
	lowDigits := make([]byte, len(n.digits)-i)
	copy(lowDigits, n.digits[i:])
	return newFromDigits(highDigits).trim(), newFromDigits(lowDigits).trim()
}

// MulPow10 returns n * 10^p by appending p zero digits. Multiplying zero
// by any power of ten still canonicalizes to zero.
func MulPow10(n *BigInt, p int) *BigInt {
	if p <= 0 {
		return n.Copy()
	}
	digits := make([]byte, len(n.digits)+p)
	copy(digits, n.digits)
	res := newFromDigits(digits)
	res.sign = n.sign
	return res.trim()
}

// Abs returns a copy of n with a non-negative sign.
func Abs(n *BigInt) *BigInt {
	res := n.Copy()
	res.sign = false
	return res
}

// Neg returns a copy of n with its sign flipped. Negating zero returns
// zero, since there is no negative zero in canonical form.
func Neg(n *BigInt) *BigInt {
	if n.IsZero() {
		return n.Copy()
	}
	res := n.Copy()
	res.sign = !res.sign
	return res
}
