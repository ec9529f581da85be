package bignum

// ntt.go implements the number-theoretic-transform convolution strategy
// gated behind MulStrategy(a, b, StrategyNTT). The default Mul selector
// never reaches it: spec parity here means NTT exists as an explicit,
// opt-in strategy rather than dead code compiled but unreachable, and
// its modulus/primitive root are real NTT-friendly constants, not
// placeholders.
//
// The prime 998244353 = 119*2^23 + 1 is the standard small NTT-friendly
// modulus with primitive root 3; it supports convolution lengths up to
// 2^23 without overflowing the transform, which is far beyond what this
// strategy is ever exercised at in this library.

const nttModulus = 998244353
const nttPrimitiveRoot = 3

// mulNTT multiplies a and b by converting each to a digit-coefficient
// polynomial (one decimal digit per coefficient, least-significant
// first), convolving the two polynomials with a forward NTT / pointwise
// multiply / inverse NTT, and resolving the resulting coefficients back
// to base 10 with ordinary carry propagation.
func mulNTT(a, b *BigInt) *BigInt {
	if a.IsZero() || b.IsZero() {
		return NewZero()
	}

	la, lb := len(a.digits), len(b.digits)
	// Each convolution coefficient sums at most min(la, lb) digit
	// products, each at most 9*9 = 81; this bound must stay under the
	// modulus or the pointwise product wraps and corrupts the result.
	// That is a real limit of the single-modulus strategy documented
	// here (a multi-modulus CRT combine would lift it); callers with
	// operands large enough to hit it should use Karatsuba instead.
	maxCoeff := int64(81) * int64(min(la, lb))
	assertf(maxCoeff < nttModulus, "bignum: operands too large for the single-modulus NTT strategy; use MulStrategy(_, _, StrategyKaratsuba)")

	n := 1
	for n < la+lb {
		n *= 2
	}

	va := toLSBCoeffs(a, n)
	vb := toLSBCoeffs(b, n)

	ntt(va, false)
	ntt(vb, false)
	for i := range va {
		va[i] = (va[i] * vb[i]) % nttModulus
	}
	ntt(va, true)

	result := carryPropagate(va)
	result.sign = a.sign != b.sign
	return result.trim()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// toLSBCoeffs converts n's magnitude into a length-size coefficient
// vector, least-significant digit first, zero padded.
func toLSBCoeffs(num *BigInt, size int) []int64 {
	out := make([]int64, size)
	d := num.digits
	for i := 0; i < len(d); i++ {
		out[i] = int64(d[len(d)-1-i])
	}
	return out
}

// carryPropagate resolves a coefficient vector (least-significant first,
// each entry reduced mod nttModulus but small enough not to have
// wrapped, per mulNTT's precondition) into a canonical BigInt.
func carryPropagate(coeffs []int64) *BigInt {
	carry := int64(0)
	out := make([]int64, 0, len(coeffs)+1)
	for _, c := range coeffs {
		v := c + carry
		out = append(out, v%10)
		carry = v / 10
	}
	for carry > 0 {
		out = append(out, carry%10)
		carry /= 10
	}
	if len(out) == 0 {
		out = append(out, 0)
	}

	digits := make([]byte, len(out))
	for i, v := range out {
		digits[len(out)-1-i] = byte(v)
	}
	return newFromDigits(digits)
}

// ntt performs an in-place iterative Cooley-Tukey number-theoretic
// transform over Z/nttModulus on a, whose length must be a power of
// two. inverse selects the inverse transform.
func ntt(a []int64, inverse bool) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		w := modPow(nttPrimitiveRoot, int64((nttModulus-1)/int64(length)), nttModulus)
		if inverse {
			w = modPow(w, nttModulus-2, nttModulus)
		}
		for i := 0; i < n; i += length {
			wn := int64(1)
			for j := 0; j < length/2; j++ {
				u := a[i+j]
				v := (a[i+j+length/2] * wn) % nttModulus
				a[i+j] = (u + v) % nttModulus
				a[i+j+length/2] = (u - v + nttModulus) % nttModulus
				wn = (wn * w) % nttModulus
			}
		}
	}

	if inverse {
		nInv := modPow(int64(n), nttModulus-2, nttModulus)
		for i := range a {
			a[i] = (a[i] * nInv) % nttModulus
		}
	}
}

// modPow computes base^exp mod m by repeated squaring over native
// int64 arithmetic; it is internal to the NTT convolution and unrelated
// to the public, arbitrary-precision Power.
func modPow(base, exp, m int64) int64 {
	base %= m
	if base < 0 {
		base += m
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % m
		}
		base = (base * base) % m
		exp >>= 1
	}
	return result
}
