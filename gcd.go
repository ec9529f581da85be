package bignum

// GCD returns the greatest common divisor of a and b using subtractive
// Euclid over absolute values: repeatedly replace the larger of the two
// with their difference until they're equal. The number of subtractions
// grows linearly with the magnitude of the inputs (GCD(n, 1) takes n-1
// of them); a modulo-based or binary GCD would be
// asymptotically faster and can be substituted without changing the
// contract.
//
// GCD(a, 0) and GCD(0, b) return |a| and |b| respectively — the
// subtractive loop alone cannot reach that result (subtracting zero
// never shrinks the non-zero operand), so the zero case is handled
// before the loop runs.
func GCD(a, b *BigInt) *BigInt {
	x, y := Abs(a), Abs(b)
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	for x.Cmp(y) != 0 {
		if x.Cmp(y) > 0 {
			x = Sub(x, y)
		} else {
			y = Sub(y, x)
		}
	}
	return x
}
