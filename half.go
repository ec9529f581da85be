package bignum

// Half returns floor(n/2) for a non-negative n. It makes a single
// left-to-right pass over n's digits, conceptually prepending a leading
// zero, and looks up each output digit from the current input digit and
// the parity of the previous input digit: an even predecessor maps
// 0-1/2-3/4-5/6-7/8-9 to 0/1/2/3/4, an odd predecessor maps the same
// bands to 5/6/7/8/9. This is a dedicated routine rather than a general
// division, because Power's exponent-halving step needs it to stay
// cheap.
func Half(n *BigInt) *BigInt {
	assertf(!n.sign, "bignum: Half requires a non-negative operand")

	out := make([]byte, len(n.digits))
	prevEven := true
	for i, d := range n.digits {
		var digit byte
		switch d {
		case 0, 1:
			digit = 0
		case 2, 3:
			digit = 1
		case 4, 5:
			digit = 2
		case 6, 7:
			digit = 3
		case 8, 9:
			digit = 4
		}
		if !prevEven {
			digit += 5
		}
		out[i] = digit
		prevEven = d%2 == 0
	}

	return newFromDigits(out).trim()
}
