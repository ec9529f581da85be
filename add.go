package bignum

// Add returns a + b. It dispatches on sign: same-sign operands add
// magnitudes, opposite-sign operands subtract the smaller magnitude from
// the larger, exactly as Sub does the mirror image.
func Add(a, b *BigInt) *BigInt {
	switch {
	case !a.sign && b.sign:
		return Sub(a, Abs(b))
	case a.sign && !b.sign:
		return Sub(b, Abs(a))
	case a.sign && b.sign:
		res := addMagnitude(a, b)
		res.sign = true
		return res.trim()
	default:
		return addMagnitude(a, b).trim()
	}
}

// addMagnitude returns |a| + |b| as a non-negative BigInt.
func addMagnitude(a, b *BigInt) *BigInt {
	la, lb := len(a.digits), len(b.digits)
	n := la
	if lb > n {
		n = lb
	}
	res := newEmpty(n + 1)

	carry := byte(0)
	for i := 0; i < n+1; i++ {
		posA := la - i
		posB := lb - i

		var da, db byte
		if posA > 0 {
			da = a.digits[posA-1]
		}
		if posB > 0 {
			db = b.digits[posB-1]
		}
		sum := da + db + carry
		carry = 0
		if sum > 9 {
			sum -= 10
			carry = 1
		}
		res.digits[n-i] = sum
	}

	return res
}

// Sub returns a - b. It dispatches on sign: a - (-b) = a + |b|; (-a) - b
// = -(|a| + b); when both operands share a sign it subtracts the smaller
// magnitude from the larger and negates the result if the operands had
// to be swapped to do so.
func Sub(a, b *BigInt) *BigInt {
	switch {
	case b.sign:
		return Add(a, Abs(b))
	case a.sign && !b.sign:
		res := Add(Abs(a), b)
		res.sign = true
		return res.trim()
	}

	if compareMagnitude(a, b) < 0 {
		res := subMagnitude(b, a)
		res.sign = true
		return res.trim()
	}
	return subMagnitude(a, b).trim()
}

// subMagnitude returns |a| - |b|, assuming |a| >= |b|.
func subMagnitude(a, b *BigInt) *BigInt {
	la, lb := len(a.digits), len(b.digits)
	res := newEmpty(la)

	borrow := int8(0)
	for i := 0; i < la; i++ {
		posA := la - i
		posB := lb - i

		da := int8(a.digits[posA-1])
		var db int8
		if posB > 0 {
			db = int8(b.digits[posB-1])
		}

		diff := da - db - borrow
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		res.digits[la-1-i] = byte(diff)
	}

	return res
}

// Increment returns n + 1.
func Increment(n *BigInt) *BigInt {
	return Add(n, NewFromInt64(1))
}

// Decrement returns n - 1.
func Decrement(n *BigInt) *BigInt {
	return Sub(n, NewFromInt64(1))
}

// IncrementInPlace replaces n's contents with n + 1. It is one of the
// two operations in this package that mutates its receiver; see the
// package doc's thread-safety note.
func (n *BigInt) IncrementInPlace() {
	res := Increment(n)
	n.digits = res.digits
	n.sign = res.sign
	n.length = res.length
}

// DecrementInPlace replaces n's contents with n - 1. It is one of the
// two operations in this package that mutates its receiver; see the
// package doc's thread-safety note.
func (n *BigInt) DecrementInPlace() {
	res := Decrement(n)
	n.digits = res.digits
	n.sign = res.sign
	n.length = res.length
}
