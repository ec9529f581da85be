package bignum

import "testing"

func parseAll(t *testing.T, ss ...string) []*BigInt {
	t.Helper()
	ns := make([]*BigInt, len(ss))
	for i, s := range ss {
		ns[i] = mustParse(t, s)
	}
	return ns
}

func TestAddSeq(t *testing.T) {
	got := AddSeq(parseAll(t, "1", "-2", "18446744073709551617")...)
	if got.String() != "18446744073709551616" {
		t.Errorf("AddSeq = %v, want 18446744073709551616", got)
	}
}

func TestSubSeqIsLeftFold(t *testing.T) {
	// (100 - 10) - 5 = 85, not 100 - (10 - 5) = 95.
	got := SubSeq(parseAll(t, "100", "10", "5")...)
	if got.String() != "85" {
		t.Errorf("SubSeq(100, 10, 5) = %v, want 85 (left-to-right fold)", got)
	}
}

func TestMulSeq(t *testing.T) {
	got := MulSeq(parseAll(t, "-2", "18446744073709551617")...)
	if got.String() != "-36893488147419103234" {
		t.Errorf("MulSeq = %v, want -36893488147419103234", got)
	}
}

func TestMinMax(t *testing.T) {
	ns := parseAll(t, "5", "-100", "30", "-2")
	if got := Min(ns...).String(); got != "-100" {
		t.Errorf("Min(...) = %v, want -100", got)
	}
	if got := Max(ns...).String(); got != "30" {
		t.Errorf("Max(...) = %v, want 30", got)
	}
}

func TestSizeMinSizeMax(t *testing.T) {
	ns := parseAll(t, "5", "123456", "-42")
	if got := SizeMin(ns...); got != 1 {
		t.Errorf("SizeMin(...) = %d, want 1", got)
	}
	if got := SizeMax(ns...); got != 6 {
		t.Errorf("SizeMax(...) = %d, want 6", got)
	}
}

func TestEmptySeqPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"AddSeq", func() { AddSeq() }},
		{"SubSeq", func() { SubSeq() }},
		{"MulSeq", func() { MulSeq() }},
		{"Min", func() { Min() }},
		{"Max", func() { Max() }},
		{"SizeMin", func() { SizeMin() }},
		{"SizeMax", func() { SizeMax() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s() with no operands did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestFreeSeqIsANoOp(t *testing.T) {
	ns := parseAll(t, "1", "2", "3")
	FreeSeq(ns...)
	if ns[0].String() != "1" || ns[1].String() != "2" || ns[2].String() != "3" {
		t.Error("FreeSeq mutated its operands")
	}
}
