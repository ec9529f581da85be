package bignum

import "testing"

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal positive", "123", "123", 0},
		{"equal negative", "-123", "-123", 0},
		{"equal zero forms", "0", "-0", 0},
		{"positive greater magnitude", "124", "123", 1},
		{"positive lesser magnitude", "123", "124", -1},
		{"positive beats negative", "1", "-1000", 1},
		{"negative loses to positive", "-1000", "1", -1},
		{"more negative is smaller", "-200", "-100", -1},
		{"less negative is larger", "-100", "-200", 1},
		{"different lengths", "18446744073709551617", "9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			if got := a.Cmp(b); sign(got) != sign(tt.want) {
				t.Errorf("Cmp(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func TestIsPositiveIsNegative(t *testing.T) {
	pos := mustParse(t, "5")
	if !pos.IsPositive() {
		t.Error("IsPositive() on 5 = false, want true")
	}
	if pos.IsNegative() {
		t.Error("IsNegative() on 5 = true, want false")
	}

	neg := mustParse(t, "-5")
	if neg.IsPositive() {
		t.Error("IsPositive() on -5 = true, want false")
	}
	if !neg.IsNegative() {
		t.Error("IsNegative() on -5 = false, want true")
	}
}

func TestIsPositiveZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IsPositive() on zero did not panic")
		}
	}()
	NewZero().IsPositive()
}

func TestIsNegativeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IsNegative() on zero did not panic")
		}
	}()
	NewZero().IsNegative()
}

func TestIsZero(t *testing.T) {
	if !NewZero().IsZero() {
		t.Error("NewZero().IsZero() = false, want true")
	}
	if mustParse(t, "-0").IsZero() == false {
		t.Error(`NewFromString("-0").IsZero() = false, want true`)
	}
	if mustParse(t, "1").IsZero() {
		t.Error("IsZero() on 1 = true, want false")
	}
}

func TestIsUnit(t *testing.T) {
	if !mustParse(t, "1").IsUnit() {
		t.Error("IsUnit() on 1 = false, want true")
	}
	if !mustParse(t, "-1").IsUnit() {
		t.Error("IsUnit() on -1 = false, want true")
	}
	if mustParse(t, "2").IsUnit() {
		t.Error("IsUnit() on 2 = true, want false")
	}
}

func TestIsEvenIsOdd(t *testing.T) {
	tests := []struct {
		input      string
		wantEven   bool
	}{
		{"0", true},
		{"2", true},
		{"-4", true},
		{"3", false},
		{"-7", false},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.input)
		if got := n.IsEven(); got != tt.wantEven {
			t.Errorf("IsEven(%v) = %v, want %v", tt.input, got, tt.wantEven)
		}
		if got := n.IsOdd(); got == tt.wantEven {
			t.Errorf("IsOdd(%v) = %v, want %v", tt.input, got, !tt.wantEven)
		}
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"0", 1},
		{"9", 1},
		{"10", 2},
		{"-18446744073709551617", 20},
	}
	for _, tt := range tests {
		if got := mustParse(t, tt.input).Size(); got != tt.want {
			t.Errorf("Size(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
