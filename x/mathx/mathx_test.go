package mathx

import "testing"

func TestRoundDiv(t *testing.T) {
	cases := []struct {
		a, b, want int32
	}{
		{23450, 100, 235}, // 23.45 -> 23.5 in deci-units
		{23440, 100, 234},
		{-3200, 100, -32},
		{-3250, 100, -33}, // half away from zero
		{150_000, 1000, 150},
		{-15_400, 1000, -15},
		{0, 100, 0},
		{50, 100, 1},
		{-50, 100, -1},
		{1, 0, 0},
	}
	for _, c := range cases {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Errorf("RoundDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(9, 0, 7); got != 7 {
		t.Errorf("Clamp(9,0,7) = %d, want 7", got)
	}
	if got := Clamp(-1, 0, 7); got != 0 {
		t.Errorf("Clamp(-1,0,7) = %d, want 0", got)
	}
	if got := Clamp(3, 7, 0); got != 3 { // swapped bounds
		t.Errorf("Clamp(3,7,0) = %d, want 3", got)
	}
}

func TestBetween(t *testing.T) {
	cases := []struct {
		v, lo, hi int32
		want      bool
	}{
		{0, -9_999, 99_999, true},
		{-9_999, -9_999, 99_999, true},
		{99_999, -9_999, 99_999, true},
		{-10_000, -9_999, 99_999, false},
		{100_000, -9_999, 99_999, false},
		{5, 7, 0, true}, // swapped bounds
	}
	for _, c := range cases {
		if got := Between(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Between(%d, %d, %d) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(int32(-15)); got != 15 {
		t.Errorf("Abs(-15) = %d, want 15", got)
	}
	if got := Abs(int32(15)); got != 15 {
		t.Errorf("Abs(15) = %d, want 15", got)
	}
	if got := Abs(int32(0)); got != 0 {
		t.Errorf("Abs(0) = %d, want 0", got)
	}
}
