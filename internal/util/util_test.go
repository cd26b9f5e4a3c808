package util

import "testing"

func TestMax(t *testing.T) {
	if Max(3, 5) != 5 {
		t.Error("Max(3,5) should be 5")
	}
	if Max(uint8(9), uint8(2)) != 9 {
		t.Error("Max(9,2) should be 9")
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want uint64 }{
		{10, 3, 4},
		{9, 3, 3},
		{1, 64, 1},
		{0, 64, 0},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Errorf("CeilDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
