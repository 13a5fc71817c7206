package fixedpoint

import "testing"

func TestSquareRoot32(t *testing.T) {
	tests := []struct {
		v    uint32
		want uint32
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{16, 4},
		{15, 3},
		{1000000, 1000},
	}
	for _, tc := range tests {
		if got := SquareRoot32(tc.v); got != tc.want {
			t.Errorf("SquareRoot32(%d) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestSquareRoot64(t *testing.T) {
	tests := []struct {
		v    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{1 << 40, 1 << 20},
	}
	for _, tc := range tests {
		if got := SquareRoot64(tc.v); got != tc.want {
			t.Errorf("SquareRoot64(%d) = %d, want %d", tc.v, got, tc.want)
		}
	}
}
