package fixedpoint

import "testing"

func TestScale16(t *testing.T) {
	tests := []struct {
		name string
		f    UFraction16
		v    int32
		want int32
	}{
		{"zero weight", 0, 1000, 0},
		{"full weight", UFraction16One, 1000, 1000},
		{"half weight", UFraction16One / 2, 1000, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Scale16(tc.f, tc.v); got != tc.want {
				t.Errorf("Scale16(%d, %d) = %d, want %d", tc.f, tc.v, got, tc.want)
			}
		})
	}
}

func TestInterpolate16(t *testing.T) {
	tests := []struct {
		name    string
		f       UFraction16
		a, b    int32
		want    int32
	}{
		{"at a", 0, 0, 100, 0},
		{"at b", UFraction16One, 0, 100, 100},
		{"midpoint", UFraction16One / 2, 0, 100, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Interpolate16(tc.f, tc.a, tc.b); got != tc.want {
				t.Errorf("Interpolate16(%d, %d, %d) = %d, want %d", tc.f, tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestClampUFraction16(t *testing.T) {
	tests := []struct {
		name string
		v    int32
		want UFraction16
	}{
		{"negative clamps to zero", -5, 0},
		{"in range passes through", 100, 100},
		{"over max clamps to one", int32(UFraction16One) + 1, UFraction16One},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampUFraction16(tc.v); got != tc.want {
				t.Errorf("ClampUFraction16(%d) = %d, want %d", tc.v, got, tc.want)
			}
		})
	}
}

func TestGetUFraction16(t *testing.T) {
	tests := []struct {
		name             string
		numerator, denom uint32
		want             UFraction16
	}{
		{"zero denominator saturates", 5, 0, UFraction16One},
		{"numerator at denominator saturates", 10, 10, UFraction16One},
		{"numerator over denominator saturates", 20, 10, UFraction16One},
		{"half", 5, 10, UFraction16One / 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetUFraction16(tc.numerator, tc.denom); got != tc.want {
				t.Errorf("GetUFraction16(%d, %d) = %d, want %d", tc.numerator, tc.denom, got, tc.want)
			}
		})
	}
}

func TestGetBitShifts(t *testing.T) {
	tests := []struct {
		v    uint32
		want uint8
	}{
		{1, 0},
		{2, 1},
		{4096, 12},
		{65536, 16},
	}
	for _, tc := range tests {
		if got := GetBitShifts(tc.v); got != tc.want {
			t.Errorf("GetBitShifts(%d) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestSaturateI16(t *testing.T) {
	tests := []struct {
		name string
		v    int32
		want int16
	}{
		{"in range", 100, 100},
		{"over max saturates", 1 << 20, 32767},
		{"under min saturates", -(1 << 20), -32768},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SaturateI16(tc.v); got != tc.want {
				t.Errorf("SaturateI16(%d) = %d, want %d", tc.v, got, tc.want)
			}
		})
	}
}

func TestAngleNormalize(t *testing.T) {
	tests := []struct {
		name string
		a    Angle
		want Angle
	}{
		{"already in range", 100, 100},
		{"exactly range wraps to zero", AngleRange, 0},
		{"negative wraps positive", -1, AngleRange - 1},
		{"large negative wraps", -AngleRange - 1, AngleRange - 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Normalize(); got != tc.want {
				t.Errorf("(%d).Normalize() = %d, want %d", tc.a, got, tc.want)
			}
		})
	}
}
