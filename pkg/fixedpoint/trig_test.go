package fixedpoint

import "testing"

func within(a, b int16, tolerance int16) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func TestSine16Quadrants(t *testing.T) {
	const tolerance = 4 // table resolution, not exact
	tests := []struct {
		name  string
		angle Angle
		want  int16
	}{
		{"zero", 0, 0},
		{"quarter turn", Angle90, Unit},
		{"half turn", Angle180, 0},
		{"three quarter turn", Angle270, -Unit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sine16(tc.angle); !within(got, tc.want, tolerance) {
				t.Errorf("Sine16(%d) = %d, want ~%d", tc.angle, got, tc.want)
			}
		})
	}
}

func TestCosine16Quadrants(t *testing.T) {
	const tolerance = 4
	tests := []struct {
		name  string
		angle Angle
		want  int16
	}{
		{"zero", 0, Unit},
		{"quarter turn", Angle90, 0},
		{"half turn", Angle180, -Unit},
		{"three quarter turn", Angle270, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cosine16(tc.angle); !within(got, tc.want, tolerance) {
				t.Errorf("Cosine16(%d) = %d, want ~%d", tc.angle, got, tc.want)
			}
		})
	}
}

func TestSine16Symmetry(t *testing.T) {
	// sin(-a) == -sin(a), modulo the table's rounding tolerance.
	const tolerance = 4
	for _, a := range []Angle{100, 5000, 16384, 40000} {
		got := Sine16(-a)
		want := -Sine16(a)
		if !within(got, want, tolerance) {
			t.Errorf("Sine16(-%d) = %d, want ~%d", a, got, want)
		}
	}
}
