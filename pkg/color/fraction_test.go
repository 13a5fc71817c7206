package color

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/fixedpoint"
)

func TestFractionRoundTrip(t *testing.T) {
	c := RGB(128, 64, 200)
	f := FromRgb8(c)
	got := f.ToRgb8()
	// Channel<->fraction conversion drops the low 7 bits; allow a 1-step residual.
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(got.Red(), c.Red()) > 1 || diff(got.Green(), c.Green()) > 1 || diff(got.Blue(), c.Blue()) > 1 {
		t.Errorf("round trip %+v -> %+v -> %+v, want ~original", c, f, got)
	}
}

func TestFractionToRgb8ClampsOverflow(t *testing.T) {
	f := Fraction16{R: fixedpoint.UFraction16One + fixedpoint.UFraction16One/2, G: 0, B: 0}
	got := f.ToRgb8()
	if got.Red() != 255 {
		t.Errorf("ToRgb8 overflow red = %d, want 255", got.Red())
	}
}

func TestInterpolateLinearEndpoints(t *testing.T) {
	a := Fraction16{R: 0, G: 0, B: 0}
	b := Fraction16{R: fixedpoint.UFraction16One, G: fixedpoint.UFraction16One, B: fixedpoint.UFraction16One}
	if got := InterpolateLinear(0, a, b); got != a {
		t.Errorf("InterpolateLinear(0,...) = %+v, want a", got)
	}
	if got := InterpolateLinear(fixedpoint.UFraction16One, a, b); got != b {
		t.Errorf("InterpolateLinear(1,...) = %+v, want b", got)
	}
}

func TestFraction16Add(t *testing.T) {
	a := Fraction16{R: fixedpoint.UFraction16One, G: 100, B: 0}
	b := Fraction16{R: fixedpoint.UFraction16One, G: 50, B: 0}
	got := a.Add(b)
	if got.R != fixedpoint.UFraction16(0xFFFF) {
		t.Errorf("Add saturating R = %d, want %d", got.R, fixedpoint.UFraction16(0xFFFF))
	}
	if got.G != 150 {
		t.Errorf("Add G = %d, want 150", got.G)
	}
}

func TestFraction16Scale(t *testing.T) {
	f := Fraction16{R: fixedpoint.UFraction16One, G: fixedpoint.UFraction16One, B: fixedpoint.UFraction16One}
	got := f.Scale(0)
	if got != (Fraction16{}) {
		t.Errorf("Scale(0) = %+v, want zero", got)
	}
}

func TestHSVToFractionGrayscaleWhenDesaturated(t *testing.T) {
	got := HSVToFraction(12345, 0, 20000)
	if got.R != 20000 || got.G != 20000 || got.B != 20000 {
		t.Errorf("HSVToFraction with zero saturation = %+v, want all channels = value", got)
	}
}

func TestHSVToFractionRedAtZeroHueFullSaturation(t *testing.T) {
	got := HSVToFraction(0, fixedpoint.UFraction16One, fixedpoint.UFraction16One)
	if got.R != fixedpoint.UFraction16One {
		t.Errorf("HSVToFraction(0,1,1).R = %d, want %d", got.R, fixedpoint.UFraction16One)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("HSVToFraction(0,1,1) = %+v, want G=B=0", got)
	}
}
