package color

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

// Fraction16 is a 3-channel fixed-point color used for lighting math: each
// channel is a UFraction16 in [0,1], letting shaders accumulate contributions
// above nominal white before the final clamp-to-Rgb8. No alpha channel — it
// is not needed for shading, matching ColorFraction.h's color_fraction16_t.
type Fraction16 struct {
	R, G, B fixedpoint.UFraction16
}

// FromRgb8 expands a packed color into Fraction16 channels.
func FromRgb8(c Rgb8) Fraction16 {
	return Fraction16{channelToFraction(c.Red()), channelToFraction(c.Green()), channelToFraction(c.Blue())}
}

// ToRgb8 contracts a Fraction16 back into a packed color, saturating each
// channel (accumulated light can legitimately exceed 1X).
func (f Fraction16) ToRgb8() Rgb8 {
	clampChannel := func(v fixedpoint.UFraction16) uint8 {
		if v >= fixedpoint.UFraction16One {
			return 255
		}
		return fractionToChannel(v)
	}
	return RGB(clampChannel(f.R), clampChannel(f.G), clampChannel(f.B))
}

// InterpolateLinear blends a toward b per channel by fraction f — the plain
// lerp variant.
func InterpolateLinear(f fixedpoint.UFraction16, a, b Fraction16) Fraction16 {
	return Fraction16{
		R: fixedpoint.UFraction16(fixedpoint.Interpolate16(f, int32(a.R), int32(b.R))),
		G: fixedpoint.UFraction16(fixedpoint.Interpolate16(f, int32(a.G), int32(b.G))),
		B: fixedpoint.UFraction16(fixedpoint.Interpolate16(f, int32(a.B), int32(b.B))),
	}
}

// InterpolateEnergy is an alternate, "energy preserving" blend that combines
// channels as sqrt(a^2+b^2) weighted by f rather than a plain lerp, grounded
// on ColorFraction.h's ColorInterpolate (distinct from ColorInterpolateLinear).
// Useful for additive light accumulation where a linear lerp would visibly
// dim the brighter of the two inputs.
func InterpolateEnergy(f fixedpoint.UFraction16, a, b Fraction16) Fraction16 {
	mix := func(av, bv fixedpoint.UFraction16) fixedpoint.UFraction16 {
		wa := uint64(fixedpoint.UFraction16One - f)
		wb := uint64(f)
		sq := (wa*wa*uint64(av)*uint64(av) + wb*wb*uint64(bv)*uint64(bv)) >> (2 * fixedpoint.UFraction16Shift)
		return fixedpoint.ClampUFraction16(int32(fixedpoint.SquareRoot64(sq)))
	}
	return Fraction16{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Add saturating-adds two Fraction16 colors, component-wise.
func (f Fraction16) Add(o Fraction16) Fraction16 {
	add := func(a, b fixedpoint.UFraction16) fixedpoint.UFraction16 {
		v := int32(a) + int32(b)
		if v > 0xFFFF {
			v = 0xFFFF
		}
		return fixedpoint.UFraction16(v)
	}
	return Fraction16{add(f.R, o.R), add(f.G, o.G), add(f.B, o.B)}
}

// Scale multiplies each channel by weight.
func (f Fraction16) Scale(weight fixedpoint.UFraction16) Fraction16 {
	return Fraction16{
		R: fixedpoint.UFraction16(fixedpoint.Scale16(weight, int32(f.R))),
		G: fixedpoint.UFraction16(fixedpoint.Scale16(weight, int32(f.G))),
		B: fixedpoint.UFraction16(fixedpoint.Scale16(weight, int32(f.B))),
	}
}

// HSVToFraction converts integer HSV (each a UFraction16 in [0,1], hue
// wrapping) to a Fraction16 color with no floating point and no runtime
// division, via a 6-segment dispatch. Grounded on ColorFraction.h's
// HsvToColorFraction; used by demo/background gradients.
func HSVToFraction(hue, saturation, value fixedpoint.UFraction16) Fraction16 {
	if saturation == 0 {
		return Fraction16{value, value, value}
	}

	segmentSize := fixedpoint.UFraction16One / 6
	segment := hue / segmentSize
	remainder := fixedpoint.UFraction16(uint32(hue%segmentSize) * 6)

	p := fixedpoint.UFraction16(fixedpoint.Scale16(fixedpoint.UFraction16One-saturation, int32(value)))
	q := fixedpoint.UFraction16(fixedpoint.Scale16(fixedpoint.UFraction16One-fixedpoint.UFraction16(fixedpoint.Scale16(saturation, int32(remainder))), int32(value)))
	t := fixedpoint.UFraction16(fixedpoint.Scale16(fixedpoint.UFraction16One-fixedpoint.UFraction16(fixedpoint.Scale16(saturation, int32(fixedpoint.UFraction16One-remainder))), int32(value)))

	switch segment % 6 {
	case 0:
		return Fraction16{value, t, p}
	case 1:
		return Fraction16{q, value, p}
	case 2:
		return Fraction16{p, value, t}
	case 3:
		return Fraction16{p, q, value}
	case 4:
		return Fraction16{t, p, value}
	default:
		return Fraction16{value, p, q}
	}
}
