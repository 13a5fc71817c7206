// Package color implements the two color representations the pipeline
// passes around: Rgb8, a packed 32-bit ARGB value used for storage and
// surface I/O, and Fraction16, a 3-channel fixed-point color used by scene
// shaders for lighting math. Conversions between the two are shift-based,
// never division-based, matching the source's ColorFraction.h.
package color

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

// Rgb8 is a packed 0xAARRGGBB color. Alpha is honored only by the blend-mode
// pixel operations; opaque drawing ignores it.
type Rgb8 uint32

func RGB(r, g, b uint8) Rgb8 {
	return Rgb8(0xFF)<<24 | Rgb8(r)<<16 | Rgb8(g)<<8 | Rgb8(b)
}

func RGBA(r, g, b, a uint8) Rgb8 {
	return Rgb8(a)<<24 | Rgb8(r)<<16 | Rgb8(g)<<8 | Rgb8(b)
}

func (c Rgb8) Alpha() uint8 { return uint8(c >> 24) }
func (c Rgb8) Red() uint8   { return uint8(c >> 16) }
func (c Rgb8) Green() uint8 { return uint8(c >> 8) }
func (c Rgb8) Blue() uint8  { return uint8(c) }

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

// rgbToFractionShift converts between an 8-bit channel and a
// UFraction16 channel via shifts, grounded on ColorFraction.h's
// RgbDownShiftDown/RgbUpShiftUp constants (UFraction16 is 15-bit, a channel
// is 8-bit: a 7-bit gap).
const rgbToFractionShift = fixedpoint.UFraction16Shift - 8

func channelToFraction(c uint8) fixedpoint.UFraction16 {
	return fixedpoint.UFraction16(uint16(c) << rgbToFractionShift)
}

func fractionToChannel(f fixedpoint.UFraction16) uint8 {
	return uint8(f >> rgbToFractionShift)
}

// MultiplyChannel scales an 8-bit channel by a ufraction16 intensity,
// saturating at 255 (intensity above 1X can brighten past white).
func MultiplyChannel(channel uint8, intensity fixedpoint.UFraction16) uint8 {
	v := (int32(intensity) * int32(channel)) >> fixedpoint.UFraction16Shift
	return fixedpoint.SaturateU8(v)
}

// BlendMode selects how a drawn pixel combines with the surface's existing
// contents. Grounded on Rasterizer/Abstract2dDrawer.h's pixel_blend_mode_t
// and IOutputSurface's PixelBlend* family (spec.md §6.1).
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendAdd
	BlendSubtract
	BlendMultiply
	BlendScreen
)

// Blend combines src over dst per mode, saturating each channel.
func Blend(mode BlendMode, dst, src Rgb8) Rgb8 {
	switch mode {
	case BlendReplace:
		return src
	case BlendAlpha:
		a := fixedpoint.GetUFraction16(uint32(src.Alpha()), 255)
		r := fixedpoint.Interpolate16(a, int32(dst.Red()), int32(src.Red()))
		g := fixedpoint.Interpolate16(a, int32(dst.Green()), int32(src.Green()))
		b := fixedpoint.Interpolate16(a, int32(dst.Blue()), int32(src.Blue()))
		return RGB(fixedpoint.SaturateU8(r), fixedpoint.SaturateU8(g), fixedpoint.SaturateU8(b))
	case BlendAdd:
		return RGB(
			fixedpoint.SaturateU8(int32(dst.Red())+int32(src.Red())),
			fixedpoint.SaturateU8(int32(dst.Green())+int32(src.Green())),
			fixedpoint.SaturateU8(int32(dst.Blue())+int32(src.Blue())),
		)
	case BlendSubtract:
		return RGB(
			fixedpoint.SaturateU8(int32(dst.Red())-int32(src.Red())),
			fixedpoint.SaturateU8(int32(dst.Green())-int32(src.Green())),
			fixedpoint.SaturateU8(int32(dst.Blue())-int32(src.Blue())),
		)
	case BlendMultiply:
		return RGB(
			uint8((uint16(dst.Red())*uint16(src.Red()))/255),
			uint8((uint16(dst.Green())*uint16(src.Green()))/255),
			uint8((uint16(dst.Blue())*uint16(src.Blue()))/255),
		)
	case BlendScreen:
		screen := func(a, b uint8) uint8 {
			return fixedpoint.SaturateU8(255 - (int32(255-a)*int32(255-b))/255)
		}
		return RGB(screen(dst.Red(), src.Red()), screen(dst.Green(), src.Green()), screen(dst.Blue(), src.Blue()))
	default:
		return src
	}
}
