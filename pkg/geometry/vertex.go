// Package geometry holds the integer-only 3D primitives the rendering
// pipeline operates on: vertices, rotations, transforms and the view
// frustum. Every component is scaled in units of fixedpoint.Unit.
package geometry

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

// Unit re-exports fixedpoint.Unit: one whole unit of position/normal length.
const Unit = fixedpoint.Unit

// Range is the usable magnitude of an int16 vertex component.
const Range = 32767

// Vertex16 is the working-precision 3D vector: int16 x/y/z, scale Unit.
type Vertex16 struct {
	X, Y, Z int16
}

// Vertex32 is the extended-precision variant used for intermediate light and
// normal math where a Vertex16 would lose range.
type Vertex32 struct {
	X, Y, Z int32
}

func (v Vertex16) Widen() Vertex32 {
	return Vertex32{int32(v.X), int32(v.Y), int32(v.Z)}
}

func (v Vertex16) Add(o Vertex16) Vertex16 {
	return Vertex16{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vertex16) Sub(o Vertex16) Vertex16 {
	return Vertex16{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vertex16) Negate() Vertex16 {
	return Vertex16{-v.X, -v.Y, -v.Z}
}

// DotProduct16 returns the dot product of two Vertex16 as an int32.
// VertexDot is the theoretical maximum magnitude (3 * Range^2); it exceeds
// the int32 range, so the result wraps for inputs near full range.
const VertexDot = int64(3) * Range * Range

func DotProduct16(a, b Vertex16) int32 {
	return int32(a.X)*int32(b.X) + int32(a.Y)*int32(b.Y) + int32(a.Z)*int32(b.Z)
}

func DotProduct32(a, b Vertex32) int64 {
	return int64(a.X)*int64(b.X) + int64(a.Y)*int64(b.Y) + int64(a.Z)*int64(b.Z)
}

// DotProductMixed supports the common case of a Vertex32 intermediate
// dotted against a Vertex16 normal, returning the widened int64 result.
func DotProductMixed(a Vertex32, b Vertex16) int64 {
	return int64(a.X)*int64(b.X) + int64(a.Y)*int64(b.Y) + int64(a.Z)*int64(b.Z)
}

// CrossProduct16 returns the (unnormalized) cross product of the edges
// b-a and c-a, via int32 intermediates.
func CrossProduct16(a, b, c Vertex16) Vertex32 {
	ux, uy, uz := int32(b.X)-int32(a.X), int32(b.Y)-int32(a.Y), int32(b.Z)-int32(a.Z)
	vx, vy, vz := int32(c.X)-int32(a.X), int32(c.Y)-int32(a.Y), int32(c.Z)-int32(a.Z)
	return Vertex32{
		X: uy*vz - uz*vy,
		Y: uz*vx - ux*vz,
		Z: ux*vy - uy*vx,
	}
}

// Distance16 returns the integer distance between two Vertex16.
func Distance16(a, b Vertex16) int32 {
	dx := int32(a.X) - int32(b.X)
	dy := int32(a.Y) - int32(b.Y)
	dz := int32(a.Z) - int32(b.Z)
	return int32(fixedpoint.SquareRoot32(uint32(dx*dx + dy*dy + dz*dz)))
}

// NormalizeVertex16 scales v in place so its magnitude becomes Unit (within
// ±1 lsb), leaving a zero vector untouched.
func NormalizeVertex16(v *Vertex16) {
	sq := uint32(int32(v.X)*int32(v.X) + int32(v.Y)*int32(v.Y) + int32(v.Z)*int32(v.Z))
	magnitude := fixedpoint.SquareRoot32(sq)
	if magnitude == 0 || magnitude == Unit {
		return
	}
	shifts := fixedpoint.GetBitShifts(Unit)
	v.X = int16((int64(v.X) << shifts) / int64(magnitude))
	v.Y = int16((int64(v.Y) << shifts) / int64(magnitude))
	v.Z = int16((int64(v.Z) << shifts) / int64(magnitude))
}

// NormalizeVertex32 is NormalizeVertex16 for the wider Vertex32, used where
// intermediate math (light vectors, half-vectors) would overflow int16.
func NormalizeVertex32(v *Vertex32) {
	sq := uint64(int64(v.X)*int64(v.X) + int64(v.Y)*int64(v.Y) + int64(v.Z)*int64(v.Z))
	magnitude := fixedpoint.SquareRoot64(sq)
	if magnitude == 0 || magnitude == Unit {
		return
	}
	shifts := int64(fixedpoint.GetBitShifts(Unit))
	v.X = int32((int64(v.X) << shifts) / int64(magnitude))
	v.Y = int32((int64(v.Y) << shifts) / int64(magnitude))
	v.Z = int32((int64(v.Z) << shifts) / int64(magnitude))
}

// NormalizeVertex32Fast pre-halves an over-range Vertex32 until its
// components fit the int16 domain, then normalizes at Vertex16 precision.
// Grounded on the source's NormalizeVertex32Fast: cheap normalization for
// vectors built from differences of world-space positions, which can
// exceed int16 range before being reduced to a direction.
func NormalizeVertex32Fast(v *Vertex32) {
	for v.X > Range || v.X < -Range-1 || v.Y > Range || v.Y < -Range-1 || v.Z > Range || v.Z < -Range-1 {
		v.X >>= 1
		v.Y >>= 1
		v.Z >>= 1
	}
	narrow := Vertex16{int16(v.X), int16(v.Y), int16(v.Z)}
	NormalizeVertex16(&narrow)
	v.X, v.Y, v.Z = int32(narrow.X), int32(narrow.Y), int32(narrow.Z)
}

// AverageApproximate returns the approximate mean of three int16 values
// using a multiply-shift in place of division by three: (sum*0x5556)>>16.
// Grounded on Vertex.h's AverageApproximate, used to derive a triangle's
// representative depth from its three screen-space z values.
func AverageApproximate(a, b, c int16) int16 {
	sum := int32(a) + int32(b) + int32(c)
	return int16((sum * 0x5556) >> 16)
}

// Average returns the exact mean of two int16 values via an arithmetic
// right shift, grounded on Edge/AbstractObject.h's Average(a,b) (distinct
// from the three-value AverageApproximate used by triangles).
func Average(a, b int16) int16 {
	return int16((int32(a) + int32(b)) >> 1)
}
