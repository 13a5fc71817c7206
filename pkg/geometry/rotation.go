package geometry

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

// RotationAngle is the per-axis rotation of an object or camera, each
// component independently wrapping modulo fixedpoint.AngleRange.
type RotationAngle struct {
	X, Y, Z fixedpoint.Angle
}

// RotationTrig caches the sine/cosine of a RotationAngle, scaled to
// [-Unit, Unit], ready to feed RotatePoint without recomputing trig per
// vertex.
type RotationTrig struct {
	CosX, SinX int16
	CosY, SinY int16
	CosZ, SinZ int16
}

func CalculateRotationTrig(r RotationAngle) RotationTrig {
	return RotationTrig{
		CosX: fixedpoint.Cosine16(r.X), SinX: fixedpoint.Sine16(r.X),
		CosY: fixedpoint.Cosine16(r.Y), SinY: fixedpoint.Sine16(r.Y),
		CosZ: fixedpoint.Cosine16(r.Z), SinZ: fixedpoint.Sine16(r.Z),
	}
}

// RotatePoint applies the rotation in X, then Y, then Z axis order, matching
// the source's ApplyTransform rotation sequence.
func RotatePoint(v Vertex16, t RotationTrig) Vertex16 {
	// Rotate X: affects Y/Z.
	y1 := (int32(v.Y)*int32(t.CosX) - int32(v.Z)*int32(t.SinX)) >> fixedpoint.UnitShifts
	z1 := (int32(v.Y)*int32(t.SinX) + int32(v.Z)*int32(t.CosX)) >> fixedpoint.UnitShifts
	x1 := int32(v.X)

	// Rotate Y: affects X/Z.
	x2 := (x1*int32(t.CosY) + z1*int32(t.SinY)) >> fixedpoint.UnitShifts
	z2 := (-x1*int32(t.SinY) + z1*int32(t.CosY)) >> fixedpoint.UnitShifts
	y2 := y1

	// Rotate Z: affects X/Y.
	x3 := (x2*int32(t.CosZ) - y2*int32(t.SinZ)) >> fixedpoint.UnitShifts
	y3 := (x2*int32(t.SinZ) + y2*int32(t.CosZ)) >> fixedpoint.UnitShifts

	return Vertex16{
		X: fixedpoint.SaturateI16(x3),
		Y: fixedpoint.SaturateI16(y3),
		Z: fixedpoint.SaturateI16(z2),
	}
}
