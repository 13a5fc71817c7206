package geometry

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

// Scale16 is a fixed-point resize factor; Scale16One represents 1.0 (no
// resize), matching the Unit scale used elsewhere so a single shift amount
// serves both.
type Scale16 int16

const Scale16One Scale16 = Unit

// Transform is the per-object world transform: scale, then rotate
// (X, Y, Z order), then translate. Grounded on Transform.h's
// transform16_scale_rotate_translate_t / ApplyTransform.
type Transform struct {
	Resize      Scale16
	Rotation    RotationTrig
	Translation Vertex16
}

// Apply scales, rotates then translates v, matching ApplyTransform's fixed
// order: scale is applied first so rotation and translation operate in the
// object's final size.
func (t Transform) Apply(v Vertex16) Vertex16 {
	if t.Resize != Scale16One {
		v.X = fixedpoint.SaturateI16((int32(v.X) * int32(t.Resize)) >> fixedpoint.UnitShifts)
		v.Y = fixedpoint.SaturateI16((int32(v.Y) * int32(t.Resize)) >> fixedpoint.UnitShifts)
		v.Z = fixedpoint.SaturateI16((int32(v.Z) * int32(t.Resize)) >> fixedpoint.UnitShifts)
	}
	v = RotatePoint(v, t.Rotation)
	return v.Add(t.Translation)
}

// ApplyRotation rotates v without translating or scaling, used for normals
// (which must rotate with the object but never translate).
func (t Transform) ApplyRotation(v Vertex16) Vertex16 {
	return RotatePoint(v, t.Rotation)
}

// CameraTransform is the reverse transform the engine builds once per frame
// from camera_state: translate by -Position, rotate by (AngleRange-rotation)
// per axis. Grounded on Transform.h's transform32_rotate_translate_t.
type CameraTransform struct {
	Rotation    RotationTrig
	Translation Vertex16
}

// cameraShift is the forward offset applied before rotating so that the
// scene sits in front of the origin after the camera transform, matching
// ApplyCameraTransform's temporary z += Unit / z -= Unit bracketing.
const cameraShift = Unit

// Apply reproduces ApplyCameraTransform: translate first (with a forward
// z-shift bracketing the rotation), then rotate — the reverse order from the
// ordinary world Transform.Apply, because the camera transform maps world
// space into camera space rather than local space into world space.
func (t CameraTransform) Apply(v Vertex16) Vertex16 {
	v.Z = fixedpoint.SaturateI16(int32(v.Z) + cameraShift)
	v = v.Add(t.Translation)
	v = RotatePoint(v, t.Rotation)
	v.Z = fixedpoint.SaturateI16(int32(v.Z) - cameraShift)
	return v
}

// CameraState is the externally-owned camera position/rotation the engine
// reads each frame to build the reverse CameraTransform.
type CameraState struct {
	Position Vertex16
	Rotation RotationAngle
}

// BuildCameraTransform computes the reverse transform for a camera: negate
// position, negate rotation (modulo AngleRange) per axis. Grounded on
// EngineRenderTask.h's CycleStart state.
func BuildCameraTransform(camera CameraState) CameraTransform {
	reverseRotation := RotationAngle{
		X: (fixedpoint.AngleRange - camera.Rotation.X).Normalize(),
		Y: (fixedpoint.AngleRange - camera.Rotation.Y).Normalize(),
		Z: (fixedpoint.AngleRange - camera.Rotation.Z).Normalize(),
	}
	return CameraTransform{
		Rotation:    CalculateRotationTrig(reverseRotation),
		Translation: camera.Position.Negate(),
	}
}
