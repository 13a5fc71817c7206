package engine

import (
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
)

// BuildFrustum derives a world-space culling frustum from the camera state:
// the near plane faces the camera's forward axis, and the four side planes
// are the camera's right/up axes and their negations, all passing through
// the camera position. This is a simplified stand-in for a true
// field-of-view pyramid (whose exact per-FOV plane-normal derivation in the
// source was not available to ground against — see DESIGN.md): it culls
// geometry behind the camera and well outside its forward octant, at the
// cost of not narrowing with a tighter FOV setting.
func BuildFrustum(camera geometry.CameraState, radiusSquared int32) geometry.Frustum {
	trig := geometry.CalculateRotationTrig(camera.Rotation)
	forward := geometry.RotatePoint(geometry.Vertex16{Z: geometry.Unit}, trig)
	right := geometry.RotatePoint(geometry.Vertex16{X: geometry.Unit}, trig)
	up := geometry.RotatePoint(geometry.Vertex16{Y: geometry.Unit}, trig)

	plane := func(normal geometry.Vertex16) geometry.Plane16 {
		dot := geometry.DotProduct16(normal, camera.Position)
		distance := -int32(dot) >> fixedpoint.GetBitShifts(geometry.Unit)
		return geometry.Plane16{Vertex16: normal, Distance: fixedpoint.SaturateI16(distance)}
	}

	return geometry.Frustum{
		Near:          plane(forward),
		Left:          plane(right.Negate()),
		Right:         plane(right),
		Bottom:        plane(up.Negate()),
		Top:           plane(up),
		Origin:        camera.Position,
		RadiusSquared: radiusSquared,
	}
}
