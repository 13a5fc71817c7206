package geometry

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

// Plane16 is a culling plane: unit normal (X,Y,Z) plus signed distance from
// the origin along that normal.
type Plane16 struct {
	Vertex16
	Distance int16
}

// Frustum is the view volume used for culling: a near plane, four side
// planes, and a bounding sphere for a cheap early-reject. Rebuilt once per
// frame from the camera state. Grounded on Model.h's frustum_t.
type Frustum struct {
	Near, Left, Right, Top, Bottom Plane16
	Origin                         Vertex16
	RadiusSquared                  int32
}

// DefaultPlaneTolerance matches frustum_t::IsPointInside's default
// (Unit/16): side planes tolerate a small amount of "outside" before
// rejecting, avoiding popping artifacts at the exact frustum edge.
const DefaultPlaneTolerance = Unit / 16

func planeDistanceToPoint(p Plane16, point Vertex16) int32 {
	dot := DotProduct16(p.Vertex16, point)
	return (dot >> fixedpoint.GetBitShifts(Unit)) + int32(p.Distance)
}

// IsPointInside reports whether point survives the sphere early-reject, the
// near-plane front test, and the four side-plane tolerance tests. The near
// plane uses a strict >=0 test while the side planes use an asymmetric
// "<=tolerance" test — both conventions are carried over verbatim from
// frustum_t::IsPointInside.
func (f Frustum) IsPointInside(point Vertex16, planeTolerance int32) bool {
	dx := int32(point.X) - int32(f.Origin.X)
	dy := int32(point.Y) - int32(f.Origin.Y)
	dz := int32(point.Z) - int32(f.Origin.Z)
	squareDistance := dx*dx + dy*dy + dz*dz
	if squareDistance > f.RadiusSquared {
		return false
	}

	if planeDistanceToPoint(f.Near, point) < 0 {
		return false
	}
	if planeDistanceToPoint(f.Left, point) > planeTolerance {
		return false
	}
	if planeDistanceToPoint(f.Right, point) > planeTolerance {
		return false
	}
	if planeDistanceToPoint(f.Top, point) > planeTolerance {
		return false
	}
	if planeDistanceToPoint(f.Bottom, point) > planeTolerance {
		return false
	}
	return true
}

// IsSphereInside is the object-level culling test: a bounding sphere at
// center with the given radius survives if its center passes IsPointInside
// with the plane tolerance widened by radius. Only the side-plane checks use
// that tolerance; the near-plane and frustum-radius checks are applied to
// the center alone. This mirrors how
// ObjectCulling mode is used against a whole mesh's bounding sphere rather
// than a single point.
func (f Frustum) IsSphereInside(center Vertex16, radius int16) bool {
	return f.IsPointInside(center, int32(radius)+DefaultPlaneTolerance)
}
