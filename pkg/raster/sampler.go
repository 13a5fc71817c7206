package raster

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// TriangleAffineSampler precomputes per-triangle edge coefficients so that
// per-pixel barycentric weights are two multiplies and a clamp. Grounded on
// Shader.h's AbstractTriangleFunctor. IndexA/B/C report which original
// vertex (0=a,1=b,2=c) each returned weight corresponds to — SetFragmentData
// may swap the B/C roles internally to keep the precomputed area positive,
// so callers combining weights with other per-vertex data (z, color, uv)
// must index through these fields rather than assuming (wA,wB,wC) maps to
// (a,b,c) positionally.
type TriangleAffineSampler struct {
	area                   int32
	cx, cy                 int32
	bmcy, cmbx, cmay, amcx int32

	IndexA, IndexB, IndexC int
}

// SetFragmentData prepares the sampler for triangle (ax,ay)-(bx,by)-(cx,cy)
// in screen space. Returns false for a degenerate (zero-area) triangle.
func (s *TriangleAffineSampler) SetFragmentData(ax, ay, bx, by, cx, cy int16) bool {
	area := int32(by-cy)*int32(ax-cx) + int32(cx-bx)*int32(ay-cy)
	if area == 0 {
		return false
	}
	if area < 0 {
		area = -area
		s.bmcy = int32(cy - by)
		s.cmbx = int32(bx - cx)
		s.cmay = int32(by - ay)
		s.amcx = int32(ax - bx)
		s.cx, s.cy = int32(bx), int32(by)
		s.IndexA, s.IndexB, s.IndexC = 0, 2, 1
	} else {
		s.bmcy = int32(by - cy)
		s.cmbx = int32(cx - bx)
		s.cmay = int32(cy - ay)
		s.amcx = int32(ax - cx)
		s.cx, s.cy = int32(cx), int32(cy)
		s.IndexA, s.IndexB, s.IndexC = 0, 1, 2
	}
	s.area = area
	return true
}

// Weights returns the three barycentric fractions for (x,y), each in
// [0, UFraction16One]. Each weight is rounded down, so inside the triangle
// they sum to UFraction16One or up to 2 lsb less.
func (s *TriangleAffineSampler) Weights(x, y int16) (wA, wB, wC fixedpoint.UFraction16) {
	dx, dy := int32(x)-s.cx, int32(y)-s.cy
	rawA := clamp32(s.bmcy*dx+s.cmbx*dy, 0, s.area)
	rawB := clamp32(s.cmay*dx+s.amcx*dy, 0, s.area)
	rawC := s.area - min32(rawA+rawB, s.area)

	wA = fixedpoint.GetUFraction16(uint32(rawA), uint32(s.area))
	wB = fixedpoint.GetUFraction16(uint32(rawB), uint32(s.area))
	wC = fixedpoint.GetUFraction16(uint32(rawC), uint32(s.area))
	return
}

// TrianglePerspectiveSampler corrects the affine barycentric weights for
// perspective by weighting each vertex's contribution with a cached
// Qi=(1<<24)/max(1,zi). Grounded on spec.md §4.4's perspective-correct
// sampler; falls back to the affine weights when the combined denominator
// is zero, which happens only when all three affine weights are zero
// (qFactor clamps every depth to at least 1, so Qi is never zero).
type TrianglePerspectiveSampler struct {
	TriangleAffineSampler
	qa, qb, qc int64
}

func qFactor(z int16) int64 {
	zz := int64(z)
	if zz < 1 {
		zz = 1
	}
	return (int64(1) << 24) / zz
}

// SetFragmentData prepares the sampler for triangle (ax,ay)-(bx,by)-(cx,cy)
// with camera-space depths (za,zb,zc) aligned to the same a/b/c order.
func (s *TrianglePerspectiveSampler) SetFragmentData(ax, ay, bx, by, cx, cy int16, za, zb, zc int16) bool {
	if !s.TriangleAffineSampler.SetFragmentData(ax, ay, bx, by, cx, cy) {
		return false
	}
	depths := [3]int16{za, zb, zc}
	s.qa = qFactor(depths[s.IndexA])
	s.qb = qFactor(depths[s.IndexB])
	s.qc = qFactor(depths[s.IndexC])
	return true
}

// Weights returns the perspective-corrected barycentric fractions for (x,y).
func (s *TrianglePerspectiveSampler) Weights(x, y int16) (fA, fB, fC fixedpoint.UFraction16) {
	wA, wB, wC := s.TriangleAffineSampler.Weights(x, y)

	nA := int64(wA) * s.qa
	nB := int64(wB) * s.qb
	nC := int64(wC) * s.qc
	denom := nA + nB + nC
	if denom == 0 {
		return wA, wB, wC
	}

	one := int64(fixedpoint.UFraction16One)
	fA = fixedpoint.UFraction16((nA*one + denom/2) / denom)
	fB = fixedpoint.UFraction16((nB*one + denom/2) / denom)
	fC = fixedpoint.UFraction16((nC*one + denom/2) / denom)
	return
}

// LineSampler returns the fraction along segment (x1,y1)-(x2,y2) at which
// (x,y) lies, used to interpolate per-vertex color/attributes along edges
// (edge_vertex_fragment_t / billboard diagonals).
type LineSampler struct {
	x1, y1, dx, dy int32
	lengthSquared  int32
}

func (s *LineSampler) SetEndpoints(x1, y1, x2, y2 int16) {
	s.x1, s.y1 = int32(x1), int32(y1)
	s.dx, s.dy = int32(x2)-s.x1, int32(y2)-s.y1
	s.lengthSquared = s.dx*s.dx + s.dy*s.dy
}

// Fraction projects (x,y) onto the segment and returns the clamped position
// as a ufraction16 (0=start, 1X=end).
func (s *LineSampler) Fraction(x, y int16) fixedpoint.UFraction16 {
	if s.lengthSquared == 0 {
		return 0
	}
	px, py := int32(x)-s.x1, int32(y)-s.y1
	dot := px*s.dx + py*s.dy
	if dot <= 0 {
		return 0
	}
	if dot >= s.lengthSquared {
		return fixedpoint.UFraction16One
	}
	return fixedpoint.GetUFraction16(uint32(dot), uint32(s.lengthSquared))
}

// Coordinate16 is a 2D integer coordinate, used for UV interpolation.
type Coordinate16 struct{ X, Y int16 }

// UvInterpolator combines barycentric weights with three per-vertex UV
// coordinates to produce an interpolated texture coordinate.
type UvInterpolator struct {
	A, B, C Coordinate16
}

func (u UvInterpolator) Sample(wA, wB, wC fixedpoint.UFraction16) Coordinate16 {
	x := fixedpoint.Scale16(wA, int32(u.A.X)) + fixedpoint.Scale16(wB, int32(u.B.X)) + fixedpoint.Scale16(wC, int32(u.C.X))
	y := fixedpoint.Scale16(wA, int32(u.A.Y)) + fixedpoint.Scale16(wB, int32(u.B.Y)) + fixedpoint.Scale16(wC, int32(u.C.Y))
	return Coordinate16{fixedpoint.SaturateI16(x), fixedpoint.SaturateI16(y)}
}

// DepthSampler combines barycentric weights with three per-vertex depths to
// produce an interpolated depth value for per-pixel depth-tinted fragment
// shaders.
type DepthSampler struct {
	A, B, C int16
}

func (d DepthSampler) Sample(wA, wB, wC fixedpoint.UFraction16) int16 {
	z := fixedpoint.Scale16(wA, int32(d.A)) + fixedpoint.Scale16(wB, int32(d.B)) + fixedpoint.Scale16(wC, int32(d.C))
	return fixedpoint.SaturateI16(z)
}
