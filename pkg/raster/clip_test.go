package raster

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/geometry"
)

func TestClipLineFullyInside(t *testing.T) {
	x1, y1, x2, y2, ok := clipLine(1, 1, 5, 5, 10, 10)
	if !ok || x1 != 1 || y1 != 1 || x2 != 5 || y2 != 5 {
		t.Errorf("clipLine fully inside = (%d,%d)-(%d,%d) ok=%v, want unchanged", x1, y1, x2, y2, ok)
	}
}

func TestClipLineFullyOutsideRejected(t *testing.T) {
	_, _, _, _, ok := clipLine(-10, -10, -5, -5, 10, 10)
	if ok {
		t.Errorf("clipLine fully outside window should be rejected")
	}
}

func TestClipLineClampsToWindow(t *testing.T) {
	_, _, x2, y2, ok := clipLine(5, 5, 20, 5, 10, 10)
	if !ok {
		t.Fatalf("clipLine partial overlap should not be rejected")
	}
	if x2 != 9 {
		t.Errorf("clipLine clamped x2 = %d, want 9 (width-1)", x2)
	}
	if y2 != 5 {
		t.Errorf("clipLine clamped y2 = %d, want 5 (unchanged)", y2)
	}
}

func TestClipTriangleFullyInsideUnchanged(t *testing.T) {
	a, b, c := point2{1, 1}, point2{5, 1}, point2{3, 5}
	poly := clipTriangle(a, b, c, 10, 10)
	if len(poly) != 3 {
		t.Fatalf("clipTriangle fully inside = %d vertices, want 3", len(poly))
	}
}

func TestClipTriangleFullyOutsideEmpty(t *testing.T) {
	a, b, c := point2{-10, -10}, point2{-5, -10}, point2{-10, -5}
	poly := clipTriangle(a, b, c, 10, 10)
	if len(poly) != 0 {
		t.Errorf("clipTriangle fully outside = %d vertices, want 0", len(poly))
	}
}

func TestClipTriangleStraddlingEdgeProducesPolygon(t *testing.T) {
	// Triangle straddling the right edge of a 10-wide window.
	a, b, c := point2{5, 1}, point2{15, 1}, point2{5, 8}
	poly := clipTriangle(a, b, c, 10, 10)
	if len(poly) < 3 {
		t.Errorf("clipTriangle straddling edge = %d vertices, want >= 3", len(poly))
	}
	for _, p := range poly {
		if p.x < 0 || p.x >= 10 {
			t.Errorf("clipped vertex %+v has x outside [0,10)", p)
		}
	}
}

func TestFanTriangulate(t *testing.T) {
	poly := []point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris := fanTriangulate(poly)
	if len(tris) != 2 {
		t.Fatalf("fanTriangulate of quad = %d triangles, want 2", len(tris))
	}
	if tris[0][0] != poly[0] || tris[1][0] != poly[0] {
		t.Errorf("fanTriangulate triangles should all originate from vertex 0")
	}
}

func TestFanTriangulateDegenerateInput(t *testing.T) {
	if got := fanTriangulate([]point2{{0, 0}, {1, 1}}); got != nil {
		t.Errorf("fanTriangulate of < 3 vertices = %v, want nil", got)
	}
}

func TestClipLine3DBothInFrontUnchanged(t *testing.T) {
	a := geometry.Vertex16{X: 1, Y: 2, Z: 10}
	b := geometry.Vertex16{X: 3, Y: 4, Z: 20}
	na, nb, ok := clipLine3D(a, b)
	if !ok || na != a || nb != b {
		t.Errorf("clipLine3D both in front = %+v,%+v ok=%v, want unchanged", na, nb, ok)
	}
}

func TestClipLine3DBothBehindRejected(t *testing.T) {
	a := geometry.Vertex16{Z: -10}
	b := geometry.Vertex16{Z: -20}
	_, _, ok := clipLine3D(a, b)
	if ok {
		t.Errorf("clipLine3D both behind near plane should be rejected")
	}
}

func TestClipLine3DCrossingInterpolatesToZero(t *testing.T) {
	a := geometry.Vertex16{X: 0, Y: 0, Z: 10}
	b := geometry.Vertex16{X: 10, Y: 0, Z: -10}
	_, nb, ok := clipLine3D(a, b)
	if !ok {
		t.Fatalf("clipLine3D crossing segment should not be rejected")
	}
	if nb.Z != 0 {
		t.Errorf("clipLine3D crossing endpoint Z = %d, want 0", nb.Z)
	}
	if nb.X != 5 {
		t.Errorf("clipLine3D crossing endpoint X = %d, want 5 (midpoint)", nb.X)
	}
}
