// Package raster implements WindowRasterizer: 2D/3D drawing and raster
// operations over an OutputSurface, with Cohen–Sutherland line clipping,
// Sutherland–Hodgman triangle clipping, and per-pixel shader callables.
package raster

import "github.com/gitmodu/integerworld/pkg/geometry"

// Outcode bits for Cohen–Sutherland clipping against a [0,width)x[0,height)
// window.
const (
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

func outcode(x, y, width, height int16) uint8 {
	var code uint8
	if x < 0 {
		code |= outLeft
	} else if x >= width {
		code |= outRight
	}
	if y < 0 {
		code |= outBottom
	} else if y >= height {
		code |= outTop
	}
	return code
}

// clipLine clips (x1,y1)-(x2,y2) against [0,width)x[0,height) using
// Cohen–Sutherland outcode trivial-reject/accept, returning ok=false when
// the segment lies entirely outside.
func clipLine(x1, y1, x2, y2, width, height int16) (cx1, cy1, cx2, cy2 int16, ok bool) {
	code1 := outcode(x1, y1, width, height)
	code2 := outcode(x2, y2, width, height)

	for {
		if code1 == 0 && code2 == 0 {
			return x1, y1, x2, y2, true
		}
		if code1&code2 != 0 {
			return 0, 0, 0, 0, false
		}

		codeOut := code1
		if code1 == 0 {
			codeOut = code2
		}

		var x, y int16
		switch {
		case codeOut&outTop != 0:
			x = x1 + (x2-x1)*(height-1-y1)/(y2-y1)
			y = height - 1
		case codeOut&outBottom != 0:
			x = x1 + (x2-x1)*(0-y1)/(y2-y1)
			y = 0
		case codeOut&outRight != 0:
			y = y1 + (y2-y1)*(width-1-x1)/(x2-x1)
			x = width - 1
		case codeOut&outLeft != 0:
			y = y1 + (y2-y1)*(0-x1)/(x2-x1)
			x = 0
		}

		if codeOut == code1 {
			x1, y1 = x, y
			code1 = outcode(x1, y1, width, height)
		} else {
			x2, y2 = x, y
			code2 = outcode(x2, y2, width, height)
		}
	}
}

type point2 struct{ x, y int16 }

// clipTriangle clips triangle (a,b,c) against the four window half-planes
// (Sutherland–Hodgman), returning a convex polygon of up to 6 vertices
// (four planes can add at most one vertex per edge to a triangle).
func clipTriangle(a, b, c point2, width, height int16) []point2 {
	poly := []point2{a, b, c}

	clipPlane := func(poly []point2, inside func(p point2) bool, intersect func(p, q point2) point2) []point2 {
		if len(poly) == 0 {
			return poly
		}
		out := make([]point2, 0, len(poly)+1)
		prev := poly[len(poly)-1]
		prevIn := inside(prev)
		for _, cur := range poly {
			curIn := inside(cur)
			if curIn {
				if !prevIn {
					out = append(out, intersect(prev, cur))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, intersect(prev, cur))
			}
			prev, prevIn = cur, curIn
		}
		return out
	}

	lerp := func(p, q point2, num, den int32) point2 {
		if den == 0 {
			return p
		}
		return point2{
			x: p.x + int16((int32(q.x-p.x)*num)/den),
			y: p.y + int16((int32(q.y-p.y)*num)/den),
		}
	}

	poly = clipPlane(poly, func(p point2) bool { return p.x >= 0 },
		func(p, q point2) point2 { return lerp(p, q, int32(-p.x), int32(q.x-p.x)) })
	poly = clipPlane(poly, func(p point2) bool { return p.x < width },
		func(p, q point2) point2 { return lerp(p, q, int32(width-1-p.x), int32(q.x-p.x)) })
	poly = clipPlane(poly, func(p point2) bool { return p.y >= 0 },
		func(p, q point2) point2 { return lerp(p, q, int32(-p.y), int32(q.y-p.y)) })
	poly = clipPlane(poly, func(p point2) bool { return p.y < height },
		func(p, q point2) point2 { return lerp(p, q, int32(height-1-p.y), int32(q.y-p.y)) })

	return poly
}

// fanTriangulate splits a convex polygon into triangles fanned from vertex 0.
func fanTriangulate(poly []point2) [][3]point2 {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]point2, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, [3]point2{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

// clipLine3D clips a segment against the z=0 near plane in camera space,
// interpolating x/y at the crossing. Returns ok=false only when both
// endpoints are behind the plane (fully culled); when both are in front it
// returns the segment unchanged.
func clipLine3D(a, b geometry.Vertex16) (na, nb geometry.Vertex16, ok bool) {
	if a.Z >= 0 && b.Z >= 0 {
		return a, b, true
	}
	if a.Z < 0 && b.Z < 0 {
		return a, b, false
	}
	// Exactly one endpoint behind: interpolate the crossing at z=0.
	if a.Z < 0 {
		a, b = b, a
	}
	denom := int32(a.Z) - int32(b.Z)
	t := int32(a.Z) // numerator: distance from a to the crossing, denom is a.Z-b.Z
	x := int32(a.X) - (int32(a.X)-int32(b.X))*t/denom
	y := int32(a.Y) - (int32(a.Y)-int32(b.Y))*t/denom
	crossing := geometry.Vertex16{X: int16(x), Y: int16(y), Z: 0}
	return a, crossing, true
}
