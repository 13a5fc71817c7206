package raster

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/surface"
)

// PixelShader is a per-pixel callable with mutable local state (a sampler
// caching edge coefficients, say). Sample returns false to skip the pixel
// entirely (e.g. a sampler reporting degenerate geometry).
type PixelShader interface {
	Sample(out *color.Rgb8, x, y int16) bool
}

// PixelShaderFunc adapts a plain function to PixelShader.
type PixelShaderFunc func(out *color.Rgb8, x, y int16) bool

func (f PixelShaderFunc) Sample(out *color.Rgb8, x, y int16) bool { return f(out, x, y) }

// WindowRasterizer draws onto a fixed-size window backed by an
// OutputSurface, clipping everything to the window bounds. It carries no
// per-frame state of its own beyond width/height and the blend mode in
// effect for the current draw call.
type WindowRasterizer struct {
	Surface surface.OutputSurface
	Width   int16
	Height  int16
	Blend   color.BlendMode
}

func NewWindowRasterizer(s surface.OutputSurface) *WindowRasterizer {
	w, h, _ := s.Dimensions()
	return &WindowRasterizer{Surface: s, Width: w, Height: h, Blend: color.BlendReplace}
}

// Resize refreshes the cached dimensions after the surface changes size.
func (r *WindowRasterizer) Resize(width, height int16) {
	r.Width, r.Height = width, height
}

func (r *WindowRasterizer) inBounds(x, y int16) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// DrawPixel bounds-checks then forwards to the surface, honoring the
// current blend mode.
func (r *WindowRasterizer) DrawPixel(c color.Rgb8, x, y int16) {
	if !r.inBounds(x, y) {
		return
	}
	r.blendPixel(c, x, y)
}

func (r *WindowRasterizer) blendPixel(c color.Rgb8, x, y int16) {
	if r.Blend == color.BlendReplace {
		r.Surface.Pixel(c, x, y)
		return
	}
	if b, ok := r.Surface.(surface.BlendSurface); ok {
		switch r.Blend {
		case color.BlendAlpha:
			b.PixelBlendAlpha(c, x, y)
		case color.BlendAdd:
			b.PixelBlendAdd(c, x, y)
		case color.BlendSubtract:
			b.PixelBlendSubtract(c, x, y)
		case color.BlendMultiply:
			b.PixelBlendMultiply(c, x, y)
		case color.BlendScreen:
			b.PixelBlendScreen(c, x, y)
		}
		return
	}
	r.Surface.Pixel(c, x, y)
}

// DrawPoint draws a Vertex16 if its (camera-space-derived) z is in front of
// the viewer.
func (r *WindowRasterizer) DrawPoint(c color.Rgb8, v geometry.Vertex16) {
	if v.Z < 0 {
		return
	}
	r.DrawPixel(c, v.X, v.Y)
}

// Fill clears the whole window to c.
func (r *WindowRasterizer) Fill(c color.Rgb8) {
	r.Surface.RectangleFill(c, 0, 0, r.Width-1, r.Height-1)
}

// DrawLine clips then forwards to the surface's batch line primitive.
func (r *WindowRasterizer) DrawLine(c color.Rgb8, x1, y1, x2, y2 int16) {
	cx1, cy1, cx2, cy2, ok := clipLine(x1, y1, x2, y2, r.Width, r.Height)
	if !ok {
		return
	}
	if cx1 == cx2 && cy1 == cy2 {
		r.DrawPixel(c, cx1, cy1)
		return
	}
	r.Surface.Line(c, cx1, cy1, cx2, cy2)
}

// DrawLine3D is the 3D variant: segments straddling the z=0 near plane are
// clipped to the crossing before the usual 2D clip+draw.
func (r *WindowRasterizer) DrawLine3D(c color.Rgb8, a, b geometry.Vertex16) {
	na, nb, ok := clipLine3D(a, b)
	if !ok {
		return
	}
	r.DrawLine(c, na.X, na.Y, nb.X, nb.Y)
}

// DrawTriangle clips against the window (Sutherland–Hodgman) and forwards
// the resulting fan-triangulated polygon to the surface's triangle fill.
func (r *WindowRasterizer) DrawTriangle(c color.Rgb8, a, b, cc geometry.Vertex16) {
	poly := clipTriangle(point2{a.X, a.Y}, point2{b.X, b.Y}, point2{cc.X, cc.Y}, r.Width, r.Height)
	switch len(poly) {
	case 0:
		return
	case 1:
		r.DrawPixel(c, poly[0].x, poly[0].y)
		return
	case 2:
		r.DrawLine(c, poly[0].x, poly[0].y, poly[1].x, poly[1].y)
		return
	}
	for _, tri := range fanTriangulate(poly) {
		r.Surface.TriangleFill(c, tri[0].x, tri[0].y, tri[1].x, tri[1].y, tri[2].x, tri[2].y)
	}
}

// DrawTriangle3D gates the 2D path on a z=0 front test. Triangles with one
// or two vertices straddling the near plane are skipped — an explicitly
// incomplete case carried over from the source (spec.md §9 open question).
func (r *WindowRasterizer) DrawTriangle3D(c color.Rgb8, a, b, cc geometry.Vertex16) {
	inFront := 0
	if a.Z >= 0 {
		inFront++
	}
	if b.Z >= 0 {
		inFront++
	}
	if cc.Z >= 0 {
		inFront++
	}
	switch inFront {
	case 3:
		r.DrawTriangle(c, a, b, cc)
	case 0:
		return
	default:
		// 1 or 2 vertices behind the near plane: unimplemented, see
		// spec.md §9 / WindowRasterizer.h's DrawTriangle TODO gaps.
		return
	}
}

// DrawRectangle draws an axis-aligned filled rectangle clamped to the window.
func (r *WindowRasterizer) DrawRectangle(c color.Rgb8, x1, y1, x2, y2 int16) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1, y1 = fixMax(x1, 0), fixMax(y1, 0)
	x2, y2 = fixMin(x2, r.Width-1), fixMin(y2, r.Height-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	if x1 == x2 && y1 == y2 {
		r.DrawPixel(c, x1, y1)
		return
	}
	r.Surface.RectangleFill(c, x1, y1, x2, y2)
}

func fixMax(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}

func fixMin(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}
