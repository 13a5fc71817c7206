// Package surface defines the OutputSurface contract the rasterizer draws
// onto (spec.md §6.1) and ships one concrete implementation, Terminal,
// grounded on the teacher's half-block terminal renderer.
package surface

import "github.com/gitmodu/integerworld/pkg/color"

// OutputSurface is the external collaborator every concrete display driver
// implements. All methods are cooperative: Start/Stop bracket a session,
// IsReady/Flip gate a frame, the draw primitives are called only between a
// successful Start and the matching Stop.
type OutputSurface interface {
	Start() bool
	Stop()
	IsReady() bool
	Flip()
	Dimensions() (width, height int16, colorDepth uint8)

	Pixel(c color.Rgb8, x, y int16)
	Line(c color.Rgb8, x1, y1, x2, y2 int16)
	TriangleFill(c color.Rgb8, x1, y1, x2, y2, x3, y3 int16)
	RectangleFill(c color.Rgb8, x1, y1, x2, y2 int16)
}

// BlendSurface is an optional extension a surface may implement to support
// the rasterizer's per-pixel blend modes (spec.md §6.1's "optional blend
// variants"). A surface that doesn't implement it only ever receives
// BlendReplace pixels.
type BlendSurface interface {
	PixelBlendAlpha(c color.Rgb8, x, y int16)
	PixelBlendAdd(c color.Rgb8, x, y int16)
	PixelBlendSubtract(c color.Rgb8, x, y int16)
	PixelBlendMultiply(c color.Rgb8, x, y int16)
	PixelBlendScreen(c color.Rgb8, x, y int16)
}
