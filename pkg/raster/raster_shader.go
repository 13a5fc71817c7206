package raster

import "github.com/gitmodu/integerworld/pkg/color"

// bresenhamScale is the sub-pixel fixed-point scale used by the flat-top/
// flat-bottom triangle fill's inverse-slope stepping, grounded on
// WindowRasterizer.h's BRESENHAM_SCALE=16.
const bresenhamScale = 16

// RasterLine clips then walks the segment pixel-by-pixel via Bresenham,
// invoking shader for each pixel; shader may veto a pixel by returning false.
func (r *WindowRasterizer) RasterLine(shader PixelShader, x1, y1, x2, y2 int16) {
	cx1, cy1, cx2, cy2, ok := clipLine(x1, y1, x2, y2, r.Width, r.Height)
	if !ok {
		return
	}
	if cx1 == cx2 && cy1 == cy2 {
		r.shadePixel(shader, cx1, cy1)
		return
	}
	r.bresenhamLine(shader, cx1, cy1, cx2, cy2)
}

func (r *WindowRasterizer) shadePixel(shader PixelShader, x, y int16) {
	var c color.Rgb8
	if shader.Sample(&c, x, y) {
		r.DrawPixel(c, x, y)
	}
}

func (r *WindowRasterizer) bresenhamLine(shader PixelShader, x1, y1, x2, y2 int16) {
	dx := abs16(x2 - x1)
	dy := -abs16(y2 - y1)
	sx := int16(1)
	if x1 > x2 {
		sx = -1
	}
	sy := int16(1)
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		r.shadePixel(shader, x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// RasterTriangle clips the triangle against the window, fan-triangulates,
// and fills each resulting triangle via a flat-top/flat-bottom split,
// invoking shader per interior pixel.
func (r *WindowRasterizer) RasterTriangle(shader PixelShader, ax, ay, bx, by, cx, cy int16) {
	poly := clipTriangle(point2{ax, ay}, point2{bx, by}, point2{cx, cy}, r.Width, r.Height)
	switch len(poly) {
	case 0:
		return
	case 1:
		r.shadePixel(shader, poly[0].x, poly[0].y)
		return
	case 2:
		r.RasterLine(shader, poly[0].x, poly[0].y, poly[1].x, poly[1].y)
		return
	}
	for _, tri := range fanTriangulate(poly) {
		r.triangleYRaster(shader, tri[0], tri[1], tri[2])
	}
}

// triangleYRaster sorts the three points by ascending y then dispatches to
// the flat-bottom/flat-top fill, splitting at the middle vertex when
// neither edge is already horizontal.
func (r *WindowRasterizer) triangleYRaster(shader PixelShader, p0, p1, p2 point2) {
	if p0.y > p1.y {
		p0, p1 = p1, p0
	}
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}
	if p0.y > p1.y {
		p0, p1 = p1, p0
	}

	switch {
	case p1.y == p2.y:
		r.fillFlatBottom(shader, p0, p1, p2)
	case p0.y == p1.y:
		r.fillFlatTop(shader, p0, p1, p2)
	default:
		// Split at p1's height along the long edge p0->p2.
		splitX := p0.x + int16((int32(p2.x-p0.x)*int32(p1.y-p0.y))/int32(p2.y-p0.y))
		split := point2{splitX, p1.y}
		r.fillFlatBottom(shader, p0, p1, split)
		r.fillFlatTop(shader, p1, split, p2)
	}
}

// fillFlatBottom fills a triangle whose base (p1,p2) shares a y, with apex
// p0 above it. y walks upward from p0.y to min(height-1, baseY), exclusive
// of the base row — matches the source's asymmetric top/bottom convention.
func (r *WindowRasterizer) fillFlatBottom(shader PixelShader, p0, p1, p2 point2) {
	if p1.x > p2.x {
		p1, p2 = p2, p1
	}
	invSlope1 := fixedSlope(p1.x-p0.x, p1.y-p0.y)
	invSlope2 := fixedSlope(p2.x-p0.x, p2.y-p0.y)

	curX1 := int32(p0.x) << bresenhamScale
	curX2 := curX1

	yEnd := fixMin(p1.y, r.Height-1)
	for y := fixMax(p0.y, 0); y < yEnd; y++ {
		r.shadeRow(shader, int16(curX1>>bresenhamScale), int16(curX2>>bresenhamScale), y)
		curX1 += invSlope1
		curX2 += invSlope2
	}
}

// fillFlatTop fills a triangle whose base (p0,p1) shares a y, with apex p2
// below it. y walks downward from p2.y to max(0, baseY), inclusive of the
// base row.
func (r *WindowRasterizer) fillFlatTop(shader PixelShader, p0, p1, p2 point2) {
	if p0.x > p1.x {
		p0, p1 = p1, p0
	}
	invSlope1 := fixedSlope(p2.x-p0.x, p2.y-p0.y)
	invSlope2 := fixedSlope(p2.x-p1.x, p2.y-p1.y)

	curX1 := int32(p2.x) << bresenhamScale
	curX2 := curX1

	yStart := fixMax(p0.y, 0)
	for y := fixMin(p2.y, r.Height-1); y >= yStart; y-- {
		r.shadeRow(shader, int16(curX1>>bresenhamScale), int16(curX2>>bresenhamScale), y)
		curX1 -= invSlope1
		curX2 -= invSlope2
	}
}

func fixedSlope(dx, dy int16) int32 {
	if dy == 0 {
		return 0
	}
	return (int32(dx) << bresenhamScale) / int32(dy)
}

func (r *WindowRasterizer) shadeRow(shader PixelShader, x1, x2, y int16) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1, x2 = fixMax(x1, 0), fixMin(x2, r.Width-1)
	for x := x1; x <= x2; x++ {
		r.shadePixel(shader, x, y)
	}
}

// RasterRectangle invokes shader for every pixel of a clamped rectangle,
// passing each pixel's absolute screen coordinate.
func (r *WindowRasterizer) RasterRectangle(shader PixelShader, x1, y1, x2, y2 int16) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	cx1, cy1 := fixMax(x1, 0), fixMax(y1, 0)
	cx2, cy2 := fixMin(x2, r.Width-1), fixMin(y2, r.Height-1)
	for y := cy1; y <= cy2; y++ {
		for x := cx1; x <= cx2; x++ {
			r.shadePixel(shader, x, y)
		}
	}
}
