package surface

import (
	stdcolor "image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gitmodu/integerworld/pkg/color"
)

// Terminal is an OutputSurface backed by a charmbracelet/ultraviolet
// terminal, doubling vertical resolution with the upper-half-block
// character (foreground=top pixel, background=bottom pixel), grounded on
// the teacher's former pkg/render/terminal.go Framebuffer.Draw.
type Terminal struct {
	term uv.Terminal

	cols, rows   int16 // terminal character grid
	width, height int16 // pixel buffer: width x 2*rows

	pixels []color.Rgb8
	ready  bool
}

// NewTerminal wraps an already-started uv.Terminal. The caller is
// responsible for Start/Stop, alt-screen and cursor visibility, matching
// the teacher's main loop sequencing.
func NewTerminal(term uv.Terminal, cols, rows int16) *Terminal {
	t := &Terminal{term: term}
	t.Resize(cols, rows)
	return t
}

func (t *Terminal) Resize(cols, rows int16) {
	t.cols, t.rows = cols, rows
	t.width, t.height = cols, rows*2
	t.pixels = make([]color.Rgb8, int(t.width)*int(t.height))
	t.ready = true
}

func (t *Terminal) Start() bool { return t.term.Start() == nil }
func (t *Terminal) Stop()       { t.term.Stop() }
func (t *Terminal) IsReady() bool { return t.ready }

func (t *Terminal) Dimensions() (width, height int16, colorDepth uint8) {
	return t.width, t.height, 24
}

func (t *Terminal) index(x, y int16) int { return int(y)*int(t.width) + int(x)
}

func (t *Terminal) inBounds(x, y int16) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

func (t *Terminal) Pixel(c color.Rgb8, x, y int16) {
	if !t.inBounds(x, y) {
		return
	}
	t.pixels[t.index(x, y)] = c
}

func (t *Terminal) Line(c color.Rgb8, x1, y1, x2, y2 int16) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := int16(1), int16(1)
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		t.Pixel(c, x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func (t *Terminal) TriangleFill(c color.Rgb8, x1, y1, x2, y2, x3, y3 int16) {
	minY, maxY := min3(y1, y2, y3), max3(y1, y2, y3)
	minX, maxX := min3(x1, x2, x3), max3(x1, x2, x3)
	area := int32(x2-x1)*int32(y3-y1) - int32(x3-x1)*int32(y2-y1)
	if area == 0 {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := int32(x2-x1)*int32(y-y1) - int32(y2-y1)*int32(x-x1)
			w1 := int32(x3-x2)*int32(y-y2) - int32(y3-y2)*int32(x-x2)
			w2 := int32(x1-x3)*int32(y-y3) - int32(y1-y3)*int32(x-x3)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				t.Pixel(c, x, y)
			}
		}
	}
}

func min3(a, b, c int16) int16 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int16) int16 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func (t *Terminal) RectangleFill(c color.Rgb8, x1, y1, x2, y2 int16) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			t.Pixel(c, x, y)
		}
	}
}

// blend applies mode-specific compositing against the existing pixel.
func (t *Terminal) blend(mode color.BlendMode, c color.Rgb8, x, y int16) {
	if !t.inBounds(x, y) {
		return
	}
	i := t.index(x, y)
	t.pixels[i] = color.Blend(mode, t.pixels[i], c)
}

func (t *Terminal) PixelBlendAlpha(c color.Rgb8, x, y int16)    { t.blend(color.BlendAlpha, c, x, y) }
func (t *Terminal) PixelBlendAdd(c color.Rgb8, x, y int16)      { t.blend(color.BlendAdd, c, x, y) }
func (t *Terminal) PixelBlendSubtract(c color.Rgb8, x, y int16) { t.blend(color.BlendSubtract, c, x, y) }
func (t *Terminal) PixelBlendMultiply(c color.Rgb8, x, y int16) { t.blend(color.BlendMultiply, c, x, y) }
func (t *Terminal) PixelBlendScreen(c color.Rgb8, x, y int16)   { t.blend(color.BlendScreen, c, x, y) }

// Flip converts the doubled-height pixel buffer into terminal cells, one
// row of half-blocks per two pixel rows, and pushes them to the terminal.
func (t *Terminal) Flip() {
	for row := int16(0); row < t.rows; row++ {
		topY, botY := row*2, row*2+1
		for col := int16(0); col < t.cols; col++ {
			top := t.pixels[t.index(col, topY)]
			bot := t.pixels[t.index(col, botY)]
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(top),
					Bg: rgbaToColor(bot),
				},
			}
			t.term.SetCell(int(col), int(row), cell)
		}
	}
	t.term.Display()
}

func rgbaToColor(c color.Rgb8) stdcolor.Color {
	return stdcolor.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 255}
}
