package source

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/raster"
)

// AlbedoProvider samples a texture color at a UV coordinate whose X/Y are
// ufraction16 values in [0, UFraction16One), matching raster.Coordinate16's
// interpolation scale.
type AlbedoProvider interface {
	Sample(uv raster.Coordinate16) color.Rgb8
}

// ImageAlbedo wraps a decoded image.Image, grounded on the teacher's
// decode-once/sample-many texture loading (formerly pkg/render/texture.go),
// carried over to back the albedo stage of a textured triangle fragment
// shader instead of a terminal glyph atlas.
type ImageAlbedo struct {
	img  image.Image
	w, h int
}

// LoadAlbedo decodes a PNG or JPEG (registered via the blank imports above)
// into a sampleable albedo texture.
func LoadAlbedo(r io.Reader) (*ImageAlbedo, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("source: decode albedo: %w", err)
	}
	b := img.Bounds()
	return &ImageAlbedo{img: img, w: b.Dx(), h: b.Dy()}, nil
}

// Sample maps a ufraction16 UV onto the nearest source pixel.
func (a *ImageAlbedo) Sample(uv raster.Coordinate16) color.Rgb8 {
	if a.w == 0 || a.h == 0 {
		return color.Black
	}
	px := (int(uv.X) * a.w) >> fixedpoint.UFraction16Shift
	py := (int(uv.Y) * a.h) >> fixedpoint.UFraction16Shift
	if px < 0 {
		px = 0
	} else if px >= a.w {
		px = a.w - 1
	}
	if py < 0 {
		py = 0
	} else if py >= a.h {
		py = a.h - 1
	}
	r, g, b, _ := a.img.At(a.img.Bounds().Min.X+px, a.img.Bounds().Min.Y+py).RGBA()
	return color.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
