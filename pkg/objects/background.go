package objects

import (
	"math"

	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// Background is a single full-surface fill, always collected at the
// farthest possible depth so the painter's algorithm draws it first,
// beneath every other object. Grounded on AbstractObject.h's background
// specialization, which skips every geometric pipeline stage outright.
type Background struct {
	Material scene.Material
	Shader   scene.SceneShader
	// Color is the fill used when Shader is nil; ignored otherwise.
	Color color.Rgb8

	color color.Rgb8
}

func NewBackground(material scene.Material, shader scene.SceneShader) *Background {
	return &Background{Material: material, Shader: shader, Color: color.White}
}

// SetColor sets the flat fill color used while Shader is nil.
func (b *Background) SetColor(c color.Rgb8) { b.Color = c }

func (b *Background) ObjectShade(frustum geometry.Frustum) {}

func (b *Background) VertexShade(index uint16) bool     { return true }
func (b *Background) WorldTransform(index uint16) bool { return true }

func (b *Background) WorldShade(frustum geometry.Frustum, primitiveIndex uint16) bool {
	if b.Shader == nil {
		b.color = b.Color
		return true
	}
	b.color = shadeColor(b.Shader, b.Material, geometry.Vertex16{}, geometry.Vertex16{}, 0)
	return true
}

func (b *Background) CameraTransform(transform geometry.CameraTransform, index uint16) bool {
	return true
}

func (b *Background) ScreenProject(projector *viewport.Projector, index uint16) bool { return true }

func (b *Background) ScreenShade(primitiveIndex uint16) bool { return true }

func (b *Background) FragmentCollect(collector *scene.FragmentCollector) {
	collector.AddFragment(0, math.MaxInt16)
}

func (b *Background) FragmentShade(rasterizer *raster.WindowRasterizer, primitiveIndex uint16) {
	rasterizer.Fill(b.color)
}
