package objects

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// BillboardMode selects whether a Billboard's anchor lives in screen space
// (a fixed HUD element) or world space (projected like any other geometry,
// then held at a constant pixel size). Grounded on BillboardObject.h's two
// anchor variants.
type BillboardMode uint8

const (
	BillboardScreenSpace BillboardMode = iota
	BillboardWorldSpace
)

// Billboard is a single axis-aligned rectangle, either screen-anchored or
// world-anchored, always facing the camera.
type Billboard struct {
	Mode BillboardMode

	// WorldPosition anchors a BillboardWorldSpace billboard; ignored otherwise.
	WorldPosition geometry.Vertex16
	// ScreenAnchor anchors a BillboardScreenSpace billboard directly in
	// pixel coordinates; ignored otherwise.
	ScreenAnchor raster.Coordinate16
	// Size is the rectangle's width/height in pixels.
	Size raster.Coordinate16

	Material scene.Material
	Shader   scene.SceneShader

	camera   geometry.Vertex16
	screen   geometry.Vertex16
	color    color.Rgb8
	culled   bool
}

func NewBillboard(mode BillboardMode, material scene.Material, shader scene.SceneShader) *Billboard {
	return &Billboard{Mode: mode, Material: material, Shader: shader}
}

func (b *Billboard) ObjectShade(frustum geometry.Frustum) {
	if b.Mode == BillboardWorldSpace {
		b.culled = !frustum.IsPointInside(b.WorldPosition, geometry.DefaultPlaneTolerance)
	} else {
		b.culled = false
	}
}

// VertexShade/WorldTransform are no-ops: a billboard has no local-space
// vertices to perturb or transform, only its single anchor point.
func (b *Billboard) VertexShade(index uint16) bool     { return true }
func (b *Billboard) WorldTransform(index uint16) bool { return true }

func (b *Billboard) WorldShade(frustum geometry.Frustum, primitiveIndex uint16) bool {
	b.color = shadeColor(b.Shader, b.Material, b.WorldPosition, geometry.Vertex16{}, 0)
	return true
}

func (b *Billboard) CameraTransform(transform geometry.CameraTransform, index uint16) bool {
	if b.Mode == BillboardWorldSpace {
		b.camera = transform.Apply(b.WorldPosition)
	}
	return true
}

func (b *Billboard) ScreenProject(projector *viewport.Projector, index uint16) bool {
	if b.Mode == BillboardWorldSpace {
		b.screen = projector.Project(b.camera)
	} else {
		b.screen = geometry.Vertex16{X: b.ScreenAnchor.X, Y: b.ScreenAnchor.Y, Z: 0}
	}
	return true
}

func (b *Billboard) ScreenShade(primitiveIndex uint16) bool { return true }

func (b *Billboard) FragmentCollect(collector *scene.FragmentCollector) {
	if b.culled || (b.Mode == BillboardWorldSpace && b.screen.Z < 0) {
		return
	}
	collector.AddFragment(0, b.screen.Z)
}

func (b *Billboard) FragmentShade(rasterizer *raster.WindowRasterizer, primitiveIndex uint16) {
	rasterizer.DrawRectangle(b.color, b.screen.X, b.screen.Y, b.screen.X+b.Size.X, b.screen.Y+b.Size.Y)
}
