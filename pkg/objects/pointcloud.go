package objects

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/source"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// PointCloud renders an unconnected point set, one pixel (or shaded dot)
// per point, grounded on PointCloudObject.h. Each point doubles as its own
// primitive: the vertex- and primitive-granularity pipeline stages coincide.
type PointCloud struct {
	Provider  source.PointProvider
	Transform geometry.Transform
	Material  scene.Material
	Shader    scene.SceneShader

	local, world, camera, screen []geometry.Vertex16
	colors                       []color.Rgb8
	culled                       bool
}

func NewPointCloud(provider source.PointProvider, transform geometry.Transform, material scene.Material, shader scene.SceneShader) *PointCloud {
	return &PointCloud{Provider: provider, Transform: transform, Material: material, Shader: shader}
}

func (p *PointCloud) ensureCapacity() {
	n := int(p.Provider.PointCount())
	if cap(p.local) >= n {
		p.local, p.world, p.camera, p.screen, p.colors = p.local[:n], p.world[:n], p.camera[:n], p.screen[:n], p.colors[:n]
		return
	}
	p.local = make([]geometry.Vertex16, n)
	p.world = make([]geometry.Vertex16, n)
	p.camera = make([]geometry.Vertex16, n)
	p.screen = make([]geometry.Vertex16, n)
	p.colors = make([]color.Rgb8, n)
}

func (p *PointCloud) ObjectShade(frustum geometry.Frustum) {
	p.ensureCapacity()
	p.culled = !frustum.IsPointInside(p.Transform.Translation, geometry.DefaultPlaneTolerance)
}

func (p *PointCloud) VertexShade(index uint16) bool {
	p.local[index] = p.Provider.Point(index)
	return index == p.Provider.PointCount()-1
}

func (p *PointCloud) WorldTransform(index uint16) bool {
	p.world[index] = p.Transform.Apply(p.local[index])
	return index == p.Provider.PointCount()-1
}

func (p *PointCloud) WorldShade(frustum geometry.Frustum, primitiveIndex uint16) bool {
	p.colors[primitiveIndex] = shadeColor(p.Shader, p.Material, p.world[primitiveIndex], geometry.Vertex16{}, 0)
	return primitiveIndex == p.Provider.PointCount()-1
}

func (p *PointCloud) CameraTransform(transform geometry.CameraTransform, index uint16) bool {
	p.camera[index] = transform.Apply(p.world[index])
	return index == p.Provider.PointCount()-1
}

func (p *PointCloud) ScreenProject(projector *viewport.Projector, index uint16) bool {
	p.screen[index] = projector.Project(p.camera[index])
	return index == p.Provider.PointCount()-1
}

// ScreenShade is a no-op: a point's own screen-space z already doubles as
// its depth key, with no separate representative value to precompute.
func (p *PointCloud) ScreenShade(primitiveIndex uint16) bool { return true }

func (p *PointCloud) FragmentCollect(collector *scene.FragmentCollector) {
	if p.culled {
		return
	}
	for i := uint16(0); i < p.Provider.PointCount(); i++ {
		if p.screen[i].Z < 0 {
			continue
		}
		collector.AddFragment(i, p.screen[i].Z)
	}
}

func (p *PointCloud) FragmentShade(rasterizer *raster.WindowRasterizer, primitiveIndex uint16) {
	rasterizer.DrawPoint(p.colors[primitiveIndex], p.screen[primitiveIndex])
}
