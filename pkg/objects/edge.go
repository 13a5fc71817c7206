package objects

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/source"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// Edge renders a wireframe segment list, grounded on EdgeObject.h. Lighting
// is evaluated once per edge from its midpoint, there being no face normal
// for a line.
type Edge struct {
	Provider  source.EdgeProvider
	Transform geometry.Transform
	Material  scene.Material
	Shader    scene.SceneShader

	// FaceCulling compares each edge's averaged screen z against the
	// object's own screen-space center z (behind/in-front test) rather
	// than a projected 2D winding, there being no winding for a line;
	// defaults to NoCulling, matching Edge/AbstractObject.h's template
	// default (distinct from Mesh's BackfaceCulling default).
	FaceCulling FaceCullingEnum

	local, world, camera, screen []geometry.Vertex16
	colors                       []color.Rgb8
	depth                        []int16
	faceCulled                   []bool
	culled                       bool

	cameraCenter geometry.Vertex16
	screenCenter geometry.Vertex16
}

func NewEdge(provider source.EdgeProvider, transform geometry.Transform, material scene.Material, shader scene.SceneShader) *Edge {
	return &Edge{Provider: provider, Transform: transform, Material: material, Shader: shader, FaceCulling: NoCulling}
}

func (e *Edge) ensureCapacity() {
	n := int(e.Provider.VertexCount())
	if cap(e.local) >= n {
		e.local, e.world, e.camera, e.screen = e.local[:n], e.world[:n], e.camera[:n], e.screen[:n]
	} else {
		e.local = make([]geometry.Vertex16, n)
		e.world = make([]geometry.Vertex16, n)
		e.camera = make([]geometry.Vertex16, n)
		e.screen = make([]geometry.Vertex16, n)
	}
	m := int(e.Provider.EdgeCount())
	if cap(e.colors) >= m {
		e.colors, e.depth, e.faceCulled = e.colors[:m], e.depth[:m], e.faceCulled[:m]
	} else {
		e.colors = make([]color.Rgb8, m)
		e.depth = make([]int16, m)
		e.faceCulled = make([]bool, m)
	}
}

func (e *Edge) ObjectShade(frustum geometry.Frustum) {
	e.ensureCapacity()
	e.culled = !frustum.IsPointInside(e.Transform.Translation, geometry.DefaultPlaneTolerance)
}

func (e *Edge) VertexShade(index uint16) bool {
	e.local[index] = e.Provider.Vertex(index)
	return index == e.Provider.VertexCount()-1
}

func (e *Edge) WorldTransform(index uint16) bool {
	e.world[index] = e.Transform.Apply(e.local[index])
	return index == e.Provider.VertexCount()-1
}

func (e *Edge) WorldShade(frustum geometry.Frustum, primitiveIndex uint16) bool {
	start, end := e.Provider.Edge(primitiveIndex)
	mid := geometry.Vertex16{
		X: geometry.Average(e.world[start].X, e.world[end].X),
		Y: geometry.Average(e.world[start].Y, e.world[end].Y),
		Z: geometry.Average(e.world[start].Z, e.world[end].Z),
	}
	e.colors[primitiveIndex] = shadeColor(e.Shader, e.Material, mid, geometry.Vertex16{}, 0)
	return primitiveIndex == e.Provider.EdgeCount()-1
}

// CameraTransform also tracks the object's own center through camera space
// (piggybacked on the first vertex's call), used by ScreenShade's
// behind/in-front face-culling test.
func (e *Edge) CameraTransform(transform geometry.CameraTransform, index uint16) bool {
	if index == 0 {
		e.cameraCenter = transform.Apply(e.Transform.Translation)
	}
	e.camera[index] = transform.Apply(e.world[index])
	return index == e.Provider.VertexCount()-1
}

func (e *Edge) ScreenProject(projector *viewport.Projector, index uint16) bool {
	if index == 0 {
		e.screenCenter = projector.Project(e.cameraCenter)
	}
	e.screen[index] = projector.Project(e.camera[index])
	return index == e.Provider.VertexCount()-1
}

// ScreenShade computes each edge's averaged screen depth and, per
// FaceCulling, compares it against the object's own screen-space center z:
// BackfaceCulling drops edges farther than the center, FrontfaceCulling
// drops edges nearer than the center, grounded on
// Edge/AbstractObject.h::ScreenShade.
func (e *Edge) ScreenShade(primitiveIndex uint16) bool {
	start, end := e.Provider.Edge(primitiveIndex)
	depth := geometry.Average(e.screen[start].Z, e.screen[end].Z)
	e.depth[primitiveIndex] = depth
	e.faceCulled[primitiveIndex] = !passesEdgeFaceCulling(e.FaceCulling, depth, e.screenCenter.Z)
	return primitiveIndex == e.Provider.EdgeCount()-1
}

func (e *Edge) FragmentCollect(collector *scene.FragmentCollector) {
	if e.culled {
		return
	}
	for i := uint16(0); i < e.Provider.EdgeCount(); i++ {
		start, end := e.Provider.Edge(i)
		if e.screen[start].Z < 0 && e.screen[end].Z < 0 {
			continue
		}
		if e.faceCulled[i] {
			continue
		}
		collector.AddFragment(i, e.depth[i])
	}
}

func (e *Edge) FragmentShade(rasterizer *raster.WindowRasterizer, primitiveIndex uint16) {
	start, end := e.Provider.Edge(primitiveIndex)
	rasterizer.DrawLine3D(e.colors[primitiveIndex], e.screen[start], e.screen[end])
}
