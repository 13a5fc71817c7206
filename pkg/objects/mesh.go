// Package objects implements the concrete RenderObject kinds: Mesh (in its
// Triangle-Shade and Vertex-Shade variants), Edge, PointCloud, Billboard and
// Background. Grounded on MeshObject.h, EdgeObject.h, PointCloudObject.h,
// BillboardObject.h and AbstractObject.h's BackgroundObject.
package objects

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/source"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// meshBase carries the per-vertex pipeline state shared by both mesh shading
// variants: the four vertex-granularity verbs (VertexShade, WorldTransform,
// CameraTransform, ScreenProject) are identical regardless of whether
// lighting is ultimately evaluated per triangle or per vertex, so they live
// here once instead of being duplicated on each variant.
type meshBase struct {
	Provider  source.MeshProvider
	Transform geometry.Transform
	Material  scene.Material
	Shader    scene.SceneShader // nil: fragments keep raw albedo, per spec.md §7
	Albedo    source.AlbedoProvider

	// FaceCulling discards triangles by projected 2D winding; the zero
	// value is BackfaceCulling, matching AbstractObject.h's template
	// default.
	FaceCulling FaceCullingEnum

	// BoundingRadius is the object-space radius of the mesh's bounding
	// sphere, used by ObjectShade for a whole-object frustum early-reject.
	BoundingRadius int16

	local  []geometry.Vertex16
	world  []geometry.Vertex16
	camera []geometry.Vertex16
	screen []geometry.Vertex16

	culled bool
}

func (m *meshBase) ensureCapacity() {
	n := int(m.Provider.VertexCount())
	if cap(m.local) >= n {
		m.local, m.world, m.camera, m.screen = m.local[:n], m.world[:n], m.camera[:n], m.screen[:n]
		return
	}
	m.local = make([]geometry.Vertex16, n)
	m.world = make([]geometry.Vertex16, n)
	m.camera = make([]geometry.Vertex16, n)
	m.screen = make([]geometry.Vertex16, n)
}

// ObjectShade resets per-cycle state and rejects the whole object against
// the frustum using its bounding sphere, centered at the transform's
// translation (the object's world-space origin).
func (m *meshBase) ObjectShade(frustum geometry.Frustum) {
	m.ensureCapacity()
	m.culled = !frustum.IsSphereInside(m.Transform.Translation, m.BoundingRadius)
}

// VertexShade copies a local-space vertex into the mutable working buffer.
// A bare copy today; the slot exists so a future displacement/animation
// shader has somewhere to perturb vertices before the world transform,
// matching Model.h's VertexShade stage.
func (m *meshBase) VertexShade(index uint16) bool {
	m.local[index] = m.Provider.Vertex(index)
	return index == m.Provider.VertexCount()-1
}

func (m *meshBase) WorldTransform(index uint16) bool {
	m.world[index] = m.Transform.Apply(m.local[index])
	return index == m.Provider.VertexCount()-1
}

func (m *meshBase) CameraTransform(transform geometry.CameraTransform, index uint16) bool {
	m.camera[index] = transform.Apply(m.world[index])
	return index == m.Provider.VertexCount()-1
}

func (m *meshBase) ScreenProject(projector *viewport.Projector, index uint16) bool {
	m.screen[index] = projector.Project(m.camera[index])
	return index == m.Provider.VertexCount()-1
}

func triangleVisible(culled bool, screen [3]geometry.Vertex16) bool {
	if culled {
		return false
	}
	return screen[0].Z >= 0 || screen[1].Z >= 0 || screen[2].Z >= 0
}

func faceNormal(world [3]geometry.Vertex16) geometry.Vertex16 {
	n32 := geometry.CrossProduct16(world[0], world[1], world[2])
	n16 := geometry.Vertex16{X: fixedpoint.SaturateI16(n32.X), Y: fixedpoint.SaturateI16(n32.Y), Z: fixedpoint.SaturateI16(n32.Z)}
	geometry.NormalizeVertex16(&n16)
	return n16
}

func faceCentroid(world [3]geometry.Vertex16) geometry.Vertex16 {
	return geometry.Vertex16{
		X: geometry.AverageApproximate(world[0].X, world[1].X, world[2].X),
		Y: geometry.AverageApproximate(world[0].Y, world[1].Y, world[2].Y),
		Z: geometry.AverageApproximate(world[0].Z, world[1].Z, world[2].Z),
	}
}

func shadeColor(shader scene.SceneShader, material scene.Material, world, normal geometry.Vertex16, z int16) color.Rgb8 {
	c := color.White
	if shader == nil {
		return c
	}
	shader.ShadeNormal(&c, material, scene.WorldPositionNormalShade{
		WorldPositionShade: scene.WorldPositionShade{Position: world, Z: z},
		Normal:             normal,
	})
	return c
}

// TriangleShadeMesh is the flat-shaded Mesh variant: lighting is evaluated
// once per triangle from its face normal, matching a "faceted" look.
// Grounded on MeshObject.h's triangle-granularity specialization.
type TriangleShadeMesh struct {
	meshBase

	colors   []color.Rgb8
	normal   []geometry.Vertex16
	depth    []int16
	backface []bool
}

func NewTriangleShadeMesh(provider source.MeshProvider, transform geometry.Transform, material scene.Material, shader scene.SceneShader) *TriangleShadeMesh {
	return &TriangleShadeMesh{meshBase: meshBase{Provider: provider, Transform: transform, Material: material, Shader: shader}}
}

func (m *TriangleShadeMesh) ensureTriangleCapacity() {
	n := int(m.Provider.TriangleCount())
	if cap(m.colors) >= n {
		m.colors, m.normal, m.depth, m.backface = m.colors[:n], m.normal[:n], m.depth[:n], m.backface[:n]
		return
	}
	m.colors = make([]color.Rgb8, n)
	m.normal = make([]geometry.Vertex16, n)
	m.depth = make([]int16, n)
	m.backface = make([]bool, n)
}

func (m *TriangleShadeMesh) ObjectShade(frustum geometry.Frustum) {
	m.meshBase.ObjectShade(frustum)
	m.ensureTriangleCapacity()
}

// WorldShade evaluates lighting for triangle primitiveIndex from its face
// normal and world-space centroid, storing the resulting color.
func (m *TriangleShadeMesh) WorldShade(frustum geometry.Frustum, primitiveIndex uint16) bool {
	tri := m.Provider.Triangle(primitiveIndex)
	world := [3]geometry.Vertex16{m.world[tri.A], m.world[tri.B], m.world[tri.C]}
	n := faceNormal(world)
	m.normal[primitiveIndex] = n
	centroid := faceCentroid(world)
	m.colors[primitiveIndex] = shadeColor(m.Shader, m.Material, centroid, n, m.camera[tri.A].Z)
	return primitiveIndex == m.Provider.TriangleCount()-1
}

// ScreenShade derives a representative screen-space depth for the triangle
// from the average of its three projected vertex depths (AverageApproximate),
// the key FragmentCollect later sorts by, and applies FaceCulling against
// the triangle's projected 2D winding, grounded on
// Mesh/AbstractObject.h::ScreenShade.
func (m *TriangleShadeMesh) ScreenShade(primitiveIndex uint16) bool {
	tri := m.Provider.Triangle(primitiveIndex)
	a, b, c := m.screen[tri.A], m.screen[tri.B], m.screen[tri.C]
	m.depth[primitiveIndex] = geometry.AverageApproximate(a.Z, b.Z, c.Z)
	m.backface[primitiveIndex] = !passesFaceCulling(m.FaceCulling, signedScreenArea(a, b, c))
	return primitiveIndex == m.Provider.TriangleCount()-1
}

func (m *TriangleShadeMesh) FragmentCollect(collector *scene.FragmentCollector) {
	for i := uint16(0); i < m.Provider.TriangleCount(); i++ {
		tri := m.Provider.Triangle(i)
		screen := [3]geometry.Vertex16{m.screen[tri.A], m.screen[tri.B], m.screen[tri.C]}
		if !triangleVisible(m.culled, screen) || m.backface[i] {
			continue
		}
		collector.AddFragment(i, m.depth[i])
	}
}

func (m *TriangleShadeMesh) FragmentShade(rasterizer *raster.WindowRasterizer, primitiveIndex uint16) {
	tri := m.Provider.Triangle(primitiveIndex)
	a, b, c := m.screen[tri.A], m.screen[tri.B], m.screen[tri.C]
	flat := m.colors[primitiveIndex]

	if m.Albedo == nil {
		rasterizer.DrawTriangle(flat, a, b, c)
		return
	}

	uvA, okA := m.Provider.UV(tri.A)
	uvB, okB := m.Provider.UV(tri.B)
	uvC, okC := m.Provider.UV(tri.C)
	if !okA || !okB || !okC {
		rasterizer.DrawTriangle(flat, a, b, c)
		return
	}

	var sampler raster.TriangleAffineSampler
	if !sampler.SetFragmentData(a.X, a.Y, b.X, b.Y, c.X, c.Y) {
		return
	}
	uv := raster.UvInterpolator{A: uvA, B: uvB, C: uvC}
	rasterizer.RasterTriangle(raster.PixelShaderFunc(func(out *color.Rgb8, x, y int16) bool {
		wA, wB, wC := sampler.Weights(x, y)
		sample := uv.Sample(wA, wB, wC)
		*out = color.Blend(color.BlendMultiply, flat, m.Albedo.Sample(sample))
		return true
	}), a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

// VertexShadeMesh is the Gouraud-shaded Mesh variant: lighting is evaluated
// once per vertex, and the rasterizer interpolates the three resulting
// colors across the triangle's interior. Grounded on MeshObject.h's
// vertex-granularity specialization.
type VertexShadeMesh struct {
	meshBase

	colors   []color.Rgb8
	normal   []geometry.Vertex16
	backface []bool
}

func NewVertexShadeMesh(provider source.MeshProvider, transform geometry.Transform, material scene.Material, shader scene.SceneShader) *VertexShadeMesh {
	return &VertexShadeMesh{meshBase: meshBase{Provider: provider, Transform: transform, Material: material, Shader: shader}}
}

func (m *VertexShadeMesh) ensureVertexShadeCapacity() {
	n := int(m.Provider.VertexCount())
	if cap(m.colors) >= n {
		m.colors, m.normal = m.colors[:n], m.normal[:n]
	} else {
		m.colors = make([]color.Rgb8, n)
		m.normal = make([]geometry.Vertex16, n)
	}
	t := int(m.Provider.TriangleCount())
	if cap(m.backface) >= t {
		m.backface = m.backface[:t]
		return
	}
	m.backface = make([]bool, t)
}

func (m *VertexShadeMesh) ObjectShade(frustum geometry.Frustum) {
	m.meshBase.ObjectShade(frustum)
	m.ensureVertexShadeCapacity()
}

// WorldShade evaluates lighting per vertex (primitiveIndex addresses a
// vertex here, not a triangle): the normal is approximated from the vertex's
// own position relative to the object's transform, which is the cheap
// per-vertex substitute used when no precomputed vertex normal is supplied.
func (m *VertexShadeMesh) WorldShade(frustum geometry.Frustum, primitiveIndex uint16) bool {
	n := m.world[primitiveIndex].Sub(m.Transform.Translation)
	geometry.NormalizeVertex16(&n)
	m.normal[primitiveIndex] = n
	m.colors[primitiveIndex] = shadeColor(m.Shader, m.Material, m.world[primitiveIndex], n, m.camera[primitiveIndex].Z)
	return primitiveIndex == m.Provider.VertexCount()-1
}

// ScreenShade applies FaceCulling against the triangle's projected 2D
// winding; depth is still derived directly from each vertex's own
// screen-space z at fragment-collect time, there being no separate
// per-triangle representative value to precompute otherwise.
func (m *VertexShadeMesh) ScreenShade(primitiveIndex uint16) bool {
	tri := m.Provider.Triangle(primitiveIndex)
	a, b, c := m.screen[tri.A], m.screen[tri.B], m.screen[tri.C]
	m.backface[primitiveIndex] = !passesFaceCulling(m.FaceCulling, signedScreenArea(a, b, c))
	return primitiveIndex == m.Provider.TriangleCount()-1
}

func (m *VertexShadeMesh) FragmentCollect(collector *scene.FragmentCollector) {
	for i := uint16(0); i < m.Provider.TriangleCount(); i++ {
		tri := m.Provider.Triangle(i)
		screen := [3]geometry.Vertex16{m.screen[tri.A], m.screen[tri.B], m.screen[tri.C]}
		if !triangleVisible(m.culled, screen) || m.backface[i] {
			continue
		}
		z := geometry.AverageApproximate(screen[0].Z, screen[1].Z, screen[2].Z)
		collector.AddFragment(i, z)
	}
}

func (m *VertexShadeMesh) FragmentShade(rasterizer *raster.WindowRasterizer, primitiveIndex uint16) {
	tri := m.Provider.Triangle(primitiveIndex)
	a, b, c := m.screen[tri.A], m.screen[tri.B], m.screen[tri.C]

	var sampler raster.TriangleAffineSampler
	if !sampler.SetFragmentData(a.X, a.Y, b.X, b.Y, c.X, c.Y) {
		return
	}
	colors := [3]color.Rgb8{m.colors[tri.A], m.colors[tri.B], m.colors[tri.C]}
	rasterizer.RasterTriangle(raster.PixelShaderFunc(func(out *color.Rgb8, x, y int16) bool {
		wA, wB, wC := sampler.Weights(x, y)
		*out = blendVertexColor(colors, sampler, wA, wB, wC)
		return true
	}), a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

func blendVertexColor(colors [3]color.Rgb8, sampler raster.TriangleAffineSampler, wA, wB, wC fixedpoint.UFraction16) color.Rgb8 {
	weights := [3]fixedpoint.UFraction16{wA, wB, wC}
	byVertex := [3]fixedpoint.UFraction16{}
	byVertex[sampler.IndexA] = weights[0]
	byVertex[sampler.IndexB] = weights[1]
	byVertex[sampler.IndexC] = weights[2]

	mix := func(ch func(color.Rgb8) uint8) uint8 {
		v := int32(0)
		for i := 0; i < 3; i++ {
			v += fixedpoint.Scale16(byVertex[i], int32(ch(colors[i])))
		}
		return fixedpoint.SaturateU8(v)
	}
	return color.RGB(mix(color.Rgb8.Red), mix(color.Rgb8.Green), mix(color.Rgb8.Blue))
}
