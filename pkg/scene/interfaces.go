package scene

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// RenderObject is the pipeline contract every scene entity implements
// (spec.md §6.2). Every "done?" verb returns true only once no more
// indices remain for this tick; the engine re-invokes it, incrementing its
// own index, until true comes back. WorldTransform and WorldShade are
// deliberately split into two verbs (see DESIGN.md) even though the source
// folds both into a single PrimitiveWorldShade.
type RenderObject interface {
	ObjectShade(frustum geometry.Frustum)
	VertexShade(index uint16) bool
	WorldTransform(index uint16) bool
	WorldShade(frustum geometry.Frustum, primitiveIndex uint16) bool
	CameraTransform(transform geometry.CameraTransform, index uint16) bool
	ScreenProject(projector *viewport.Projector, index uint16) bool
	ScreenShade(primitiveIndex uint16) bool
	FragmentCollect(collector *FragmentCollector)
	FragmentShade(rasterizer *raster.WindowRasterizer, primitiveIndex uint16)
}

// SceneShader computes a fragment's final color from its albedo, material
// and (when available) world position/normal. Each method is independently
// optional to implement meaningfully — a shader only implementing
// ShadeAlbedo still satisfies the interface and is simply never handed
// positional context.
type SceneShader interface {
	ShadeAlbedo(out *color.Rgb8, material Material)
	ShadePosition(out *color.Rgb8, material Material, shade WorldPositionShade)
	ShadeNormal(out *color.Rgb8, material Material, shade WorldPositionNormalShade)
}

// LightSource is a tagged-variant light contributor queried by LightsShader.
type LightSource interface {
	GetLighting(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade WorldPositionShade)
	GetLightingNormal(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade WorldPositionNormalShade)
}

// FragmentShader draws a single fragment of type F. Kept generic (unlike
// RenderObject) because each concrete render object owns exactly one
// fragment shader bound to its own fragment type; the engine itself never
// needs to call FragmentShader directly — RenderObject.FragmentShade
// dispatches to it internally.
type FragmentShader[F any] interface {
	FragmentShade(rasterizer *raster.WindowRasterizer, fragment F)
}
