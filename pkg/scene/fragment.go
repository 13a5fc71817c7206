package scene

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
)

// WorldPositionShade is the shading context passed to a SceneShader/
// LightSource when no surface normal is available (edges, point clouds).
type WorldPositionShade struct {
	Position geometry.Vertex16
	Z        int16
}

// WorldPositionNormalShade extends WorldPositionShade with a surface
// normal, used for lit triangle/mesh fragments.
type WorldPositionNormalShade struct {
	WorldPositionShade
	Normal geometry.Vertex16
}

// TriangleFragment is the fragment emitted by a Triangle-Shade Mesh object:
// a pre-shaded (or raw-albedo) color shared across the whole triangle, plus
// the three screen-space corners for rasterization.
type TriangleFragment struct {
	ScreenA, ScreenB, ScreenC geometry.Vertex16
	UvA, UvB, UvC             raster.Coordinate16
	World                     geometry.Vertex16
	NormalWorld               geometry.Vertex16
	Material                  Material
	Color                     color.Rgb8
	Z                         int16
}

// VertexColorTriangleFragment is emitted by a Vertex-Shade Mesh object:
// lighting is evaluated per vertex, and the fragment carries three colors
// for barycentric interpolation at raster time.
type VertexColorTriangleFragment struct {
	ScreenA, ScreenB, ScreenC geometry.Vertex16
	UvA, UvB, UvC             raster.Coordinate16
	ColorA, ColorB, ColorC    color.Rgb8
	Z                         int16
}

// EdgeFragment is a single line segment, analogous to TriangleFragment.
type EdgeFragment struct {
	Start, End geometry.Vertex16
	World      geometry.Vertex16
	Material   Material
	Color      color.Rgb8
	Z          int16
}

// EdgeVertexFragment carries a distinct color per endpoint, for gradient
// edges.
type EdgeVertexFragment struct {
	Start, End         geometry.Vertex16
	ColorStart, ColorEnd color.Rgb8
	Z                  int16
}

// PointFragment is a single shaded point (PointCloud element).
type PointFragment struct {
	Screen      geometry.Vertex16
	World       geometry.Vertex16
	Normal      geometry.Vertex16
	Material    Material
	Color       color.Rgb8
}

// BillboardFragment is an axis-aligned screen-space rectangle.
type BillboardFragment struct {
	TopLeft, BottomRight raster.Coordinate16
	Z                    int16
	Color                color.Rgb8
}

// BackgroundFragment is a single full-surface fill.
type BackgroundFragment struct {
	Color color.Rgb8
}
