package objects

import "github.com/gitmodu/integerworld/pkg/geometry"

// FaceCullingEnum selects which triangles/edges ScreenShade discards after
// projection. Grounded on RenderObjects/Mesh/AbstractObject.h and
// RenderObjects/Edge/AbstractObject.h's shared FaceCullingEnum.
type FaceCullingEnum uint8

const (
	// BackfaceCulling is the zero value so a mesh built via a plain struct
	// literal defaults to it, matching the source's template default for
	// Mesh (Edge's constructor overrides it to NoCulling, its own default).
	BackfaceCulling FaceCullingEnum = iota
	FrontfaceCulling
	NoCulling
)

// signedScreenArea mirrors Mesh/AbstractObject.h::ScreenShade's winding
// test exactly: (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x), computed from the
// triangle's three projected screen vertices in source order (a, b, c).
func signedScreenArea(a, b, c geometry.Vertex16) int32 {
	return int32(b.X-a.X)*int32(c.Y-a.Y) - int32(b.Y-a.Y)*int32(c.X-a.X)
}

// passesFaceCulling reports whether a triangle with the given signed screen
// area survives the given culling mode. A degenerate (zero-area) triangle
// is culled under both Backface and Frontface modes, matching the source
// (neither branch's inequality is satisfied by zero).
func passesFaceCulling(mode FaceCullingEnum, area int32) bool {
	switch mode {
	case FrontfaceCulling:
		return area > 0
	case NoCulling:
		return true
	default: // BackfaceCulling
		return area < 0
	}
}

// passesEdgeFaceCulling reports whether an edge whose averaged screen depth
// is depth survives the given culling mode, compared against the object's
// own screen-space center depth centerZ. Grounded on
// Edge/AbstractObject.h::ScreenShade's behind/in-front test.
func passesEdgeFaceCulling(mode FaceCullingEnum, depth, centerZ int16) bool {
	diff := int32(depth) - int32(centerZ)
	switch mode {
	case BackfaceCulling:
		return diff <= 0
	case FrontfaceCulling:
		return diff >= 0
	default: // NoCulling
		return true
	}
}
