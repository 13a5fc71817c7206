// Package source abstracts where a render object's geometry comes from.
// Grounded on PrimitiveSources/Vertex.h, Triangle.h, Normal.h and Uv.h,
// which the original split into separate PROGMEM (ROM) and RAM template
// instantiations per source kind. Go slices serve both roles identically —
// a package-level var initialized from a literal behaves like the ROM
// variant, one built at runtime (e.g. by the glTF loader) like the RAM
// variant — so one implementation covers what the source needed two of.
package source

import (
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
)

// Triangle indexes three vertices of a MeshProvider's vertex list.
type Triangle struct {
	A, B, C uint16
}

// MeshProvider supplies the geometry a Mesh render object iterates over.
// Normal and UV are optional per-provider: a provider with no precomputed
// normals reports ok=false and the caller derives a face normal from the
// triangle's own vertices instead.
type MeshProvider interface {
	VertexCount() uint16
	TriangleCount() uint16
	Vertex(i uint16) geometry.Vertex16
	Triangle(i uint16) Triangle
	Normal(triangleIndex uint16) (geometry.Vertex16, bool)
	UV(vertexIndex uint16) (raster.Coordinate16, bool)
}

// ArrayMeshProvider is a plain slice-backed MeshProvider, used both for
// compile-time literal meshes and for meshes decoded at runtime (glTF).
type ArrayMeshProvider struct {
	Vertices  []geometry.Vertex16
	Triangles []Triangle
	Normals   []geometry.Vertex16   // optional, parallel to Triangles
	UVs       []raster.Coordinate16 // optional, parallel to Vertices
}

func (m *ArrayMeshProvider) VertexCount() uint16   { return uint16(len(m.Vertices)) }
func (m *ArrayMeshProvider) TriangleCount() uint16 { return uint16(len(m.Triangles)) }

func (m *ArrayMeshProvider) Vertex(i uint16) geometry.Vertex16 { return m.Vertices[i] }
func (m *ArrayMeshProvider) Triangle(i uint16) Triangle        { return m.Triangles[i] }

func (m *ArrayMeshProvider) Normal(triangleIndex uint16) (geometry.Vertex16, bool) {
	if int(triangleIndex) >= len(m.Normals) {
		return geometry.Vertex16{}, false
	}
	return m.Normals[triangleIndex], true
}

func (m *ArrayMeshProvider) UV(vertexIndex uint16) (raster.Coordinate16, bool) {
	if int(vertexIndex) >= len(m.UVs) {
		return raster.Coordinate16{}, false
	}
	return m.UVs[vertexIndex], true
}

// EdgeProvider supplies the segment list an Edge render object iterates
// over: pairs of vertex indices into a shared vertex list, grounded on
// EdgeObject.h's source pairing.
type EdgeProvider interface {
	VertexCount() uint16
	EdgeCount() uint16
	Vertex(i uint16) geometry.Vertex16
	Edge(i uint16) (startIndex, endIndex uint16)
}

// ArrayEdgeProvider is a plain slice-backed EdgeProvider.
type ArrayEdgeProvider struct {
	Vertices []geometry.Vertex16
	Edges    [][2]uint16
}

func (e *ArrayEdgeProvider) VertexCount() uint16                        { return uint16(len(e.Vertices)) }
func (e *ArrayEdgeProvider) EdgeCount() uint16                          { return uint16(len(e.Edges)) }
func (e *ArrayEdgeProvider) Vertex(i uint16) geometry.Vertex16          { return e.Vertices[i] }
func (e *ArrayEdgeProvider) Edge(i uint16) (startIndex, endIndex uint16) {
	pair := e.Edges[i]
	return pair[0], pair[1]
}

// PointProvider supplies the point list a PointCloud render object iterates
// over, grounded on PointCloudObject.h.
type PointProvider interface {
	PointCount() uint16
	Point(i uint16) geometry.Vertex16
}

// ArrayPointProvider is a plain slice-backed PointProvider.
type ArrayPointProvider struct {
	Points []geometry.Vertex16
}

func (p *ArrayPointProvider) PointCount() uint16               { return uint16(len(p.Points)) }
func (p *ArrayPointProvider) Point(i uint16) geometry.Vertex16 { return p.Points[i] }
