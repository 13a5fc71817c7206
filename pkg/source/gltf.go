package source

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
)

// LoadGltfMesh decodes the first mesh/primitive of a glTF document into a
// RAM-backed ArrayMeshProvider, scaling float positions into Vertex16 units
// of fixedpoint.Unit. Grounded on the teacher's former gltf.go, whose
// float64 mesh.Mesh target no longer applies — only the decode step
// (qmuntal/gltf + modeler accessor reads) survives, feeding integer
// geometry instead.
func LoadGltfMesh(path string) (*ArrayMeshProvider, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open gltf %q: %w", path, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("source: gltf %q has no primitives", path)
	}
	prim := doc.Meshes[0].Primitives[0]

	posAccessor, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("source: gltf %q primitive has no POSITION attribute", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
	if err != nil {
		return nil, fmt.Errorf("source: read positions: %w", err)
	}

	vertices := make([]geometry.Vertex16, len(positions))
	for i, p := range positions {
		vertices[i] = geometry.Vertex16{
			X: fixedpoint.SaturateI16(int32(p[0] * fixedpoint.Unit)),
			Y: fixedpoint.SaturateI16(int32(p[1] * fixedpoint.Unit)),
			Z: fixedpoint.SaturateI16(int32(p[2] * fixedpoint.Unit)),
		}
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return nil, fmt.Errorf("source: read indices: %w", err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("source: gltf %q index count %d not a multiple of 3", path, len(indices))
	}
	triangles := make([]Triangle, len(indices)/3)
	for i := range triangles {
		triangles[i] = Triangle{A: uint16(indices[3*i]), B: uint16(indices[3*i+1]), C: uint16(indices[3*i+2])}
	}

	provider := &ArrayMeshProvider{Vertices: vertices, Triangles: triangles}

	if uvAccessor, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvAccessor], nil)
		if err != nil {
			return nil, fmt.Errorf("source: read uvs: %w", err)
		}
		provider.UVs = make([]raster.Coordinate16, len(uvs))
		for i, uv := range uvs {
			provider.UVs[i] = raster.Coordinate16{
				X: fixedpoint.SaturateI16(int32(uv[0] * float32(fixedpoint.UFraction16One))),
				Y: fixedpoint.SaturateI16(int32(uv[1] * float32(fixedpoint.UFraction16One))),
			}
		}
	}

	return provider, nil
}
