package objects

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/source"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

func TestEdgeFullCycleCollectsFragments(t *testing.T) {
	provider := &source.ArrayEdgeProvider{
		Vertices: []geometry.Vertex16{{X: 0}, {X: 100}, {X: 200}},
		Edges:    [][2]uint16{{0, 1}, {1, 2}},
	}
	e := NewEdge(provider, geometry.Transform{Resize: geometry.Scale16One}, scene.Material{}, nil)

	frustum := geometry.Frustum{RadiusSquared: 1 << 30}
	e.ObjectShade(frustum)
	if e.culled {
		t.Fatalf("Edge should not be culled by a permissive frustum")
	}

	driveIndexed(provider.VertexCount(), e.VertexShade)
	driveIndexed(provider.VertexCount(), e.WorldTransform)
	driveIndexed(provider.EdgeCount(), func(i uint16) bool { return e.WorldShade(frustum, i) })
	driveIndexed(provider.VertexCount(), func(i uint16) bool { return e.CameraTransform(geometry.CameraTransform{}, i) })

	projector := viewport.NewProjector(100, 100)
	driveIndexed(provider.VertexCount(), func(i uint16) bool { return e.ScreenProject(projector, i) })
	driveIndexed(provider.EdgeCount(), e.ScreenShade)

	collector := scene.NewFragmentCollector(8)
	collector.PrepareForObject(0)
	e.FragmentCollect(collector)
	if collector.Count() != 2 {
		t.Errorf("FragmentCollect enqueued %d fragments, want 2", collector.Count())
	}
}

func TestEdgeScreenShadeFaceCulling(t *testing.T) {
	provider := &source.ArrayEdgeProvider{
		Vertices: []geometry.Vertex16{{}, {}},
		Edges:    [][2]uint16{{0, 1}},
	}

	cases := []struct {
		name        string
		faceCulling FaceCullingEnum
		wantCulled  bool
	}{
		// edge depth (10) is farther from the camera than the center (0):
		// Backface drops it, Frontface keeps it, NoCulling always keeps it.
		{"BackfaceCulling drops the farther edge", BackfaceCulling, true},
		{"FrontfaceCulling keeps the farther edge", FrontfaceCulling, false},
		{"NoCulling keeps the farther edge", NoCulling, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEdge(provider, geometry.Transform{Resize: geometry.Scale16One}, scene.Material{}, nil)
			e.FaceCulling = tc.faceCulling
			e.ensureCapacity()
			e.screen[0] = geometry.Vertex16{Z: 10}
			e.screen[1] = geometry.Vertex16{Z: 10}
			e.screenCenter = geometry.Vertex16{Z: 0}

			e.ScreenShade(0)

			if e.faceCulled[0] != tc.wantCulled {
				t.Errorf("faceCulled = %v, want %v", e.faceCulled[0], tc.wantCulled)
			}
		})
	}
}

func TestEdgeFragmentCollectSkipsBothBehindCamera(t *testing.T) {
	provider := &source.ArrayEdgeProvider{
		Vertices: []geometry.Vertex16{{}, {}},
		Edges:    [][2]uint16{{0, 1}},
	}
	e := NewEdge(provider, geometry.Transform{Resize: geometry.Scale16One}, scene.Material{}, nil)
	e.ensureCapacity()
	e.screen[0] = geometry.Vertex16{Z: -1}
	e.screen[1] = geometry.Vertex16{Z: -1}

	collector := scene.NewFragmentCollector(8)
	collector.PrepareForObject(0)
	e.FragmentCollect(collector)
	if collector.Count() != 0 {
		t.Errorf("edge with both endpoints behind the camera should not enqueue, got %d", collector.Count())
	}
}
