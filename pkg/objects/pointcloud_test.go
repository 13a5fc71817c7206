package objects

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/source"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// driveIndexed calls step once per primitive index in order, stopping at the
// first call that returns true, matching the engine's own state machine one
// call per stage per primitive.
func driveIndexed(count uint16, step func(i uint16) bool) {
	for i := uint16(0); i < count; i++ {
		if step(i) {
			return
		}
	}
}

func TestPointCloudFullCycleCollectsFragments(t *testing.T) {
	provider := &source.ArrayPointProvider{Points: []geometry.Vertex16{
		{X: 0, Y: 0, Z: 0},
		{X: 100, Y: 100, Z: 0},
	}}
	pc := NewPointCloud(provider, geometry.Transform{Resize: geometry.Scale16One}, scene.Material{}, nil)

	frustum := geometry.Frustum{RadiusSquared: 1 << 30}
	pc.ObjectShade(frustum)
	if pc.culled {
		t.Fatalf("PointCloud should not be culled by a permissive frustum")
	}

	driveIndexed(provider.PointCount(), pc.VertexShade)
	driveIndexed(provider.PointCount(), pc.WorldTransform)
	driveIndexed(provider.PointCount(), func(i uint16) bool { return pc.WorldShade(frustum, i) })
	driveIndexed(provider.PointCount(), func(i uint16) bool {
		return pc.CameraTransform(geometry.CameraTransform{}, i)
	})
	projector := viewport.NewProjector(100, 100)
	driveIndexed(provider.PointCount(), func(i uint16) bool { return pc.ScreenProject(projector, i) })

	collector := scene.NewFragmentCollector(8)
	collector.PrepareForObject(0)
	pc.FragmentCollect(collector)
	if collector.Count() != 2 {
		t.Errorf("FragmentCollect enqueued %d fragments, want 2", collector.Count())
	}
	for _, col := range pc.colors {
		if col != color.White {
			t.Errorf("color with a nil shader = %v, want White", col)
		}
	}
}

func TestPointCloudCulledSkipsFragmentCollect(t *testing.T) {
	provider := &source.ArrayPointProvider{Points: []geometry.Vertex16{{X: 0, Y: 0, Z: 0}}}
	pc := NewPointCloud(provider, geometry.Transform{Resize: geometry.Scale16One}, scene.Material{}, nil)

	// A frustum whose origin is far from the point, with zero tolerance
	// radius, rejects it outright.
	frustum := geometry.Frustum{Origin: geometry.Vertex16{Z: 30_000}, RadiusSquared: 1}
	pc.ObjectShade(frustum)
	if !pc.culled {
		t.Fatalf("PointCloud far outside the frustum radius should be culled")
	}

	collector := scene.NewFragmentCollector(8)
	collector.PrepareForObject(0)
	pc.FragmentCollect(collector)
	if collector.Count() != 0 {
		t.Errorf("a culled PointCloud should not enqueue fragments, got %d", collector.Count())
	}
}
