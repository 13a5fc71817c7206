package objects

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

func TestBillboardScreenSpaceUsesAnchorDirectly(t *testing.T) {
	b := NewBillboard(BillboardScreenSpace, scene.Material{}, nil)
	b.ScreenAnchor = raster.Coordinate16{X: 10, Y: 20}
	b.Size = raster.Coordinate16{X: 5, Y: 5}

	b.ObjectShade(geometry.Frustum{})
	if b.culled {
		t.Fatalf("a screen-space billboard should never be culled")
	}
	projector := viewport.NewProjector(100, 100)
	b.ScreenProject(projector, 0)
	if b.screen.X != 10 || b.screen.Y != 20 {
		t.Errorf("screen-space billboard projected position = %+v, want anchor (10,20)", b.screen)
	}
}

func TestBillboardWorldSpaceCulledOutsideFrustum(t *testing.T) {
	b := NewBillboard(BillboardWorldSpace, scene.Material{}, nil)
	b.WorldPosition = geometry.Vertex16{Z: 30_000}
	frustum := geometry.Frustum{RadiusSquared: 1}
	b.ObjectShade(frustum)
	if !b.culled {
		t.Errorf("a world-space billboard far outside the frustum radius should be culled")
	}
}

func TestBillboardFragmentCollectSkipsBehindCamera(t *testing.T) {
	b := NewBillboard(BillboardWorldSpace, scene.Material{}, nil)
	b.screen = geometry.Vertex16{Z: -1}
	collector := scene.NewFragmentCollector(4)
	collector.PrepareForObject(0)
	b.FragmentCollect(collector)
	if collector.Count() != 0 {
		t.Errorf("a world-space billboard behind the camera should not enqueue a fragment")
	}
}

func TestBillboardFragmentCollectEnqueuesWhenVisible(t *testing.T) {
	b := NewBillboard(BillboardScreenSpace, scene.Material{}, nil)
	b.screen = geometry.Vertex16{Z: 100}
	collector := scene.NewFragmentCollector(4)
	collector.PrepareForObject(0)
	b.FragmentCollect(collector)
	if collector.Count() != 1 {
		t.Errorf("a visible billboard should enqueue exactly one fragment, got %d", collector.Count())
	}
}
