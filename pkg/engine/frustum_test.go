package engine

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/geometry"
)

func TestBuildFrustumCullsBehindCamera(t *testing.T) {
	camera := geometry.CameraState{}
	frustum := BuildFrustum(camera, 1<<30)

	ahead := geometry.Vertex16{Z: 1000}
	behind := geometry.Vertex16{Z: -1000}

	if !frustum.IsPointInside(ahead, geometry.DefaultPlaneTolerance) {
		t.Errorf("point ahead of the camera should be inside the frustum")
	}
	if frustum.IsPointInside(behind, geometry.DefaultPlaneTolerance) {
		t.Errorf("point behind the camera should be outside the frustum")
	}
}

func TestBuildFrustumOriginMatchesCameraPosition(t *testing.T) {
	camera := geometry.CameraState{Position: geometry.Vertex16{X: 5, Y: -3, Z: 7}}
	frustum := BuildFrustum(camera, 1_000_000)
	if frustum.Origin != camera.Position {
		t.Errorf("frustum.Origin = %+v, want camera position %+v", frustum.Origin, camera.Position)
	}
}
