package geometry

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/fixedpoint"
)

func TestCalculateRotationTrigIdentity(t *testing.T) {
	trig := CalculateRotationTrig(RotationAngle{})
	if trig.CosX != Unit || trig.CosY != Unit || trig.CosZ != Unit {
		t.Errorf("identity rotation cosines = %+v, want Unit on all axes", trig)
	}
	if trig.SinX != 0 || trig.SinY != 0 || trig.SinZ != 0 {
		t.Errorf("identity rotation sines = %+v, want 0 on all axes", trig)
	}
}

func TestRotatePointIdentity(t *testing.T) {
	trig := CalculateRotationTrig(RotationAngle{})
	v := Vertex16{X: 100, Y: -200, Z: 300}
	if got := RotatePoint(v, trig); got != v {
		t.Errorf("RotatePoint with identity trig = %+v, want %+v", got, v)
	}
}

func TestRotatePointQuarterTurnZ(t *testing.T) {
	const tolerance = 4
	trig := CalculateRotationTrig(RotationAngle{Z: fixedpoint.Angle90})
	v := Vertex16{X: Unit}
	got := RotatePoint(v, trig)
	// 90 degree Z rotation carries +X onto +Y.
	if got.X < -tolerance || got.X > tolerance {
		t.Errorf("RotatePoint X = %d, want ~0", got.X)
	}
	if diff := int(got.Y) - int(Unit); diff < -tolerance || diff > tolerance {
		t.Errorf("RotatePoint Y = %d, want ~%d", got.Y, Unit)
	}
}

func TestTransformApplyScaleThenTranslate(t *testing.T) {
	tr := Transform{
		Resize:      Unit / 2,
		Rotation:    CalculateRotationTrig(RotationAngle{}),
		Translation: Vertex16{X: 10},
	}
	got := tr.Apply(Vertex16{X: 100})
	want := Vertex16{X: 60} // 100 scaled by 0.5 => 50, then +10
	if got != want {
		t.Errorf("Transform.Apply = %+v, want %+v", got, want)
	}
}

func TestTransformApplyRotationNoTranslate(t *testing.T) {
	tr := Transform{
		Resize:      Scale16One,
		Rotation:    CalculateRotationTrig(RotationAngle{}),
		Translation: Vertex16{X: 999},
	}
	v := Vertex16{X: 5, Y: 6, Z: 7}
	if got := tr.ApplyRotation(v); got != v {
		t.Errorf("Transform.ApplyRotation = %+v, want %+v (translation ignored)", got, v)
	}
}

func TestBuildCameraTransformNegatesPosition(t *testing.T) {
	camera := CameraState{Position: Vertex16{X: 10, Y: -20, Z: 30}}
	ct := BuildCameraTransform(camera)
	want := camera.Position.Negate()
	if ct.Translation != want {
		t.Errorf("BuildCameraTransform translation = %+v, want %+v", ct.Translation, want)
	}
}

func TestBuildCameraTransformReversesRotation(t *testing.T) {
	camera := CameraState{Rotation: RotationAngle{X: fixedpoint.Angle90}}
	ct := BuildCameraTransform(camera)
	plain := CalculateRotationTrig(RotationAngle{X: fixedpoint.Angle270})
	if ct.Rotation != plain {
		t.Errorf("BuildCameraTransform rotation = %+v, want reverse-angle trig %+v", ct.Rotation, plain)
	}
}

func TestCameraTransformApplyRoundTripsThroughShift(t *testing.T) {
	ct := CameraTransform{Rotation: CalculateRotationTrig(RotationAngle{})}
	v := Vertex16{X: 1, Y: 2, Z: 3}
	if got := ct.Apply(v); got != v {
		t.Errorf("identity CameraTransform.Apply = %+v, want %+v", got, v)
	}
}
