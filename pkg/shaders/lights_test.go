package shaders

import (
	"testing"

	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/scene"
)

func TestWidenFraction8Endpoints(t *testing.T) {
	if got := widenFraction8(0); got != 0 {
		t.Errorf("widenFraction8(0) = %d, want 0", got)
	}
	if got := widenFraction8(fixedpoint.UFraction8One); got != fixedpoint.UFraction16One {
		t.Errorf("widenFraction8(UFraction8One) = %d, want %d", got, fixedpoint.UFraction16One)
	}
}

func TestSpecularFromNdotLZeroStepsIsIdentity(t *testing.T) {
	if got := specularFromNdotL(12345, 0); got != 12345 {
		t.Errorf("specularFromNdotL with gloss=0 = %d, want unchanged ndotl", got)
	}
}

func TestSpecularFromNdotLNarrowsTowardZero(t *testing.T) {
	got := specularFromNdotL(fixedpoint.UFraction16One/2, 64)
	if got >= fixedpoint.UFraction16One/2 {
		t.Errorf("specularFromNdotL should narrow a sub-unity ndotl toward zero, got %d", got)
	}
}

func TestU8NormalMapsUnitRangeToByteRange(t *testing.T) {
	if got := u8Normal(0); got < 127 || got > 129 {
		t.Errorf("u8Normal(0) = %d, want ~128", got)
	}
	if got := u8Normal(geometry.Unit); got != 255 {
		t.Errorf("u8Normal(Unit) = %d, want 255", got)
	}
	if got := u8Normal(-geometry.Unit); got != 0 {
		t.Errorf("u8Normal(-Unit) = %d, want 0", got)
	}
}

func TestLightsShaderShadeAlbedoAppliesAmbientOnly(t *testing.T) {
	s := &LightsShader{Ambient: color.Fraction16{R: fixedpoint.UFraction16One, G: fixedpoint.UFraction16One, B: fixedpoint.UFraction16One}}
	out := color.RGB(100, 100, 100)
	s.ShadeAlbedo(&out, scene.Material{})
	if out.Red() != 100 {
		t.Errorf("ShadeAlbedo with full ambient = %v, want original albedo preserved", out)
	}
}

func TestDirectionalLightGetLightingNormalFacingLight(t *testing.T) {
	l := &DirectionalLight{Direction: geometry.Vertex16{Z: geometry.Unit}, Color: color.Fraction16{R: fixedpoint.UFraction16One}}
	var lc color.Fraction16
	var diffuse, specular fixedpoint.UFraction16
	shade := scene.WorldPositionNormalShade{Normal: geometry.Vertex16{Z: geometry.Unit}}
	l.GetLightingNormal(&lc, &diffuse, &specular, shade)
	if diffuse < fixedpoint.UFraction16One-4 {
		t.Errorf("diffuse for a normal facing the light = %d, want ~UFraction16One", diffuse)
	}
}

func TestDirectionalLightGetLightingNormalFacingAway(t *testing.T) {
	l := &DirectionalLight{Direction: geometry.Vertex16{Z: geometry.Unit}}
	var lc color.Fraction16
	var diffuse, specular fixedpoint.UFraction16
	shade := scene.WorldPositionNormalShade{Normal: geometry.Vertex16{Z: -geometry.Unit}}
	l.GetLightingNormal(&lc, &diffuse, &specular, shade)
	if diffuse != 0 {
		t.Errorf("diffuse for a normal facing away from the light = %d, want 0", diffuse)
	}
}

func TestPointLightAttenuationAtZeroRangeIsZero(t *testing.T) {
	l := &PointLight{Position: geometry.Vertex16{Z: 100}, Range: 0}
	att, _ := l.attenuation(scene.WorldPositionShade{})
	if att != 0 {
		t.Errorf("attenuation with Range=0 = %d, want 0", att)
	}
}

func TestPointLightAttenuationCloseIsFull(t *testing.T) {
	l := &PointLight{Position: geometry.Vertex16{}, Range: 100}
	att, _ := l.attenuation(scene.WorldPositionShade{Position: geometry.Vertex16{}})
	if att != fixedpoint.UFraction16One {
		t.Errorf("attenuation at distance 0 = %d, want UFraction16One", att)
	}
}

func TestPointLightAttenuationBeyondRangeIsZero(t *testing.T) {
	l := &PointLight{Position: geometry.Vertex16{}, Range: 10}
	att, _ := l.attenuation(scene.WorldPositionShade{Position: geometry.Vertex16{Z: 1000}})
	if att != 0 {
		t.Errorf("attenuation beyond Range = %d, want 0", att)
	}
}

func TestCameraLightGetLightingNormalFacingCamera(t *testing.T) {
	l := &CameraLight{Direction: geometry.Vertex16{Z: geometry.Unit}}
	var lc color.Fraction16
	var diffuse, specular fixedpoint.UFraction16
	shade := scene.WorldPositionNormalShade{Normal: geometry.Vertex16{Z: -geometry.Unit}}
	l.GetLightingNormal(&lc, &diffuse, &specular, shade)
	if diffuse < fixedpoint.UFraction16One-4 {
		t.Errorf("diffuse for a normal facing the camera light = %d, want ~UFraction16One", diffuse)
	}
}

func TestSpotLightConeFalloffStaysWithinUnitRange(t *testing.T) {
	l := &SpotLight{Direction: geometry.Vertex16{Z: geometry.Unit}, Softness: 0}
	cone := l.coneFalloff(geometry.Vertex16{Z: geometry.Unit / 2})
	if cone > fixedpoint.UFraction16One {
		t.Errorf("coneFalloff should stay within [0, UFraction16One], got %d", cone)
	}
}
