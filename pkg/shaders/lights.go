// Package shaders implements the SceneShader and LightSource variants:
// LightsShader (Blinn-Phong-style accumulation over a light list) and
// NormalVisualizer (a debug shader mapping world normals to color).
// Grounded on Lights/LightsShader.h, Lights/AbstractLightsShader.h,
// Lights/DirectionalLight.h, Lights/PointLight.h and Lights/AbstractLight.h.
package shaders

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/scene"
)

// LightsShader accumulates ambient, diffuse and specular contributions from
// a fixed light list over the fragment's albedo and material, per
// spec.md §4.9. It implements scene.SceneShader.
type LightsShader struct {
	Ambient color.Fraction16
	Lights  []scene.LightSource
}

// ShadeAlbedo is the no-position fallback: only ambient and emissive apply,
// since without a world position no light's contribution can be evaluated.
func (s *LightsShader) ShadeAlbedo(out *color.Rgb8, material scene.Material) {
	albedo := color.FromRgb8(*out)
	*out = s.compose(albedo, material, color.Fraction16{}, color.Fraction16{}).ToRgb8()
}

// ShadePosition accumulates lighting using each light's position-only
// contribution (GetLighting), for fragments without a surface normal
// (edges, points).
func (s *LightsShader) ShadePosition(out *color.Rgb8, material scene.Material, shade scene.WorldPositionShade) {
	var diffuseTotal, specularTotal fixedpoint.UFraction16
	var lightColor color.Fraction16
	for _, l := range s.Lights {
		var lc color.Fraction16
		var d, sp fixedpoint.UFraction16
		l.GetLighting(&lc, &d, &sp, shade)
		lightColor = lightColor.Add(lc)
		diffuseTotal = fixedpoint.ClampUFraction16(int32(diffuseTotal) + int32(d))
		specularTotal = fixedpoint.ClampUFraction16(int32(specularTotal) + int32(sp))
	}
	albedo := color.FromRgb8(*out)
	*out = s.compose(albedo, material, lightColor.Scale(diffuseTotal), lightColor.Scale(specularTotal)).ToRgb8()
}

// ShadeNormal accumulates lighting using each light's normal-aware
// contribution (GetLightingNormal), for lit triangle/mesh fragments.
func (s *LightsShader) ShadeNormal(out *color.Rgb8, material scene.Material, shade scene.WorldPositionNormalShade) {
	var diffuseTotal, specularTotal fixedpoint.UFraction16
	var lightColor color.Fraction16
	for _, l := range s.Lights {
		var lc color.Fraction16
		var d, sp fixedpoint.UFraction16
		l.GetLightingNormal(&lc, &d, &sp, shade)
		lightColor = lightColor.Add(lc)
		diffuseTotal = fixedpoint.ClampUFraction16(int32(diffuseTotal) + int32(d))
		specularTotal = fixedpoint.ClampUFraction16(int32(specularTotal) + int32(sp))
	}
	albedo := color.FromRgb8(*out)
	*out = s.compose(albedo, material, lightColor.Scale(diffuseTotal), lightColor.Scale(specularTotal)).ToRgb8()
}

// compose folds ambient, diffuse and specular into a final color: diffuse
// modulates the albedo, specular is tinted toward the albedo by the
// material's metallic factor (metals color their highlights; dielectrics
// keep a white highlight), and emissive adds a flat glow independent of
// any light.
func (s *LightsShader) compose(albedo color.Fraction16, material scene.Material, diffuse, specular color.Fraction16) color.Fraction16 {
	ambientTerm := color.Fraction16{
		R: fixedpoint.UFraction16(fixedpoint.Scale16(s.Ambient.R, int32(albedo.R))),
		G: fixedpoint.UFraction16(fixedpoint.Scale16(s.Ambient.G, int32(albedo.G))),
		B: fixedpoint.UFraction16(fixedpoint.Scale16(s.Ambient.B, int32(albedo.B))),
	}
	diffuseTerm := color.Fraction16{
		R: fixedpoint.UFraction16(fixedpoint.Scale8(material.Diffuse, int32(fixedpoint.Scale16(diffuse.R, int32(albedo.R))))),
		G: fixedpoint.UFraction16(fixedpoint.Scale8(material.Diffuse, int32(fixedpoint.Scale16(diffuse.G, int32(albedo.G))))),
		B: fixedpoint.UFraction16(fixedpoint.Scale8(material.Diffuse, int32(fixedpoint.Scale16(diffuse.B, int32(albedo.B))))),
	}

	white := fixedpoint.UFraction16One
	metallic := widenFraction8(material.Metallic)
	specTint := func(channel fixedpoint.UFraction16) fixedpoint.UFraction16 {
		return fixedpoint.UFraction16(fixedpoint.Interpolate16(metallic, int32(white), int32(channel)))
	}
	specularTerm := color.Fraction16{
		R: fixedpoint.UFraction16(fixedpoint.Scale8(material.Specular, int32(fixedpoint.Scale16(specular.R, int32(specTint(albedo.R)))))),
		G: fixedpoint.UFraction16(fixedpoint.Scale8(material.Specular, int32(fixedpoint.Scale16(specular.G, int32(specTint(albedo.G)))))),
		B: fixedpoint.UFraction16(fixedpoint.Scale8(material.Specular, int32(fixedpoint.Scale16(specular.B, int32(specTint(albedo.B)))))),
	}

	emissiveTerm := albedo.Scale(widenFraction8(material.Emissive))

	return ambientTerm.Add(diffuseTerm).Add(specularTerm).Add(emissiveTerm)
}

// widenFraction8 rescales a ufraction8 ([0,128]) onto the ufraction16 scale
// ([0,32768]) used throughout lighting math.
func widenFraction8(f fixedpoint.UFraction8) fixedpoint.UFraction16 {
	return fixedpoint.UFraction16(uint16(f) << (fixedpoint.UFraction16Shift - fixedpoint.UFraction8Shift))
}

// NormalVisualizer is a debug SceneShader mapping a fragment's world normal
// directly to a color: each axis in [-Unit,Unit] biases to a [0,255]
// channel. Grounded on spec.md §4.9's U8Normal mapping.
type NormalVisualizer struct{}

func u8Normal(component int16) uint8 {
	v := ((int32(component) + int32(geometry.Unit)) * 255) / (2 * int32(geometry.Unit))
	return fixedpoint.SaturateU8(v)
}

func (NormalVisualizer) ShadeAlbedo(out *color.Rgb8, material scene.Material) {}

func (NormalVisualizer) ShadePosition(out *color.Rgb8, material scene.Material, shade scene.WorldPositionShade) {
}

func (NormalVisualizer) ShadeNormal(out *color.Rgb8, material scene.Material, shade scene.WorldPositionNormalShade) {
	*out = color.RGB(u8Normal(shade.Normal.X), u8Normal(shade.Normal.Y), u8Normal(shade.Normal.Z))
}
