package shaders

import (
	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/scene"
)

// DirectionalLight shines uniformly along Direction (already normalized),
// with no distance falloff. Grounded on Lights/DirectionalLight.h.
type DirectionalLight struct {
	Direction geometry.Vertex16 // points from the surface toward the light
	Color     color.Fraction16
	Gloss     fixedpoint.UFraction8
}

func (l *DirectionalLight) GetLighting(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionShade) {
	*lightColor = l.Color
	*diffuse = fixedpoint.UFraction16One
	*specular = 0
}

func (l *DirectionalLight) GetLightingNormal(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionNormalShade) {
	*lightColor = l.Color
	ndotl := geometry.DotProduct16(shade.Normal, l.Direction)
	*diffuse = fixedpoint.ClampUFraction16(ndotl >> (2*fixedpoint.GetBitShifts(geometry.Unit) - fixedpoint.UFraction16Shift))
	*specular = specularFromNdotL(*diffuse, l.Gloss)
}

// PointLight radiates from Position, attenuated by distance-squared against
// Range. Grounded on Lights/PointLight.h.
type PointLight struct {
	Position geometry.Vertex16
	Range    int16
	Color    color.Fraction16
	Gloss    fixedpoint.UFraction8
}

func (l *PointLight) attenuation(shade scene.WorldPositionShade) (fixedpoint.UFraction16, geometry.Vertex16) {
	toLight := l.Position.Sub(shade.Position)
	distance := geometry.Distance16(l.Position, shade.Position)
	dir := toLight
	geometry.NormalizeVertex16(&dir)
	if l.Range <= 0 {
		return 0, dir
	}
	att := fixedpoint.GetUFraction16(uint32(max0(int32(l.Range)-distance)), uint32(l.Range))
	return att, dir
}

func max0(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}

func (l *PointLight) GetLighting(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionShade) {
	att, _ := l.attenuation(shade)
	*lightColor = l.Color
	*diffuse = att
	*specular = 0
}

func (l *PointLight) GetLightingNormal(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionNormalShade) {
	att, dir := l.attenuation(shade.WorldPositionShade)
	*lightColor = l.Color
	ndotl := geometry.DotProduct16(shade.Normal, dir)
	d := fixedpoint.ClampUFraction16(ndotl >> (2*fixedpoint.GetBitShifts(geometry.Unit) - fixedpoint.UFraction16Shift))
	*diffuse = fixedpoint.UFraction16(fixedpoint.Scale16(att, int32(d)))
	*specular = fixedpoint.UFraction16(fixedpoint.Scale16(att, int32(specularFromNdotL(d, l.Gloss))))
}

// SpotLight narrows a PointLight's cone along Direction, blending a narrow
// and wide falloff curve (repeated squaring) as the angle to the cone axis
// grows. Grounded on Lights/AbstractLight.h's spot cone model.
type SpotLight struct {
	PointLight
	Direction geometry.Vertex16 // normalized, points away from the light
	// Softness blends between a wide (linear falloff) and narrow (squared
	// twice) cone curve: 0=wide, UFraction8One=narrow.
	Softness fixedpoint.UFraction8
}

func (l *SpotLight) coneFalloff(toSurface geometry.Vertex16) fixedpoint.UFraction16 {
	d := geometry.DotProduct16(toSurface, l.Direction)
	wide := fixedpoint.ClampUFraction16(d >> (2*fixedpoint.GetBitShifts(geometry.Unit) - fixedpoint.UFraction16Shift))

	narrow := wide
	for i := 0; i < 2; i++ {
		narrow = fixedpoint.UFraction16(fixedpoint.Scale16(narrow, int32(narrow)))
	}

	return fixedpoint.UFraction16(fixedpoint.Interpolate16(widenFraction8(l.Softness), int32(wide), int32(narrow)))
}

func (l *SpotLight) GetLighting(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionShade) {
	att, dir := l.attenuation(shade)
	cone := l.coneFalloff(dir.Negate())
	*lightColor = l.Color
	*diffuse = fixedpoint.UFraction16(fixedpoint.Scale16(att, int32(cone)))
	*specular = 0
}

func (l *SpotLight) GetLightingNormal(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionNormalShade) {
	att, dir := l.attenuation(shade.WorldPositionShade)
	cone := l.coneFalloff(dir.Negate())
	*lightColor = l.Color
	ndotl := geometry.DotProduct16(shade.Normal, dir)
	d := fixedpoint.ClampUFraction16(ndotl >> (2*fixedpoint.GetBitShifts(geometry.Unit) - fixedpoint.UFraction16Shift))
	combined := fixedpoint.UFraction16(fixedpoint.Scale16(att, int32(cone)))
	*diffuse = fixedpoint.UFraction16(fixedpoint.Scale16(combined, int32(d)))
	*specular = fixedpoint.UFraction16(fixedpoint.Scale16(combined, int32(specularFromNdotL(d, l.Gloss))))
}

// CameraLight is a headlight attached to the viewer, shining along the
// camera's forward axis regardless of object position — the simplest light
// source, used for flat "flashlight" scenes.
type CameraLight struct {
	Direction geometry.Vertex16 // camera forward, normalized
	Color     color.Fraction16
	Gloss     fixedpoint.UFraction8
}

func (l *CameraLight) GetLighting(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionShade) {
	*lightColor = l.Color
	*diffuse = fixedpoint.UFraction16One
	*specular = 0
}

func (l *CameraLight) GetLightingNormal(lightColor *color.Fraction16, diffuse, specular *fixedpoint.UFraction16, shade scene.WorldPositionNormalShade) {
	*lightColor = l.Color
	ndotl := geometry.DotProduct16(shade.Normal, l.Direction.Negate())
	*diffuse = fixedpoint.ClampUFraction16(ndotl >> (2*fixedpoint.GetBitShifts(geometry.Unit) - fixedpoint.UFraction16Shift))
	*specular = specularFromNdotL(*diffuse, l.Gloss)
}

// specularFromNdotL derives a Blinn-Phong-style specular intensity from the
// diffuse term by repeated squaring, the integer-only narrowing technique
// the spot cone falloff also uses: squaring ndotl gloss>>4 times concentrates
// the highlight without a pow() call.
func specularFromNdotL(ndotl fixedpoint.UFraction16, gloss fixedpoint.UFraction8) fixedpoint.UFraction16 {
	v := ndotl
	steps := int(gloss >> 4)
	for i := 0; i < steps; i++ {
		v = fixedpoint.UFraction16(fixedpoint.Scale16(v, int32(v)))
	}
	return v
}
