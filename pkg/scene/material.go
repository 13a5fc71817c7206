// Package scene defines the pipeline contracts every render object and
// shader implements (spec.md §6.2-§6.4), the fragment types passed between
// them, and FragmentCollector, the bounded depth-ordered fragment queue.
package scene

import "github.com/gitmodu/integerworld/pkg/fixedpoint"

// Material carries the surface properties a SceneShader consumes.
type Material struct {
	Diffuse      fixedpoint.UFraction8
	Specular     fixedpoint.UFraction8
	Emissive     fixedpoint.UFraction8
	Metallic     fixedpoint.UFraction8
	Rough        fixedpoint.UFraction8
	Gloss        fixedpoint.UFraction8
	SpecularTint fixedpoint.UFraction8
	Fresnel      fixedpoint.Fraction8
}
