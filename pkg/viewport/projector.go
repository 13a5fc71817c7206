// Package viewport implements the camera-space to screen-space projection
// stage: ViewportProjector turns a camera-space Vertex16 into pixel
// coordinates plus a depth key, entirely in integer arithmetic.
package viewport

import (
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
)

// RangeMin/RangeMax bound the configurable field-of-view distance:
// RangeMin is the closest "distance to screen" (widest FoV), RangeMax the
// farthest (narrowest FoV). Grounded on Viewport.h's RangeMin/RangeUnits.
const (
	RangeMin   = geometry.Unit
	RangeUnits = geometry.Range / geometry.Unit
	RangeMax   = geometry.Unit * RangeUnits
	Range      = RangeMax - RangeMin
)

var downShift = fixedpoint.GetBitShifts(Range)

// Projector maps camera-space vertices to screen pixels for a fixed output
// size and field of view.
type Projector struct {
	viewWidthHalf, viewHeightHalf int16
	verticalNum, verticalDenum    int16
	distanceNum                   uint16
}

// NewProjector builds a Projector at the default (mid-range) field of view.
func NewProjector(viewWidth, viewHeight int16) *Projector {
	p := &Projector{distanceNum: (RangeMin + RangeMax) / 2}
	p.SetDimensions(viewWidth, viewHeight)
	return p
}

// SetDimensions updates the output size; the half-extents are half of each
// int16 dimension, so they never exceed 16383.
func (p *Projector) SetDimensions(viewWidth, viewHeight int16) {
	p.verticalNum, p.verticalDenum = viewHeight, viewWidth
	p.viewWidthHalf = fixedpoint.MinI16(32767, viewWidth>>1)
	p.viewHeightHalf = fixedpoint.MinI16(32767, viewHeight>>1)
}

// SetFov maps a ufraction16 field-of-view control ([0,1], 0=widest,
// 1X=narrowest) onto the distance-to-screen range.
func (p *Projector) SetFov(fov fixedpoint.UFraction16) {
	p.distanceNum = uint16(RangeMin + fixedpoint.Scale16(fov, Range))
}

// ViewDistance returns the current distance-to-screen value.
func (p *Projector) ViewDistance() uint16 { return p.distanceNum }

// Project maps a camera-space vertex to screen space: x,y in pixels
// (origin at the surface center), z carried through as distanceDenom, the
// depth key used for back-to-front sorting. When the denominator
// degenerates to zero, falls back to an orthographic (unscaled) projection
// instead of dividing by zero.
func (p *Projector) Project(v geometry.Vertex16) geometry.Vertex16 {
	distanceDenom := int32(p.distanceNum) + int32(v.Z)

	if distanceDenom == 0 {
		return geometry.Vertex16{
			X: fixedpoint.SaturateI16((int32(v.X) * int32(p.viewWidthHalf)) >> downShift),
			Y: fixedpoint.SaturateI16((int32(v.Y) * int32(p.viewHeightHalf)) >> downShift),
			Z: 0,
		}
	}

	rawX := (int64(v.X) * int64(p.distanceNum)) / int64(distanceDenom)
	rawY := (int64(v.Y) * int64(p.distanceNum)) / int64(distanceDenom)

	ix := (rawX * int64(p.viewWidthHalf)) >> downShift
	iy := (rawY * int64(p.viewHeightHalf)) >> downShift

	// Aspect-correct Y only, per spec.md §4.2.
	if p.verticalDenum != 0 {
		iy = (iy * int64(p.verticalNum)) / int64(p.verticalDenum)
	}

	saturate := func(v int64) int16 {
		if v > 32767 {
			return 32767
		}
		if v < -32768 {
			return -32768
		}
		return int16(v)
	}
	return geometry.Vertex16{
		X: saturate(ix),
		Y: saturate(iy),
		Z: fixedpoint.SaturateI16(distanceDenom),
	}
}
