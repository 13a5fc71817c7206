package engine

import (
	"math"

	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

// EngineRenderTask drives one render cycle through the 13-state machine
// (spec.md §4.10/§5, Engine/EngineRenderTask.h), advancing exactly one unit
// of work per Advance call. AddObject/ClearObjects force a restart to
// CycleStart on their next Advance, since mid-cycle object-count changes
// would otherwise desync the per-object cursors.
type EngineRenderTask struct {
	objects   []scene.RenderObject
	camera    geometry.CameraState
	projector *viewport.Projector
	rasterizer *raster.WindowRasterizer
	collector *scene.FragmentCollector

	// FrustumRadiusSquared bounds the whole-frustum early-reject sphere
	// (spec.md §4.6); callers size it to the scene's expected extent.
	FrustumRadiusSquared int32

	state          State
	enabled        bool
	restart        bool
	objectIndex    int
	primitiveIndex uint16
	frustum        geometry.Frustum
	cameraTransform geometry.CameraTransform
	rasterCursor   int

	Status RenderStatus
}

// NewEngineRenderTask builds a disabled engine bound to rasterizer and
// collector; call SetEnabled(true) to start it.
func NewEngineRenderTask(rasterizer *raster.WindowRasterizer, collector *scene.FragmentCollector, projector *viewport.Projector) *EngineRenderTask {
	return &EngineRenderTask{rasterizer: rasterizer, collector: collector, projector: projector, FrustumRadiusSquared: math.MaxInt32}
}

// SetCamera updates the camera state read at the next CycleStart.
func (e *EngineRenderTask) SetCamera(camera geometry.CameraState) { e.camera = camera }

// AddObject appends a render object and forces a restart to CycleStart.
func (e *EngineRenderTask) AddObject(obj scene.RenderObject) {
	e.objects = append(e.objects, obj)
	e.restart = true
}

// ClearObjects empties the object list and forces a restart to CycleStart.
func (e *EngineRenderTask) ClearObjects() {
	e.objects = e.objects[:0]
	e.restart = true
}

// SetEnabled starts or stops the engine. Disabling parks the state machine
// at StateDisabled; re-enabling always resumes from StateEngineStart, never
// mid-cycle.
func (e *EngineRenderTask) SetEnabled(enabled bool) {
	if enabled && !e.enabled {
		e.state = StateEngineStart
	}
	if !enabled && e.enabled {
		e.rasterizer.Surface.Stop()
	}
	e.enabled = enabled
	if !enabled {
		e.state = StateDisabled
	}
}

func (e *EngineRenderTask) State() State { return e.state }

// EnableDebugStatus turns on the per-state tick breakdown.
func (e *EngineRenderTask) EnableDebugStatus() {
	if e.Status.Debug == nil {
		e.Status.Debug = &DebugStatus{}
	}
}

// Advance performs exactly one unit of work and, where applicable, advances
// the state machine. Calling it on a disabled engine is a no-op.
func (e *EngineRenderTask) Advance() {
	if !e.enabled {
		return
	}
	if e.Status.Debug != nil {
		e.Status.Debug.Ticks[e.state]++
	}
	if e.restart && e.state != StateDisabled && e.state != StateEngineStart {
		e.restart = false
		e.state = StateCycleStart
		return
	}

	switch e.state {
	case StateDisabled:
		e.state = StateEngineStart
	case StateEngineStart:
		if !e.rasterizer.Surface.Start() {
			e.enabled = false
			e.state = StateDisabled
			return
		}
		e.projector.SetDimensions(e.rasterizer.Width, e.rasterizer.Height)
		e.state = StateCycleStart
	case StateCycleStart:
		e.cameraTransform = geometry.BuildCameraTransform(e.camera)
		e.frustum = BuildFrustum(e.camera, e.FrustumRadiusSquared)
		for _, obj := range e.objects {
			obj.ObjectShade(e.frustum)
		}
		e.collector.Clear()
		e.objectIndex, e.primitiveIndex = 0, 0
		e.state = StateVertexShade
	case StateVertexShade:
		e.stepObjectIndexed(func(o scene.RenderObject, i uint16) bool { return o.VertexShade(i) }, StateWorldTransform)
	case StateWorldTransform:
		e.stepObjectIndexed(func(o scene.RenderObject, i uint16) bool { return o.WorldTransform(i) }, StateWorldShade)
	case StateWorldShade:
		e.stepObjectIndexed(func(o scene.RenderObject, i uint16) bool { return o.WorldShade(e.frustum, i) }, StateCameraTransform)
	case StateCameraTransform:
		e.stepObjectIndexed(func(o scene.RenderObject, i uint16) bool { return o.CameraTransform(e.cameraTransform, i) }, StateScreenProject)
	case StateScreenProject:
		e.stepObjectIndexed(func(o scene.RenderObject, i uint16) bool { return o.ScreenProject(e.projector, i) }, StateScreenShade)
	case StateScreenShade:
		e.stepObjectIndexed(func(o scene.RenderObject, i uint16) bool { return o.ScreenShade(i) }, StateFragmentCollect)
	case StateFragmentCollect:
		if len(e.objects) == 0 {
			e.state = StateFragmentSort
			break
		}
		obj := e.objects[e.objectIndex]
		e.collector.PrepareForObject(uint16(e.objectIndex))
		obj.FragmentCollect(e.collector)
		e.objectIndex++
		if e.objectIndex >= len(e.objects) {
			e.objectIndex = 0
			e.state = StateFragmentSort
		}
	case StateFragmentSort:
		e.collector.Sort()
		e.Status.FragmentsDropped += e.collector.FragmentsDropped
		e.rasterCursor = 0
		e.state = StateWaitForSurface
	case StateWaitForSurface:
		if !e.rasterizer.Surface.IsReady() {
			return
		}
		e.state = StateRasterize
	case StateRasterize:
		entries := e.collector.Entries()
		if e.rasterCursor >= len(entries) {
			e.rasterizer.Surface.Flip()
			e.Status.CyclesCompleted++
			e.state = StateCycleStart
			return
		}
		entry := entries[e.rasterCursor]
		e.objects[entry.ObjectIndex].FragmentShade(e.rasterizer, entry.FragmentIndex)
		e.Status.FragmentsDrawn++
		e.rasterCursor++
	}
}

func (e *EngineRenderTask) stepObjectIndexed(fn func(scene.RenderObject, uint16) bool, next State) {
	if e.objectIndex >= len(e.objects) {
		e.objectIndex, e.primitiveIndex = 0, 0
		e.state = next
		return
	}
	done := fn(e.objects[e.objectIndex], e.primitiveIndex)
	e.primitiveIndex++
	if done {
		e.objectIndex++
		e.primitiveIndex = 0
	}
}
