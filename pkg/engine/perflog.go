package engine

import "log"

// PerformanceLogTask periodically logs an EngineRenderTask's RenderStatus,
// grounded on Engine/PerformanceLogTask.h's periodic stats dump. Every
// LogInterval calls to Tick emit one log line and reset the task's
// per-period counters.
type PerformanceLogTask struct {
	Task        *EngineRenderTask
	LogInterval uint32

	ticks uint32
}

func NewPerformanceLogTask(task *EngineRenderTask, logInterval uint32) *PerformanceLogTask {
	return &PerformanceLogTask{Task: task, LogInterval: logInterval}
}

// Tick is called once per rendered frame; every LogInterval calls it logs
// and resets the dropped-fragment counter (cumulative counters like
// CyclesCompleted and FragmentsDrawn are left to grow across the task's
// whole lifetime).
func (p *PerformanceLogTask) Tick() {
	p.ticks++
	if p.ticks < p.LogInterval {
		return
	}
	p.ticks = 0
	status := p.Task.Status
	log.Printf("integerworld: cycles=%d fragments_drawn=%d fragments_dropped=%d state=%s",
		status.CyclesCompleted, status.FragmentsDrawn, status.FragmentsDropped, p.Task.State())
	p.Task.Status.FragmentsDropped = 0
}
