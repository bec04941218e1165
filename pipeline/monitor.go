package pipeline

import "github.com/poiesic/coursematch/core"

// Monitor provides hooks to observe a run.
type Monitor interface {
	Start(courses int, digest core.ID)
	AfterFit(summary *Summary)
	QueryRanked(result QueryRanking)
	// Rendering is called once after ranking, before any output is written.
	Rendering(charts int)
	FileWritten(path string)
	Finish(summary *Summary)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ int, _ core.ID)     {}
func (n *noopMonitor) AfterFit(_ *Summary)        {}
func (n *noopMonitor) QueryRanked(_ QueryRanking) {}
func (n *noopMonitor) Rendering(_ int)            {}
func (n *noopMonitor) FileWritten(_ string)       {}
func (n *noopMonitor) Finish(_ *Summary)          {}
