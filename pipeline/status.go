// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

import "sync"

// The pipeline stages as shown in live status reports.
const (
	StageIdle       = "idle"
	StageHarvesting = "harvesting resolvers"
	StageResolving  = "resolving"
	StageProbing    = "probing latency"
	StageChecking   = "checking reachability"
	StageDone       = "done"
)

// Status is a concurrency-safe snapshot holder for the pipeline's progress,
// for consumption by live displays polling it while Run is underway.
type Status struct {
	mu         sync.Mutex
	stage      string
	resolvers  int
	addresses  int
	candidates int
	reachable  int
}

// StatusSnapshot is a point-in-time copy of the pipeline progress counters.
type StatusSnapshot struct {
	Stage      string // one of the Stage* constants
	Resolvers  int    // resolvers harvested
	Addresses  int    // distinct addresses resolved
	Candidates int    // zero-loss latency-ranked candidates
	Reachable  int    // candidates with a completed TLS handshake
}

// Snapshot returns a consistent copy of the current progress counters.
func (s *Status) Snapshot() StatusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatusSnapshot{
		Stage:      s.stage,
		Resolvers:  s.resolvers,
		Addresses:  s.addresses,
		Candidates: s.candidates,
		Reachable:  s.reachable,
	}
}

func (s *Status) enter(stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = stage
}

func (s *Status) update(fn func(*Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}
