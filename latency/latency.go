// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package latency

import (
	"context"
	"sort"

	"github.com/netgrail/findmeip/taskpool"
	"github.com/netgrail/findmeip/types"

	log "github.com/sirupsen/logrus"
)

// Prober measures packet loss and average round-trip time towards a single
// address. Implementations must be safe for concurrent use. A probe that
// fails outright returns an error and thus no record at all; it must not
// fake a zero or lossy record instead.
type Prober interface {
	Probe(ctx context.Context, addr string) (types.LatencyRecord, error)
}

// ProberFunc adapts a plain function to the [Prober] interface.
type ProberFunc func(ctx context.Context, addr string) (types.LatencyRecord, error)

// Probe calls fn.
func (fn ProberFunc) Probe(ctx context.Context, addr string) (types.LatencyRecord, error) {
	return fn(ctx, addr)
}

// Stage fans latency probes out over many addresses concurrently and
// collects the resulting records.
type Stage struct {
	prober      Prober
	parallelism int
}

// StageOption can be passed to New when creating new [Stage] objects.
type StageOption func(*Stage)

// New returns a new latency probing [Stage] using the specified prober,
// with at most 200 concurrent probes; configurable via [WithParallelism].
func New(prober Prober, options ...StageOption) *Stage {
	s := &Stage{
		prober:      prober,
		parallelism: 200,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// WithParallelism sets the maximum number of concurrent probes.
func WithParallelism(limit int) StageOption {
	return func(s *Stage) {
		s.parallelism = limit
	}
}

// Probe measures every specified address and returns the records of those
// that produced a probe summary. Failed probes leave no trace in the
// result; records arrive in probe-completion order.
func (s *Stage) Probe(ctx context.Context, addrs []string) []types.LatencyRecord {
	pool := taskpool.New(s.parallelism)
	var records []types.LatencyRecord
	for _, addr := range addrs {
		addr := addr
		pool.Go(func() {
			rec, err := s.prober.Probe(ctx, addr)
			if err != nil {
				log.Debugf("latency: no record for %s: %v", addr, err)
				return
			}
			pool.Guard(func() { records = append(records, rec) })
		})
	}
	pool.StopWait()
	return records
}

// Rank filters the probe records down to those without any packet loss and
// returns them as candidates sorted ascending by round-trip time. The sort
// is stable, so records with equal times keep their relative order.
func Rank(records []types.LatencyRecord) []types.Candidate {
	var candidates []types.Candidate
	for _, rec := range records {
		if rec.Loss != 0 {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Address:   rec.Address,
			RTTMillis: rec.RTTMillis,
			Quality:   types.Unchecked,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RTTMillis < candidates[j].RTTMillis
	})
	return candidates
}
