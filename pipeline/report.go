// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

import (
	"strings"

	"github.com/netgrail/findmeip/types"
)

// Report is the outcome of one pipeline run: the latency-ranked candidate
// list and the (unordered) set of candidates that completed a TLS
// handshake. An empty report is a perfectly normal outcome, not a failure.
type Report struct {
	Ranked    []types.Candidate
	Reachable map[string]struct{}
}

// Usable intersects the reachable set with the ranked candidate list,
// preserving the list's ascending-latency order, and returns the usable
// candidates with their quality set to reachable.
func (r *Report) Usable() []types.Candidate {
	var usable []types.Candidate
	for _, candidate := range r.Ranked {
		if _, ok := r.Reachable[candidate.Address]; !ok {
			continue
		}
		candidate.Quality = types.Reachable
		usable = append(usable, candidate)
	}
	return usable
}

// Join returns the usable addresses in preference order, concatenated with
// the specified delimiter, ready for pasting into downstream configuration.
func (r *Report) Join(sep string) string {
	usable := r.Usable()
	addrs := make([]string, 0, len(usable))
	for _, candidate := range usable {
		addrs = append(addrs, candidate.Address)
	}
	return strings.Join(addrs, sep)
}
