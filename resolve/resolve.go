// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"strings"

	"github.com/netgrail/findmeip/taskpool"

	log "github.com/sirupsen/logrus"
)

// Lookuper resolves a hostname by querying one specific DNS resolver,
// returning the answer addresses in textual form. Implementations must be
// safe for concurrent use.
type Lookuper interface {
	Lookup(ctx context.Context, hostname, resolver string) ([]string, error)
}

// LookuperFunc adapts a plain function to the [Lookuper] interface.
type LookuperFunc func(ctx context.Context, hostname, resolver string) ([]string, error)

// Lookup calls fn.
func (fn LookuperFunc) Lookup(ctx context.Context, hostname, resolver string) ([]string, error) {
	return fn(ctx, hostname, resolver)
}

// Policy maps hostname fragments to address prefixes that must never be
// admitted into the resolved set when resolving a matching hostname. The
// historical use case are the well-known official address ranges of a
// heavily filtered target, which resolve fine but never carry traffic from
// this deployment's vantage point.
type Policy map[string][]string

// Excluded returns true if the policy bars the specified address for the
// specified hostname.
func (p Policy) Excluded(hostname, addr string) bool {
	for fragment, prefixes := range p {
		if !strings.Contains(hostname, fragment) {
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(addr, prefix) {
				return true
			}
		}
	}
	return false
}

// Stage fans a name-resolution query out to many resolvers concurrently and
// merges their answers into one deduplicated address set.
type Stage struct {
	lookuper    Lookuper
	policy      Policy
	parallelism int
}

// StageOption can be passed to New when creating new [Stage] objects.
type StageOption func(*Stage)

// New returns a new resolution [Stage] using the specified lookup backend,
// with at most 200 concurrent queries and no exclusion policy. Configurable
// via [WithPolicy] and [WithParallelism].
func New(lookuper Lookuper, options ...StageOption) *Stage {
	s := &Stage{
		lookuper:    lookuper,
		parallelism: 200,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// WithPolicy sets the address exclusion policy.
func WithPolicy(policy Policy) StageOption {
	return func(s *Stage) {
		s.policy = policy
	}
}

// WithParallelism sets the maximum number of concurrent resolver queries.
func WithParallelism(limit int) StageOption {
	return func(s *Stage) {
		s.parallelism = limit
	}
}

// Resolve queries every specified resolver for the hostname and returns the
// distinct admitted answer addresses, in first-seen order. A resolver whose
// query fails contributes nothing and is skipped without retry; addresses
// barred by the exclusion policy are never admitted.
func (s *Stage) Resolve(ctx context.Context, hostname string, resolvers []string) []string {
	pool := taskpool.New(s.parallelism)
	seen := map[string]struct{}{}
	var addrs []string
	for _, resolver := range resolvers {
		resolver := resolver
		pool.Go(func() {
			answers, err := s.lookuper.Lookup(ctx, hostname, resolver)
			if err != nil {
				log.Debugf("resolve: skipping resolver %s: %v", resolver, err)
				return
			}
			pool.Guard(func() {
				for _, addr := range answers {
					if s.policy.Excluded(hostname, addr) {
						continue
					}
					if _, ok := seen[addr]; ok {
						continue
					}
					seen[addr] = struct{}{}
					addrs = append(addrs, addr)
				}
			})
		})
	}
	pool.StopWait()
	return addrs
}
