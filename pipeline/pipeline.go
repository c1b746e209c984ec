// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"time"

	"github.com/netgrail/findmeip/directory"
	"github.com/netgrail/findmeip/latency"
	"github.com/netgrail/findmeip/reach"
	"github.com/netgrail/findmeip/resolve"
	"github.com/netgrail/findmeip/types"

	log "github.com/sirupsen/logrus"
)

// Harvester fetches resolver addresses for a set of regions.
type Harvester interface {
	Harvest(ctx context.Context, regions []string) []string
}

// Resolver resolves a hostname against a set of resolvers into a
// deduplicated address set.
type Resolver interface {
	Resolve(ctx context.Context, hostname string, resolvers []string) []string
}

// Prober measures latency towards a set of addresses.
type Prober interface {
	Probe(ctx context.Context, addrs []string) []types.LatencyRecord
}

// Checker validates reachability of a set of addresses for a hostname.
type Checker interface {
	Validate(ctx context.Context, addrs []string, hostname string) map[string]struct{}
}

// Pipeline wires the four discovery-and-validation stages together and
// runs them strictly one after the other; all the concurrency lives inside
// the individual stages.
type Pipeline struct {
	cfg       Config
	status    Status
	harvester Harvester
	resolver  Resolver
	prober    Prober
	checker   Checker
}

// Option can be passed to New when creating new [Pipeline] objects.
type Option func(*Pipeline)

// New returns a new [Pipeline] for the specified configuration. Unless
// replaced via the With* options, the stages default to the directory
// harvester, the nslookup-based resolver, the ping-tool-based prober, and
// the TLS handshake checker, all parameterized from the configuration.
func New(cfg Config, options ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg}
	for _, opt := range options {
		opt(p)
	}
	if p.harvester == nil {
		p.harvester = directory.New(
			directory.WithURLTemplate(cfg.DirectoryURL),
			directory.WithParallelism(cfg.HarvestWorkers))
	}
	if p.resolver == nil {
		p.resolver = resolve.New(resolve.NewExecLookuper(),
			resolve.WithPolicy(resolve.Policy(cfg.Exclusions)),
			resolve.WithParallelism(cfg.ResolveWorkers))
	}
	if p.prober == nil {
		p.prober = latency.New(latency.NewExecProber(cfg.PingCount),
			latency.WithParallelism(cfg.ProbeWorkers))
	}
	if p.checker == nil {
		p.checker = reach.New(
			reach.WithTimeout(time.Duration(cfg.ConnectTimeout)),
			reach.WithParallelism(cfg.CheckWorkers))
	}
	p.status.enter(StageIdle)
	return p
}

// WithHarvester replaces the resolver-harvesting stage.
func WithHarvester(h Harvester) Option {
	return func(p *Pipeline) { p.harvester = h }
}

// WithResolver replaces the name-resolution stage.
func WithResolver(r Resolver) Option {
	return func(p *Pipeline) { p.resolver = r }
}

// WithProber replaces the latency-probing stage.
func WithProber(pr Prober) Option {
	return func(p *Pipeline) { p.prober = pr }
}

// WithChecker replaces the reachability-checking stage.
func WithChecker(c Checker) Option {
	return func(p *Pipeline) { p.checker = c }
}

// Status returns the pipeline's live progress holder, safe to poll from a
// rendering goroutine while Run is underway.
func (p *Pipeline) Status() *Status {
	return &p.status
}

// Run executes the four stages for the specified regions and returns the
// final report. Empty intermediate results flow forward as empty inputs;
// they end in an empty report, never in an error. There are no fatal
// errors inside the pipeline: unreachable directories, broken resolvers,
// failed probes, and refused handshakes all merely shrink the result.
func (p *Pipeline) Run(ctx context.Context, regions []string) *Report {
	p.status.enter(StageHarvesting)
	resolvers := p.harvester.Harvest(ctx, regions)
	p.status.update(func(s *Status) { s.resolvers = len(resolvers) })
	log.Infof("harvested %d resolver(s) from %d region(s)", len(resolvers), len(regions))

	p.status.enter(StageResolving)
	addrs := p.resolver.Resolve(ctx, p.cfg.Hostname, resolvers)
	p.status.update(func(s *Status) { s.addresses = len(addrs) })
	log.Infof("resolved %q into %d distinct address(es)", p.cfg.Hostname, len(addrs))

	p.status.enter(StageProbing)
	records := p.prober.Probe(ctx, addrs)
	ranked := latency.Rank(records)
	p.status.update(func(s *Status) { s.candidates = len(ranked) })
	log.Infof("%d of %d address(es) answered all probes without loss", len(ranked), len(addrs))

	p.status.enter(StageChecking)
	candidates := make([]string, 0, len(ranked))
	for _, candidate := range ranked {
		candidates = append(candidates, candidate.Address)
	}
	reachable := p.checker.Validate(ctx, candidates, p.cfg.Hostname)
	p.status.update(func(s *Status) { s.reachable = len(reachable) })
	log.Infof("%d of %d candidate(s) completed a TLS handshake for %q",
		len(reachable), len(ranked), p.cfg.Hostname)

	p.status.enter(StageDone)
	return &Report{
		Ranked:    ranked,
		Reachable: reachable,
	}
}
