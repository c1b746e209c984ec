// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"time"

	"github.com/netgrail/findmeip/latency"
	"github.com/netgrail/findmeip/pipeline"
	"github.com/netgrail/findmeip/resolve"
	"github.com/netgrail/findmeip/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Fake stage backends for wiring up deterministic pipelines.

type harvesterFunc func(ctx context.Context, regions []string) []string

func (fn harvesterFunc) Harvest(ctx context.Context, regions []string) []string {
	return fn(ctx, regions)
}

type checkerFunc func(ctx context.Context, addrs []string, hostname string) map[string]struct{}

func (fn checkerFunc) Validate(ctx context.Context, addrs []string, hostname string) map[string]struct{} {
	return fn(ctx, addrs, hostname)
}

var _ = Describe("discovery pipeline", func() {

	It("runs harvest, resolve, probe, and check end to end", NodeTimeout(10*time.Second), func(ctx context.Context) {
		// Two resolvers with overlapping answers; the slower of the two
		// surviving addresses is the only reachable one, so it must win
		// despite its latency handicap.
		harvester := harvesterFunc(func(_ context.Context, regions []string) []string {
			Expect(regions).To(Equal([]string{"kr"}))
			return []string{"R1", "R2"}
		})
		resolver := resolve.New(resolve.LookuperFunc(
			func(_ context.Context, hostname, resolver string) ([]string, error) {
				Expect(hostname).To(Equal("example.com"))
				if resolver == "R1" {
					return []string{"1.1.1.1"}, nil
				}
				return []string{"1.1.1.1", "2.2.2.2"}, nil
			}))
		prober := latency.New(latency.ProberFunc(
			func(_ context.Context, addr string) (types.LatencyRecord, error) {
				if addr == "1.1.1.1" {
					return types.LatencyRecord{Address: addr, Loss: 0, RTTMillis: 50}, nil
				}
				return types.LatencyRecord{Address: addr, Loss: 0, RTTMillis: 20}, nil
			}))
		checker := checkerFunc(func(_ context.Context, addrs []string, hostname string) map[string]struct{} {
			Expect(hostname).To(Equal("example.com"))
			Expect(addrs).To(Equal([]string{"2.2.2.2", "1.1.1.1"}), "candidates must arrive in latency order")
			return map[string]struct{}{"1.1.1.1": {}}
		})

		cfg := pipeline.Default()
		cfg.Hostname = "example.com"
		p := pipeline.New(cfg,
			pipeline.WithHarvester(harvester),
			pipeline.WithResolver(resolver),
			pipeline.WithProber(prober),
			pipeline.WithChecker(checker))
		report := p.Run(ctx, []string{"kr"})

		Expect(report.Ranked).To(HaveExactElements(
			types.Candidate{Address: "2.2.2.2", RTTMillis: 20},
			types.Candidate{Address: "1.1.1.1", RTTMillis: 50},
		))
		Expect(report.Usable()).To(HaveExactElements(
			types.Candidate{Address: "1.1.1.1", RTTMillis: 50, Quality: types.Reachable},
		))
		Expect(report.Join("|")).To(Equal("1.1.1.1"))

		status := p.Status().Snapshot()
		Expect(status.Stage).To(Equal(pipeline.StageDone))
		Expect(status.Resolvers).To(Equal(2))
		Expect(status.Addresses).To(Equal(2))
		Expect(status.Candidates).To(Equal(2))
		Expect(status.Reachable).To(Equal(1))
	})

	It("flows empty collections forward without erroring", NodeTimeout(10*time.Second), func(ctx context.Context) {
		harvester := harvesterFunc(func(context.Context, []string) []string { return nil })
		resolver := resolve.New(resolve.LookuperFunc(
			func(context.Context, string, string) ([]string, error) {
				panic("must not resolve without resolvers")
			}))
		prober := latency.New(latency.ProberFunc(
			func(context.Context, string) (types.LatencyRecord, error) {
				panic("must not probe without addresses")
			}))
		checker := checkerFunc(func(_ context.Context, addrs []string, _ string) map[string]struct{} {
			Expect(addrs).To(BeEmpty())
			return map[string]struct{}{}
		})

		p := pipeline.New(pipeline.Default(),
			pipeline.WithHarvester(harvester),
			pipeline.WithResolver(resolver),
			pipeline.WithProber(prober),
			pipeline.WithChecker(checker))
		report := p.Run(ctx, nil)

		Expect(report.Ranked).To(BeEmpty())
		Expect(report.Usable()).To(BeEmpty())
		Expect(report.Join("|")).To(BeEmpty())
	})

})
