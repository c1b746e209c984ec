// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package latency

import (
	"context"
	"errors"
	"time"

	"github.com/netgrail/findmeip/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
)

var _ = Describe("latency probing stage", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("collects records only from successful probes", NodeTimeout(10*time.Second), func(ctx context.Context) {
		prober := ProberFunc(func(_ context.Context, addr string) (types.LatencyRecord, error) {
			if addr == "2.2.2.2" {
				return types.LatencyRecord{}, errors.New("probe process failed")
			}
			return types.LatencyRecord{Address: addr, RTTMillis: 10}, nil
		})
		stage := New(prober, WithParallelism(4))
		records := stage.Probe(ctx, []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"})
		Expect(records).To(ConsistOf(
			types.LatencyRecord{Address: "1.1.1.1", RTTMillis: 10},
			types.LatencyRecord{Address: "3.3.3.3", RTTMillis: 10},
		))
	})

	It("probes nothing without addresses", NodeTimeout(10*time.Second), func(ctx context.Context) {
		stage := New(ProberFunc(func(context.Context, string) (types.LatencyRecord, error) {
			return types.LatencyRecord{}, errors.New("must not be consulted")
		}))
		Expect(stage.Probe(ctx, nil)).To(BeEmpty())
	})

})

var _ = Describe("candidate ranking", func() {

	It("drops every record with nonzero loss", func() {
		candidates := Rank([]types.LatencyRecord{
			{Address: "1.1.1.1", Loss: 0.2, RTTMillis: 5},
			{Address: "2.2.2.2", Loss: 0, RTTMillis: 50},
			{Address: "3.3.3.3", Loss: 1, RTTMillis: 1},
		})
		Expect(candidates).To(HaveLen(1))
		Expect(candidates[0].Address).To(Equal("2.2.2.2"))
	})

	It("sorts ascending by round-trip time", func() {
		candidates := Rank([]types.LatencyRecord{
			{Address: "slow", RTTMillis: 50},
			{Address: "quick", RTTMillis: 20},
			{Address: "middling", RTTMillis: 35},
		})
		Expect(candidates).To(HaveExactElements(
			types.Candidate{Address: "quick", RTTMillis: 20, Quality: types.Unchecked},
			types.Candidate{Address: "middling", RTTMillis: 35, Quality: types.Unchecked},
			types.Candidate{Address: "slow", RTTMillis: 50, Quality: types.Unchecked},
		))
	})

	It("breaks ties by insertion order", func() {
		candidates := Rank([]types.LatencyRecord{
			{Address: "first", RTTMillis: 10},
			{Address: "second", RTTMillis: 10},
			{Address: "third", RTTMillis: 10},
		})
		Expect(candidates).To(HaveExactElements(
			types.Candidate{Address: "first", RTTMillis: 10},
			types.Candidate{Address: "second", RTTMillis: 10},
			types.Candidate{Address: "third", RTTMillis: 10},
		))
	})

	It("ranks an empty record list into an empty candidate list", func() {
		Expect(Rank(nil)).To(BeEmpty())
	})

})
