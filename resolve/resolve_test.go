// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
)

var _ = Describe("name resolution stage", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("deduplicates answers across resolvers", NodeTimeout(10*time.Second), func(ctx context.Context) {
		lookuper := LookuperFunc(func(_ context.Context, _, resolver string) ([]string, error) {
			switch resolver {
			case "r1":
				return []string{"1.1.1.1"}, nil
			case "r2":
				return []string{"1.1.1.1", "2.2.2.2"}, nil
			}
			return nil, errors.New("no such resolver")
		})
		stage := New(lookuper)
		Expect(stage.Resolve(ctx, "example.com", []string{"r1", "r2"})).
			To(ConsistOf("1.1.1.1", "2.2.2.2"))
	})

	It("never admits addresses barred by the exclusion policy", NodeTimeout(10*time.Second), func(ctx context.Context) {
		lookuper := LookuperFunc(func(context.Context, string, string) ([]string, error) {
			return []string{"74.1.2.3", "8.8.8.8", "173.4.5.6"}, nil
		})
		stage := New(lookuper, WithPolicy(Policy{"google.com": {"74.", "173."}}))
		Expect(stage.Resolve(ctx, "google.com", []string{"r1"})).To(Equal([]string{"8.8.8.8"}))
	})

	It("leaves other hostnames untouched by the policy", NodeTimeout(10*time.Second), func(ctx context.Context) {
		lookuper := LookuperFunc(func(context.Context, string, string) ([]string, error) {
			return []string{"74.1.2.3"}, nil
		})
		stage := New(lookuper, WithPolicy(Policy{"google.com": {"74.", "173."}}))
		Expect(stage.Resolve(ctx, "example.org", []string{"r1"})).To(Equal([]string{"74.1.2.3"}))
	})

	It("skips erroring resolvers and keeps going", NodeTimeout(10*time.Second), func(ctx context.Context) {
		lookuper := LookuperFunc(func(_ context.Context, _, resolver string) ([]string, error) {
			if resolver == "broken" {
				return nil, errors.New("process failure")
			}
			return []string{"3.3.3.3"}, nil
		})
		stage := New(lookuper)
		Expect(stage.Resolve(ctx, "example.com", []string{"broken", "ok"})).
			To(Equal([]string{"3.3.3.3"}))
	})

	It("resolves an empty resolver list into an empty set", NodeTimeout(10*time.Second), func(ctx context.Context) {
		stage := New(LookuperFunc(func(context.Context, string, string) ([]string, error) {
			Fail("lookuper must not be consulted")
			return nil, nil
		}))
		Expect(stage.Resolve(ctx, "example.com", nil)).To(BeEmpty())
	})

})
