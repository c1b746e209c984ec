// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/netgrail/findmeip/latency"
	"github.com/netgrail/findmeip/pipeline"
	"github.com/netgrail/findmeip/regions"
	"github.com/netgrail/findmeip/resolve"

	"github.com/gosuri/uilive"
	log "github.com/sirupsen/logrus"
)

// FindAndReport assembles a pipeline from the configuration and the CLI
// flags, runs it for the specified regions (or one randomly chosen region
// when none were given), renders live progress while the stages grind
// away, and finally prints the ranked report of usable addresses.
func FindAndReport(ctx context.Context, regionArgs []string) error {
	cfg := pipeline.Default()
	if *configPath != "" {
		var err error
		if cfg, err = pipeline.Load(*configPath); err != nil {
			return err
		}
	}
	if *hostname != "" {
		cfg.Hostname = *hostname
	}
	cfg.PingCount = int(*pingCount)
	if *workerNumber > 0 {
		cfg.ResolveWorkers = int(*workerNumber)
		cfg.ProbeWorkers = int(*workerNumber)
		cfg.CheckWorkers = int(*workerNumber)
	}

	catalog := regions.All()
	if *regionsFile != "" {
		var err error
		if catalog, err = regions.FromFile(*regionsFile); err != nil {
			return err
		}
	}
	regionCodes := regionArgs
	if len(regionCodes) == 1 && regionCodes[0] == "all" {
		regionCodes = catalog
	}
	if len(regionCodes) == 0 {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		code := regions.PickRandom(rnd, catalog)
		if code == "" {
			return fmt.Errorf("region catalog is empty")
		}
		log.Infof("no regions given, trying randomly chosen region %q", code)
		regionCodes = []string{code}
	}

	// The exec-based tool backends are the stock choice; --direct and
	// --icmp switch the respective stage over to its native Go backend.
	var lookuper resolve.Lookuper = resolve.NewExecLookuper()
	if *direct {
		lookuper = resolve.NewDNSLookuper(time.Duration(cfg.QueryTimeout))
	}
	var prober latency.Prober = latency.NewExecProber(cfg.PingCount)
	if *icmp {
		opts := []latency.ICMPProberOption{}
		if *unprivileged {
			opts = append(opts, latency.AsUnprivileged())
		}
		prober = latency.NewICMPProber(cfg.PingCount, opts...)
	}
	pl := pipeline.New(cfg,
		pipeline.WithResolver(resolve.New(lookuper,
			resolve.WithPolicy(resolve.Policy(cfg.Exclusions)),
			resolve.WithParallelism(cfg.ResolveWorkers))),
		pipeline.WithProber(latency.New(prober,
			latency.WithParallelism(cfg.ProbeWorkers))))

	// Fire off the live progress rendering and only stop it after the run
	// is over and a final status update has made it to the terminal.
	runDone := make(chan struct{})
	renderingDone := make(chan struct{})
	go func() {
		term := uilive.New()
		renderer := newRenderer(term, cfg.Hostname)
		defer func() {
			renderStatus(term, renderer, pl.Status())
			renderer.Stop()
			close(renderingDone)
		}()
		renderStatus(term, renderer, pl.Status())
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				renderStatus(term, renderer, pl.Status())
			case <-runDone:
				return
			}
		}
	}()

	report := pl.Run(ctx, regionCodes)
	close(runDone)
	<-renderingDone

	renderReport(report)
	return nil
}

// renderStatus gets the current pipeline progress and then renders (and
// flushes) it to the terminal.
func renderStatus(term *uilive.Writer, r *renderer, status *pipeline.Status) {
	r.Render(status.Snapshot())
	term.Flush()
}
