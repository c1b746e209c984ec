// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

var (
	configPath      *string
	hostname        *string
	regionsFile     *string
	direct          *bool
	icmp            *bool
	unprivileged    *bool
	pingCount       *uint
	workerNumber    *uint
	spinnerInterval *time.Duration
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:   "findmeip [flags] [region...]",
		Short: "findmeip discovers low-latency, TLS-reachable addresses of a service via public DNS resolvers",
		Long: `findmeip asks the public DNS resolvers of one or more regions what they
think a service's hostname resolves to, ranks the distinct answers by ping
latency, and keeps only those addresses that complete a TLS handshake for
the hostname. Without region arguments a single region is chosen at random
from the built-in catalog; the special region "all" queries every
cataloged region.`,
		Version: "0.9",
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *pingCount < 1 || *pingCount > 20 {
				return fmt.Errorf("--pings out of range [1..20]")
			}
			if *workerNumber > 1000 {
				return fmt.Errorf("--workers out of range [0..1000]")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debugf("debug logging enabled")
			}
			return FindAndReport(context.Background(), args)
		},
	}
	// Sets up the flags.
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	configPath = rootCmd.PersistentFlags().String(
		"config", "", "yaml configuration file overlaying the built-in defaults")
	hostname = rootCmd.PersistentFlags().String(
		"hostname", "", "target service hostname (overrides the configuration)")
	regionsFile = rootCmd.PersistentFlags().String(
		"regions-file", "", "region catalog file, one region code per line")
	direct = rootCmd.PersistentFlags().Bool(
		"direct", false, "query resolvers natively over DNS instead of running nslookup")
	icmp = rootCmd.PersistentFlags().Bool(
		"icmp", false, "probe latency natively over ICMP instead of running ping")
	unprivileged = rootCmd.PersistentFlags().Bool(
		"unprivileged", false, "with --icmp: use unprivileged UDP-based pings")
	pingCount = rootCmd.PersistentFlags().Uint(
		"pings", 5, "number of echo requests per latency probe")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", 0, "cap on concurrent resolution/probe/handshake tasks (0: configuration default)")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	return
}
