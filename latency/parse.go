// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package latency

import (
	"strconv"
	"strings"

	"github.com/netgrail/findmeip/types"
)

// parseSummary pulls the packet-loss percentage and the average round-trip
// time out of the trailing summary of a ping tool run, such as
//
//	--- 8.8.8.8 ping statistics ---
//	5 packets transmitted, 5 received, 0% packet loss, time 4005ms
//	rtt min/avg/max/mdev = 10.093/12.310/15.033/1.821 ms
//
// The layout is nominally "second-to-last line carries the loss, last line
// the timing quad", but as this is another program's human-oriented output
// the lines are located by their markers instead of their position. A
// summary from which either value cannot be extracted yields ok == false;
// it never panics on malformed input.
func parseSummary(out string) (rec types.LatencyRecord, ok bool) {
	lossOK, rttOK := false, false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if loss, found := parseLoss(line); found {
			rec.Loss = loss
			lossOK = true
			continue
		}
		if rtt, found := parseRoundTrip(line); found {
			rec.RTTMillis = rtt
			rttOK = true
		}
	}
	return rec, lossOK && rttOK
}

// parseLoss extracts the loss fraction from a statistics line of the form
// "5 packets transmitted, 5 received, 0% packet loss, time 4005ms".
func parseLoss(line string) (float64, bool) {
	if !strings.Contains(line, "packet loss") {
		return 0, false
	}
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		percent, found := strings.CutSuffix(field, "% packet loss")
		if !found {
			continue
		}
		loss, err := strconv.ParseFloat(percent, 64)
		if err != nil {
			return 0, false
		}
		return loss / 100.0, true
	}
	return 0, false
}

// parseRoundTrip extracts the avg value (the second field) from a timing
// line of the form "rtt min/avg/max/mdev = 10.093/12.310/15.033/1.821 ms";
// BSD-flavored pings say "round-trip min/avg/max" instead and may omit the
// mdev field.
func parseRoundTrip(line string) (float64, bool) {
	if !strings.HasPrefix(line, "rtt ") && !strings.HasPrefix(line, "round-trip ") {
		return 0, false
	}
	_, quad, found := strings.Cut(line, "=")
	if !found {
		return 0, false
	}
	quad = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(quad), "ms"))
	fields := strings.Split(quad, "/")
	if len(fields) < 3 {
		return 0, false
	}
	avg, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return 0, false
	}
	return avg, true
}
