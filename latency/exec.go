// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package latency

import (
	"context"
	"errors"
	"os/exec"
	"strconv"

	"github.com/netgrail/findmeip/types"
)

// ExecProber measures latency by invoking the ping tool in quiet mode and
// scraping its summary output.
type ExecProber struct {
	tool  string
	count int
}

// NewExecProber returns a [Prober] backed by the ping tool, sending the
// specified number of echo requests per probe.
func NewExecProber(count int) *ExecProber {
	if count < 1 {
		count = 1
	}
	return &ExecProber{tool: "ping", count: count}
}

// Probe runs "ping -c <count> -q <addr>" and returns the parsed summary. A
// non-zero tool exit (total loss makes ping exit non-zero) as well as an
// unrecognizable summary yield an error, and thus no record.
func (p *ExecProber) Probe(ctx context.Context, addr string) (types.LatencyRecord, error) {
	out, err := exec.CommandContext(ctx, p.tool, "-c", strconv.Itoa(p.count), "-q", addr).Output()
	if err != nil {
		return types.LatencyRecord{}, err
	}
	rec, ok := parseSummary(string(out))
	if !ok {
		return types.LatencyRecord{}, errors.New("unrecognizable ping summary")
	}
	rec.Address = addr
	return rec, nil
}
