// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package latency

import (
	"context"
	"errors"
	"time"

	"github.com/netgrail/findmeip/types"

	"github.com/VividCortex/ewma"
	"github.com/go-ping/ping"
)

// ICMPProber measures latency in pure Go by sending ICMP (or, in
// unprivileged mode, UDP) echo requests, so no external ping tool and no
// output scraping is involved.
type ICMPProber struct {
	count        int
	interval     time.Duration
	unprivileged bool
}

// ICMPProberOption can be passed to NewICMPProber when creating new
// [ICMPProber] objects.
type ICMPProberOption func(*ICMPProber)

// NewICMPProber returns a [Prober] sending the specified number of echo
// requests per probe, at intervals of 1s unless changed via [WithInterval].
// [AsUnprivileged] switches from raw ICMP to UDP-based pings.
func NewICMPProber(count int, options ...ICMPProberOption) *ICMPProber {
	if count < 1 {
		count = 1
	}
	p := &ICMPProber{
		count:    count,
		interval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// WithInterval sets the interval between consecutive echo requests.
func WithInterval(interval time.Duration) ICMPProberOption {
	return func(p *ICMPProber) {
		p.interval = interval
	}
}

// AsUnprivileged tells the prober to carry out unprivileged pings using UDP
// instead of ICMP packets.
func AsUnprivileged() ICMPProberOption {
	return func(p *ICMPProber) {
		p.unprivileged = true
	}
}

// Probe pings the specified address and reports its loss fraction and
// smoothed average round-trip time. The per-reply round-trip times are
// folded through an exponentially weighted moving average so a single
// outlier reply doesn't dominate the record of an otherwise quick address.
func (p *ICMPProber) Probe(ctx context.Context, addr string) (types.LatencyRecord, error) {
	select {
	case <-ctx.Done():
		return types.LatencyRecord{}, ctx.Err()
	default:
	}

	pinger, err := ping.NewPinger(addr)
	if err != nil {
		return types.LatencyRecord{}, err
	}
	pinger.SetPrivileged(!p.unprivileged)
	pinger.Count = p.count
	pinger.Interval = p.interval
	// Always limit waiting for the last echo to get reflected (or not)!
	pinger.Timeout = time.Duration(int64(p.interval) * int64(p.count+2))

	avg := ewma.NewMovingAverage()
	pinger.OnRecv = func(pkt *ping.Packet) {
		avg.Add(float64(pkt.Rtt) / float64(time.Millisecond))
	}

	// While the ping is running we need to monitor the context in case it
	// becomes "done" by either getting cancelled or reaching its deadline.
	// The done channel here works "the other way round" in that it
	// terminates the concurrent context monitoring.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()
	if err := pinger.Run(); err != nil {
		return types.LatencyRecord{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.LatencyRecord{}, err
	}

	stats := pinger.Statistics()
	if stats.PacketsSent == 0 {
		return types.LatencyRecord{}, errors.New("no echo requests were sent")
	}
	rtt := avg.Value()
	if rtt == 0 {
		rtt = float64(stats.AvgRtt) / float64(time.Millisecond)
	}
	return types.LatencyRecord{
		Address:   addr,
		Loss:      stats.PacketLoss / 100.0,
		RTTMillis: rtt,
	}, nil
}
