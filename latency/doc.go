/*
Package latency implements the latency-probing stage: measure packet loss
and average round-trip time towards every distinct resolved address, throw
away anything with even a single lost echo, and rank the survivors
ascending by round-trip time. This ranking is the canonical preference
order for everything downstream, including the final report.

Two interchangeable probe backends exist: [ExecProber] scrapes the summary
of the classic ping tool, while [ICMPProber] pings in pure Go, leveraging
the incredible Go modules [go-ping/ping] and [VividCortex/ewma].

Probing is all-or-nothing per address: an address whose probe run fails
produces no record at all and is simply absent from the stage output, not
present with some made-up failure value.

[go-ping/ping]: https://github.com/go-ping/ping
[VividCortex/ewma]: https://github.com/VividCortex/ewma
*/
package latency
