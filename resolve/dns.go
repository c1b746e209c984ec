// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// DNSLookuper resolves hostnames by sending DNS A queries directly to the
// resolver under test on port 53, without going through an external tool.
// The pipeline is IPv4-only end to end (the harvesting stage already drops
// IPv6 resolvers), so no AAAA queries are sent.
type DNSLookuper struct {
	client *dns.Client
}

// NewDNSLookuper returns a [Lookuper] speaking DNS natively, giving each
// query the specified timeout.
func NewDNSLookuper(timeout time.Duration) *DNSLookuper {
	return &DNSLookuper{
		client: &dns.Client{Timeout: timeout},
	}
}

// Lookup queries the specified resolver for the hostname's A records.
func (l *DNSLookuper) Lookup(ctx context.Context, hostname, resolver string) ([]string, error) {
	msg := dns.Msg{
		MsgHdr: dns.MsgHdr{Id: dns.Id()},
	}
	msg.SetQuestion(dns.Fqdn(hostname), dns.TypeA)
	r, _, err := l.client.ExchangeContext(ctx, &msg, net.JoinHostPort(resolver, "53"))
	if err != nil {
		return nil, err
	}
	var addrs []string
	for _, rr := range r.Answer {
		if addrRR, ok := rr.(*dns.A); ok {
			addrs = append(addrs, addrRR.A.String())
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("query for %q yields no answers", hostname)
	}
	return addrs, nil
}
