// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package reach

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"time"

	"github.com/netgrail/findmeip/taskpool"

	log "github.com/sirupsen/logrus"
)

// Checker validates candidate addresses by completing a TLS handshake
// against them while presenting the target hostname as the SNI value, so
// the peer can select the correct certificate even though we dial it by
// raw address. No application-layer payload is ever sent.
type Checker struct {
	port        string
	timeout     time.Duration
	rootCAs     *x509.CertPool // nil means the default trust store
	parallelism int
}

// CheckerOption can be passed to New when creating new [Checker] objects.
type CheckerOption func(*Checker)

// New returns a new [Checker] dialing port 443 with a 2s timeout and the
// default certificate trust store, running at most 200 concurrent
// handshakes. The checker can be configured during creation using several
// options:
//   - [WithPort]
//   - [WithTimeout]
//   - [WithRootCAs]
//   - [WithParallelism]
func New(options ...CheckerOption) *Checker {
	c := &Checker{
		port:        "443",
		timeout:     2 * time.Second,
		parallelism: 200,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// WithPort sets the TCP port to dial.
func WithPort(port string) CheckerOption {
	return func(c *Checker) {
		c.port = port
	}
}

// WithTimeout sets the connect-and-handshake timeout.
func WithTimeout(timeout time.Duration) CheckerOption {
	return func(c *Checker) {
		c.timeout = timeout
	}
}

// WithRootCAs sets an explicit certificate pool instead of the default
// trust store.
func WithRootCAs(pool *x509.CertPool) CheckerOption {
	return func(c *Checker) {
		c.rootCAs = pool
	}
}

// WithParallelism sets the maximum number of concurrent handshakes.
func WithParallelism(limit int) CheckerOption {
	return func(c *Checker) {
		c.parallelism = limit
	}
}

// Validate attempts a TLS handshake for the target hostname against every
// specified address and returns the set of addresses whose handshake
// succeeded. Certificate-validation failures and timeouts are normal,
// expected outcomes; such addresses are simply not part of the returned
// set. The set carries no ordering, so callers wanting the preference
// order must intersect it with their ranked candidate list.
func (c *Checker) Validate(ctx context.Context, addrs []string, hostname string) map[string]struct{} {
	pool := taskpool.New(c.parallelism)
	reachable := map[string]struct{}{}
	for _, addr := range addrs {
		addr := addr
		pool.Go(func() {
			if err := c.handshake(ctx, addr, hostname); err != nil {
				log.Debugf("reach: %s:%s is unreachable for %q: %v", addr, c.port, hostname, err)
				return
			}
			pool.Guard(func() { reachable[addr] = struct{}{} })
		})
	}
	pool.StopWait()
	return reachable
}

// handshake dials the address and completes a TLS handshake with SNI set
// to the target hostname, within the checker's timeout.
func (c *Checker) handshake(ctx context.Context, addr, hostname string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(addr, c.port))
	if err != nil {
		return err
	}
	tlsconn := tls.Client(conn, &tls.Config{
		ServerName: hostname,
		RootCAs:    c.rootCAs,
	})
	if err := tlsconn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return err
	}
	return tlsconn.Close()
}
