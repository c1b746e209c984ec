// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/netgrail/findmeip/taskpool"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultURLTemplate is the resolver-directory endpoint queried per region;
// the single %s verb receives the region code.
const DefaultURLTemplate = "http://public-dns.tk/nameserver/%s.json"

// Harvester fetches public DNS resolver addresses from a resolver-directory
// HTTP service, one request per region. Regions are fetched concurrently,
// and a region whose request fails simply contributes nothing.
type Harvester struct {
	client      *http.Client
	limiter     *rate.Limiter
	template    string
	parallelism int
}

// HarvesterOption can be passed to New when creating new [Harvester]
// objects.
type HarvesterOption func(*Harvester)

// New returns a new [Harvester] talking to the public-dns directory with at
// most 20 concurrent region requests and a polite request rate. The
// harvester can be configured during creation using several options:
//   - [WithURLTemplate]
//   - [WithParallelism]
//   - [WithHTTPClient]
//   - [WithRateLimit]
func New(options ...HarvesterOption) *Harvester {
	h := &Harvester{
		client:      &http.Client{Timeout: 10 * time.Second},
		limiter:     rate.NewLimiter(rate.Every(50*time.Millisecond), 20),
		template:    DefaultURLTemplate,
		parallelism: 20,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

// WithURLTemplate sets the directory endpoint template; it must contain
// exactly one %s verb for the region code.
func WithURLTemplate(template string) HarvesterOption {
	return func(h *Harvester) {
		h.template = template
	}
}

// WithParallelism sets the maximum number of concurrent region requests.
func WithParallelism(limit int) HarvesterOption {
	return func(h *Harvester) {
		h.parallelism = limit
	}
}

// WithHTTPClient sets the HTTP client used for directory requests.
func WithHTTPClient(client *http.Client) HarvesterOption {
	return func(h *Harvester) {
		h.client = client
	}
}

// WithRateLimit sets the request rate limit towards the directory service.
func WithRateLimit(limiter *rate.Limiter) HarvesterOption {
	return func(h *Harvester) {
		h.limiter = limiter
	}
}

// Harvest fetches the resolver addresses listed by the directory for the
// specified regions and returns them in one flat sequence. Duplicates
// across regions are tolerated; they only cause some redundant resolution
// work downstream. Failing regions are skipped without retry.
func (h *Harvester) Harvest(ctx context.Context, regions []string) []string {
	pool := taskpool.New(h.parallelism)
	var servers []string
	for _, region := range regions {
		region := region
		pool.Go(func() {
			addrs, err := h.fetch(ctx, region)
			if err != nil {
				log.Debugf("directory: skipping region %q: %v", region, err)
				return
			}
			log.Debugf("directory: region %q lists %d resolver(s)", region, len(addrs))
			pool.Guard(func() { servers = append(servers, addrs...) })
		})
	}
	pool.StopWait()
	return servers
}

// fetch retrieves and filters the resolver list of a single region. Only
// entries whose "ip" field contains a dot are accepted: the directory also
// lists IPv6 resolvers, which this deliberately crude heuristic excludes.
func (h *Harvester) fetch(ctx context.Context, region string) ([]string, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	url := fmt.Sprintf(h.template, region)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("directory answered %s", resp.Status)
	}
	var entries []struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}
	var addrs []string
	for _, entry := range entries {
		if !strings.Contains(entry.IP, ".") {
			continue
		}
		addrs = append(addrs, entry.IP)
	}
	return addrs, nil
}
