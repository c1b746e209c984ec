// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/netgrail/findmeip/directory"

	"gopkg.in/yaml.v3"
)

// Config collects all tunables of a pipeline run. The zero value is not
// usable; start from [Default] and overlay a config file via [Load] or
// individual fields directly.
type Config struct {
	// Hostname is the target service hostname to resolve and validate.
	Hostname string `yaml:"hostname"`
	// DirectoryURL is the resolver-directory endpoint template with one %s
	// verb for the region code.
	DirectoryURL string `yaml:"directory_url"`
	// HarvestWorkers caps concurrent directory requests; the remaining
	// *Workers fields cap the (more numerous and individually lighter)
	// resolution, probing, and handshake tasks.
	HarvestWorkers int `yaml:"harvest_workers"`
	ResolveWorkers int `yaml:"resolve_workers"`
	ProbeWorkers   int `yaml:"probe_workers"`
	CheckWorkers   int `yaml:"check_workers"`
	// PingCount is the number of echo requests per latency probe.
	PingCount int `yaml:"ping_count"`
	// QueryTimeout bounds a single direct DNS query; ConnectTimeout bounds
	// a single TLS connect-and-handshake.
	QueryTimeout   Duration `yaml:"query_timeout"`
	ConnectTimeout Duration `yaml:"connect_timeout"`
	// Exclusions maps hostname fragments to address prefixes that are
	// known to be non-functional from this deployment's vantage point and
	// must never enter the resolved set.
	Exclusions map[string][]string `yaml:"exclusions"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Hostname:       "google.com",
		DirectoryURL:   directory.DefaultURLTemplate,
		HarvestWorkers: 20,
		ResolveWorkers: 200,
		ProbeWorkers:   200,
		CheckWorkers:   200,
		PingCount:      5,
		QueryTimeout:   Duration(5 * time.Second),
		ConnectTimeout: Duration(2 * time.Second),
		Exclusions: map[string][]string{
			"google.com": {"74.", "173."},
		},
	}
}

// Load returns the stock configuration overlaid with the yaml config file
// at the specified path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse configuration: %w", err)
	}
	return cfg, nil
}

// Duration is a [time.Duration] that unmarshals from yaml scalars in
// time.ParseDuration syntax, such as "2s" or "1500ms".
type Duration time.Duration

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	dur, err := time.ParseDuration(text)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
