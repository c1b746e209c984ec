// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"os/exec"
)

// ExecLookuper resolves hostnames by invoking the nslookup tool with an
// explicit resolver address and scraping its textual transcript.
type ExecLookuper struct {
	tool string
}

// NewExecLookuper returns a [Lookuper] backed by the nslookup tool.
func NewExecLookuper() *ExecLookuper {
	return &ExecLookuper{tool: "nslookup"}
}

// Lookup runs "nslookup <hostname> <resolver>" and returns the answer
// addresses from its transcript. A non-zero tool exit is an error; a clean
// transcript without answer lines yields an empty, non-error result.
func (l *ExecLookuper) Lookup(ctx context.Context, hostname, resolver string) ([]string, error) {
	out, err := exec.CommandContext(ctx, l.tool, hostname, resolver).Output()
	if err != nil {
		return nil, err
	}
	return parseTranscript(string(out)), nil
}
