// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/netgrail/findmeip/pipeline"
)

// renderer renders the live terminal display, based on pipeline progress
// snapshots passed to its Render method.
type renderer struct {
	hostname string
	w        io.Writer
	spinner  *spinner
}

// newRenderer returns a renderer object rendering to the specified
// io.Writer. hostname identifies the target service whose addresses are
// being hunted.
func newRenderer(w io.Writer, hostname string) *renderer {
	sp := newSpinner()
	sp.Start(*spinnerInterval)
	return &renderer{
		hostname: hostname,
		w:        w,
		spinner:  sp,
	}
}

// Stop the renderer's background ticker.
func (r *renderer) Stop() {
	r.spinner.Stop()
}

// Render the given pipeline progress snapshot.
func (r *renderer) Render(status pipeline.StatusSnapshot) {
	lead := r.spinner.Spinner()
	stage := checkingStyle.Styled(status.Stage)
	if status.Stage == pipeline.StageDone {
		lead = ""
		stage = reachableStyle.Styled(status.Stage)
	}
	fmt.Fprintf(r.w, "%shunting addresses of %s: %s\n",
		lead, hostStyle.Styled(r.hostname), stage)
	fmt.Fprintf(r.w, "  resolvers %d · addresses %d · candidates %d · reachable %d\n",
		status.Resolvers, status.Addresses, status.Candidates, status.Reachable)
}

// renderReport prints the final ranked, reachability-filtered report, or a
// clear "nothing found" notice when the usable set came up empty.
func renderReport(report *pipeline.Report) {
	usable := report.Usable()
	if len(usable) == 0 {
		fmt.Println(unreachableStyle.Styled("No available servers found"))
		return
	}
	fmt.Printf("%d IPs ordered by delay time:\n", len(usable))
	for _, candidate := range usable {
		fmt.Fprintf(os.Stdout, "  %s  %s\n",
			reachableStyle.Styled(fmt.Sprintf("%-15s", candidate.Address)),
			fmt.Sprintf("%.1f ms", candidate.RTTMillis))
	}
	fmt.Printf("%d IPs concatenated:\n%s\n", len(usable), report.Join("|"))
}
