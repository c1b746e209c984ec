// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Yet another (braille) spinner.

package main

import (
	"sync/atomic"
	"time"
)

var spinnerPhases = []string{"⠋ ", "⠙ ", "⠸ ", "⠴ ", "⠦ ", "⠇ "}

// spinner cycles through a fixed phase sequence on a background ticker;
// just enough to signal liveness while the pipeline stages block on their
// I/O, no bells, no frills.
type spinner struct {
	phase uint32
	done  chan struct{}
}

// newSpinner returns a new spinner; later call the Start method to make it
// spinning, and the Stop method to stop it and release background
// resources.
func newSpinner() *spinner {
	return &spinner{
		done: make(chan struct{}),
	}
}

// Spinner returns the spinner string for the current phase.
func (s *spinner) Spinner() string {
	return spinnerPhases[atomic.LoadUint32(&s.phase)%uint32(len(spinnerPhases))]
}

// Start the spinner to spin in steps every specified interval.
func (s *spinner) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				atomic.AddUint32(&s.phase, 1)
			case <-s.done:
				return
			}
		}
	}()
}

// Stop the spinner and release the background resources.
func (s *spinner) Stop() {
	close(s.done)
}
