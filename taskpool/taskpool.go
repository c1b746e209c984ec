// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taskpool

import (
	"sync"

	"github.com/gammazero/workerpool"
	log "github.com/sirupsen/logrus"
)

// Runner executes a batch of independent probe tasks with a fixed upper
// bound on the number of tasks running at any instant. Tasks are queued in
// submission order and drained by a fixed-size worker pool, so a submitted
// task is always eventually run; the pool never skips a task just because
// all workers happened to be busy at submission time.
//
// Tasks that need to merge their individual results into a batch-shared
// collection do so inside [Runner.Guard], which serializes on the runner's
// per-batch merge lock. The lock must only be held for the brief merge
// itself, never across the task's blocking I/O.
type Runner struct {
	workers *workerpool.WorkerPool
	mu      sync.Mutex
}

// New returns a Runner executing at most limit tasks concurrently. A limit
// below 1 is taken as 1.
func New(limit int) *Runner {
	if limit < 1 {
		limit = 1
	}
	return &Runner{
		workers: workerpool.New(limit),
	}
}

// Go enqueues a task for execution. Go never blocks and never drops the
// task. A task that panics is contained so that the remaining tasks of the
// batch still run to completion; tasks are expected to handle their own
// recoverable errors.
func (r *Runner) Go(task func()) {
	r.workers.Submit(func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Errorf("taskpool: task panicked: %v", recovered)
			}
		}()
		task()
	})
}

// Guard runs fn while holding the runner's merge lock.
func (r *Runner) Guard(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}

// StopWait waits for all enqueued tasks to finish, and then shuts down the
// pool. No further tasks must be submitted afterwards.
func (r *Runner) StopWait() {
	r.workers.StopWait()
}
