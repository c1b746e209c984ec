/*
Package taskpool implements the bounded fan-out/fan-in primitive used by all
of findmeip's pipeline stages: run a batch of independent, individually
blocking probe tasks with a hard cap on parallelism, and join only after
every single task has terminated.

Usage

	pool := taskpool.New(20)
	for _, region := range regions {
	    region := region
	    pool.Go(func() {
	        servers := fetch(region) // expensive blocking I/O, lock-free
	        pool.Guard(func() { all = append(all, servers...) })
	    })
	}
	pool.StopWait() // join on completion of the whole batch

# Acknowledgements

Under its hood, [Runner] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package taskpool
