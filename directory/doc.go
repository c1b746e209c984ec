/*
Package directory implements the resolver-harvesting stage: it asks an
external resolver-directory HTTP service for the public DNS resolvers of a
set of regions, fanning out one request per region under a bounded worker
pool.

The directory is a shared public service, so on top of the per-stage
parallelism cap all requests pass through a token-bucket rate limiter.

A region whose request fails, for whatever reason, is a soft failure: its
contribution is silently dropped and harvesting continues with the remaining
regions.
*/
package directory
