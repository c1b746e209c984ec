/*
Package pipeline wires findmeip's four stages into one sequential run:
harvest public resolvers per region, resolve the target hostname against
every single one of them, rank the distinct answers by probed latency, and
finally keep only those candidates that complete a TLS handshake for the
target hostname.

Control flow between the stages is strictly sequential; every stage fans
out internally under its own bounded worker pool and hands its completed
output collection immutably to the next stage. Partial failure anywhere is
the expected common case and only ever shrinks the result: the single
user-visible failure mode of a run is an empty report.

The package also owns the run [Config] (including the address exclusion
policy as plain configuration data) and the final [Report] with its
order-preserving intersection of ranked and reachable candidates.
*/
package pipeline
