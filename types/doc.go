/*
Package types defines findmeip's information model. Which is rather simple
and mainly revolves around [LatencyRecord] and [Candidate], as well as the
reachability [Quality] of addresses.

Please keep in mind that findmeip is inherently concurrent wherever
possible: harvesting resolvers, resolving the target name, probing and
checking lots of addresses are all carried out concurrently. The types here
are therefore plain immutable values that get copied into and out of the
per-stage shared collections under their merge locks.
*/
package types
