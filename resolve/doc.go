/*
Package resolve implements the name-resolution stage: query the target
hostname against each harvested resolver concurrently and merge all answers
into one deduplicated address set.

Two interchangeable lookup backends exist: [ExecLookuper] scrapes the
transcript of the classic nslookup tool, while [DNSLookuper] speaks DNS
natively via [miekg/dns] against the resolver under test. Scraping another
program's human-oriented output is inherently fragile, which is why the
transcript parsing lives in its own little corner with a strict "malformed
means no result" contract.

Resolvers are unreliable external endpoints by definition here, so a
failing or nonsensical resolver is simply skipped; partial success is the
expected common case.

[miekg/dns]: https://github.com/miekg/dns
*/
package resolve
