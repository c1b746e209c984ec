/*
Package reach implements the reachability-validation stage: a candidate
address counts as reachable if, and only if, a TLS handshake on the HTTPS
port completes while presenting the target hostname via SNI. This weeds
out addresses that answer pings just fine but where the actual service is
filtered, intercepted, or simply not the one we are looking for.

Handshake failure is not an error condition of the stage; it is the very
signal the stage exists to collect.
*/
package reach
