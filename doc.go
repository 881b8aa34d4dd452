/*
Package dnsbl implements DNS-based blocklist (DNSBL) lookups as described in
RFC 5782. Given an IP address, a Checker reverses its octets (IPv4) or nibbles
(IPv6), appends each configured blocklist zone and performs a standard address
lookup on the resulting name. A response in the 127.0.0.0/8 range marks the
address as listed by that zone; NXDOMAIN or any other lookup failure means the
zone has no opinion and the next one is tried.

Checks are stateless and sequential. The first zone that lists an address wins
and no further zones are queried. Lookups go through a Resolver which defaults
to the system resolver but can be replaced, for example with a DNSClient that
queries one specific upstream server, or with a stub in tests.

The convert sub-package holds the value-coercion helpers used by callers of
this library to normalize loosely-typed runtime values; it is independent of
the checker itself.
*/
package dnsbl
