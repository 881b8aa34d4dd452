package dnsbl

import (
	"context"
	"net"
	"strings"
)

// DefaultBlocklists is used by checkers that don't configure an explicit
// list of zones. The choice of providers is operational, not semantic; any
// RFC 5782 conforming zone works.
var DefaultBlocklists = []string{
	"zen.spamhaus.org",
	"dnsbl.sorbs.net",
}

// Blocklist answers are expected in 127.0.0.0/8. Anything else is likely a
// hijacking resolver and must not be trusted as a block signal.
var blockedRange = &net.IPNet{IP: net.IP{127, 0, 0, 0}, Mask: net.CIDRMask(8, 32)}

// Checker determines whether IP addresses are listed on a set of DNS
// blocklists. Zones are queried in order and the first one that lists an
// address wins; the remaining zones are not queried.
type Checker struct {
	blocklists []string
	resolver   Resolver
}

// CheckerOptions contain settings for a blocklist checker.
type CheckerOptions struct {
	// Blocklist zones in priority order. A nil slice selects
	// DefaultBlocklists while an empty one disables all checks.
	Blocklists []string

	// Resolver used for the lookups, the system resolver if nil.
	Resolver Resolver
}

// StatusResult is the outcome of checking one IP address.
type StatusResult struct {
	// True if a blocklist returned a 127.0.0.0/8 answer for the address.
	Listed bool

	// Zone of the blocklist that listed the address, empty otherwise.
	Blocklist string
}

// NewChecker returns a new instance of a blocklist checker.
func NewChecker(opt CheckerOptions) *Checker {
	c := &Checker{
		blocklists: opt.Blocklists,
		resolver:   opt.Resolver,
	}
	if c.blocklists == nil {
		c.blocklists = DefaultBlocklists
	}
	if c.resolver == nil {
		c.resolver = net.DefaultResolver
	}
	return c
}

// Status checks the given address against the configured blocklists and
// reports the first zone that lists it. A zone that can't be queried, or that
// answers NXDOMAIN, or that answers with addresses outside 127.0.0.0/8 has no
// opinion and the next zone is tried. An error is only returned for malformed
// input; provider failures never surface here.
func (c *Checker) Status(ctx context.Context, ip net.IP) (StatusResult, error) {
	name, err := ReverseAddr(ip)
	if err != nil {
		return StatusResult{}, err
	}
	for _, zone := range c.blocklists {
		qname := name + zone
		log := logger(zone, qname)
		addrs, err := c.resolver.LookupHost(ctx, qname)
		if err != nil {
			if dnsErr, ok := err.(*net.DNSError); ok && dnsErr.IsNotFound {
				log.Debug("not listed")
			} else {
				log.WithError(err).Debug("lookup failed, skipping zone")
			}
			continue
		}
		for _, addr := range addrs {
			if blockedRange.Contains(net.ParseIP(addr)) {
				log.WithField("answer", addr).Debug("listed")
				return StatusResult{Listed: true, Blocklist: zone}, nil
			}
		}
		log.Debug("answer outside 127.0.0.0/8, ignoring")
	}
	return StatusResult{}, nil
}

// IsBlocked reports whether any of the configured blocklists lists the
// address.
func (c *Checker) IsBlocked(ctx context.Context, ip net.IP) (bool, error) {
	status, err := c.Status(ctx, ip)
	return status.Listed, err
}

func (c *Checker) String() string {
	return "DNSBL(" + strings.Join(c.blocklists, ",") + ")"
}
