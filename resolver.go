package dnsbl

import (
	"context"
	"net"
)

// Resolver looks up the addresses a hostname resolves to. It is the
// subset of *net.Resolver the checker needs, allowing lookups to be
// redirected to a specific upstream server or stubbed out in tests.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

var _ Resolver = &net.Resolver{}
