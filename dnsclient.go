package dnsbl

import (
	"context"
	"fmt"
	"net"

	"github.com/miekg/dns"
)

// DNSClient is a Resolver that sends plain DNS queries to one upstream
// server over UDP or TCP, bypassing the system resolver.
type DNSClient struct {
	endpoint string
	net      string
	client   *dns.Client
}

var _ Resolver = &DNSClient{}

// NewDNSClient returns a new instance of DNSClient. Protocol can be "udp"
// or "tcp".
func NewDNSClient(endpoint, net string) *DNSClient {
	return &DNSClient{
		endpoint: endpoint,
		net:      net,
		client:   &dns.Client{Net: net},
	}
}

// LookupHost queries the upstream server for the A and AAAA records of the
// given name. Errors are shaped like those of *net.Resolver, with NXDOMAIN
// and empty answers reported as *net.DNSError with IsNotFound set.
func (d *DNSClient) LookupHost(ctx context.Context, host string) ([]string, error) {
	var addrs []string
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		q := new(dns.Msg)
		q.SetQuestion(dns.Fqdn(host), qtype)
		Log.Printf("sending query for '%s' to %s/%s", q.Question[0].Name, d.endpoint, d.net)
		a, _, err := d.client.ExchangeContext(ctx, q, d.endpoint)
		if err != nil {
			return nil, &net.DNSError{Err: err.Error(), Name: host, Server: d.endpoint}
		}
		switch a.Rcode {
		case dns.RcodeSuccess:
		case dns.RcodeNameError:
			continue
		default:
			return nil, &net.DNSError{
				Err:    fmt.Sprintf("server failure: %s", dns.RcodeToString[a.Rcode]),
				Name:   host,
				Server: d.endpoint,
			}
		}
		for _, rr := range a.Answer {
			switch r := rr.(type) {
			case *dns.A:
				addrs = append(addrs, r.A.String())
			case *dns.AAAA:
				addrs = append(addrs, r.AAAA.String())
			}
		}
	}
	if len(addrs) == 0 {
		return nil, &net.DNSError{
			Err:        "no such host",
			Name:       host,
			Server:     d.endpoint,
			IsNotFound: true,
		}
	}
	return addrs, nil
}

func (d *DNSClient) String() string {
	return fmt.Sprintf("DNS(%s)", d.endpoint)
}
