package dnsbl

import (
	"context"
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// startTestServer runs a DNS server on a random local port that lists
// 127.0.0.2 and answers NXDOMAIN for everything else.
func startTestServer(t *testing.T) string {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := dns.NewServeMux()
	mux.HandleFunc("bl.test.", func(w dns.ResponseWriter, q *dns.Msg) {
		a := new(dns.Msg)
		a.SetReply(q)
		if q.Question[0].Qtype == dns.TypeA && q.Question[0].Name == "2.0.0.127.bl.test." {
			rr, err := dns.NewRR("2.0.0.127.bl.test. 300 IN A 127.0.0.2")
			require.NoError(t, err)
			a.Answer = append(a.Answer, rr)
		} else {
			a.SetRcode(q, dns.RcodeNameError)
		}
		_ = w.WriteMsg(a)
	})

	srv := &dns.Server{PacketConn: pc, Handler: mux}
	go func() { _ = srv.ActivateAndServe() }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().String()
}

func TestDNSClientLookup(t *testing.T) {
	d := NewDNSClient(startTestServer(t), "udp")

	addrs, err := d.LookupHost(context.Background(), "2.0.0.127.bl.test")
	require.NoError(t, err)
	require.Equal(t, []string{"127.0.0.2"}, addrs)

	_, err = d.LookupHost(context.Background(), "1.0.0.127.bl.test")
	require.Error(t, err)
	dnsErr, ok := err.(*net.DNSError)
	require.True(t, ok)
	require.True(t, dnsErr.IsNotFound)
}

func TestDNSClientChecker(t *testing.T) {
	d := NewDNSClient(startTestServer(t), "udp")
	c := NewChecker(CheckerOptions{Blocklists: []string{"bl.test"}, Resolver: d})

	blocked, err := c.IsBlocked(context.Background(), net.IP{127, 0, 0, 2})
	require.NoError(t, err)
	require.True(t, blocked)

	blocked, err = c.IsBlocked(context.Background(), net.IP{127, 0, 0, 1})
	require.NoError(t, err)
	require.False(t, blocked)
}
