package dnsbl_test

import (
	"context"
	"fmt"
	"net"

	"github.com/mfiedler/dnsbl"
)

func Example_checker() {
	// Check an address against the default blocklists using the system
	// resolver
	checker := dnsbl.NewChecker(dnsbl.CheckerOptions{})

	status, _ := checker.Status(context.Background(), net.ParseIP("127.0.0.2"))
	if status.Listed {
		fmt.Println("listed by", status.Blocklist)
	}
}

func Example_customResolver() {
	// Send the blocklist queries to a specific upstream server rather
	// than through the system resolver
	resolver := dnsbl.NewDNSClient("8.8.8.8:53", "udp")
	checker := dnsbl.NewChecker(dnsbl.CheckerOptions{
		Blocklists: []string{"zen.spamhaus.org"},
		Resolver:   resolver,
	})

	blocked, _ := checker.IsBlocked(context.Background(), net.ParseIP("203.0.113.7"))
	fmt.Println(blocked)
}
