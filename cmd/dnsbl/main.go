package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/mfiedler/dnsbl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	blocklists []string
	useSyslog  bool
	debug      bool
}

func main() {
	var opt options
	cmd := &cobra.Command{
		Use:   "dnsbl [flags] IP...",
		Short: "Check IP addresses against DNS blocklists",
		Long: `Check IP addresses against DNS blocklists.

Each address is checked against the configured blocklist zones
in order, stopping at the first zone that lists it. Exits with
status 1 if any address was listed.
`,
		Example: `  dnsbl 127.0.0.2
  dnsbl -b bl.spamcop.net -b zen.spamhaus.org 203.0.113.7
  dnsbl -c config.toml 2001:db8::1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt, args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&opt.configFile, "config", "c", "", "TOML config file")
	cmd.Flags().StringArrayVarP(&opt.blocklists, "blocklist", "b", nil, "blocklist zone, can be repeated, overrides the config file")
	cmd.Flags().BoolVar(&opt.useSyslog, "syslog", false, "send log output to syslog")
	cmd.Flags().BoolVar(&opt.debug, "debug", false, "enable debug logging")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opt options, args []string) error {
	if opt.debug {
		dnsbl.Log.SetLevel(logrus.DebugLevel)
	}
	if opt.useSyslog {
		if err := logToSyslog(); err != nil {
			return err
		}
	}

	var cfg config
	if opt.configFile != "" {
		var err error
		cfg, err = loadConfig(opt.configFile)
		if err != nil {
			return err
		}
	}
	blocklists := cfg.Blocklists
	if len(opt.blocklists) > 0 {
		blocklists = opt.blocklists
	}

	// Use the system resolver unless the config names an upstream server
	var resolver dnsbl.Resolver
	if cfg.Resolver.Address != "" {
		protocol := cfg.Resolver.Protocol
		if protocol == "" {
			protocol = "udp"
		}
		switch protocol {
		case "udp", "tcp":
			resolver = dnsbl.NewDNSClient(cfg.Resolver.Address, protocol)
		default:
			return fmt.Errorf("unsupported resolver protocol '%s'", protocol)
		}
	}

	checker := dnsbl.NewChecker(dnsbl.CheckerOptions{
		Blocklists: blocklists,
		Resolver:   resolver,
	})

	var listed bool
	for _, arg := range args {
		ip := net.ParseIP(arg)
		if ip == nil {
			return fmt.Errorf("invalid IP address '%s'", arg)
		}
		status, err := checker.Status(context.Background(), ip)
		if err != nil {
			return err
		}
		if status.Listed {
			listed = true
			fmt.Printf("%s: listed by %s\n", arg, status.Blocklist)
		} else {
			fmt.Printf("%s: not listed\n", arg)
		}
	}
	if listed {
		os.Exit(1)
	}
	return nil
}
