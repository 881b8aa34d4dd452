package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type config struct {
	Blocklists []string
	Resolver   resolver
}

type resolver struct {
	Address  string
	Protocol string
}

// loadConfig reads a config file and returns the decoded structure.
func loadConfig(name string) (config, error) {
	var c config
	_, err := toml.DecodeFile(name, &c)
	return c, errors.Wrapf(err, "failed to load config '%s'", name)
}
