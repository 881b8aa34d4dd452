package main

import (
	syslog "github.com/RackSec/srslog"

	"github.com/mfiedler/dnsbl"
)

// logToSyslog redirects the library's log output to the local syslog daemon.
func logToSyslog() error {
	w, err := syslog.Dial("", "", syslog.LOG_INFO|syslog.LOG_DAEMON, "dnsbl")
	if err != nil {
		return err
	}
	dnsbl.Log.SetOutput(w)
	return nil
}
