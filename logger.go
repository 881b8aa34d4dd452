package dnsbl

import (
	"github.com/sirupsen/logrus"
)

// Log is a package-global logger used throughout the library. Configuration can be
// changed directly on this instance or the instance replaced.
var Log = logrus.New()

func logger(zone, qname string) *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"zone":  zone,
		"qname": qname,
	})
}
