package dnsbl

import (
	"fmt"
	"net"
	"strconv"
)

const hexDigit = "0123456789abcdef"

// ReverseAddr returns the reversed-label representation of an IP address as
// used to form DNSBL query names. IPv4 addresses have their octets reversed,
// IPv6 addresses are expanded into 32 nibbles which are then reversed. The
// returned string ends with a dot so a blocklist zone can be appended
// directly, e.g. 127.0.0.1 -> "1.0.0.127.".
func ReverseAddr(ip net.IP) (string, error) {
	if ip4 := ip.To4(); ip4 != nil {
		var s string
		for i := len(ip4) - 1; i >= 0; i-- {
			s += strconv.Itoa(int(ip4[i])) + "."
		}
		return s, nil
	}
	ip16 := ip.To16()
	if ip16 == nil {
		return "", fmt.Errorf("not a valid IP address: '%s'", ip)
	}
	// One byte turns into two nibble labels, low nibble first since the
	// whole sequence is reversed
	b := make([]byte, 0, len(ip16)*4)
	for i := len(ip16) - 1; i >= 0; i-- {
		b = append(b, hexDigit[ip16[i]&0xf], '.', hexDigit[ip16[i]>>4], '.')
	}
	return string(b), nil
}
