package convert

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// NeverExpires is the sentinel date representing "no expiry". Dates equal to
// it should be rendered as never expiring rather than as a calendar value.
var NeverExpires = time.Date(9999, time.August, 17, 12, 0, 0, 0, time.UTC)

// IsNeverExpires reports whether a date is the NeverExpires sentinel.
func IsNeverExpires(t time.Time) bool {
	return t.Equal(NeverExpires)
}

// Layouts accepted by AsTime, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func coerceError(k Kind, target string) error {
	return errors.Errorf("cannot convert %s to %s", k, target)
}

// AsString renders the value as text. Lists and associations have no
// canonical text form and return an error.
func (v Value) AsString() (string, error) {
	switch v.kind {
	case Null:
		return "", nil
	case Bool:
		return strconv.FormatBool(v.b), nil
	case Int:
		return strconv.FormatInt(v.i, 10), nil
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64), nil
	case String:
		return v.s, nil
	case Binary:
		return string(v.bin), nil
	case Time:
		return v.t.UTC().Format(time.RFC3339), nil
	}
	return "", coerceError(v.kind, "string")
}

// AsBinary renders the value as a byte sequence, following AsString for
// everything that isn't already binary.
func (v Value) AsBinary() ([]byte, error) {
	if v.kind == Binary {
		return v.bin, nil
	}
	s, err := v.AsString()
	if err != nil {
		return nil, coerceError(v.kind, "binary")
	}
	return []byte(s), nil
}

// AsInt coerces the value to an integer. Floats are truncated, text is
// parsed in base 10.
func (v Value) AsInt() (int64, error) {
	switch v.kind {
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Int:
		return v.i, nil
	case Float:
		return int64(v.f), nil
	case String, Binary:
		s, _ := v.AsString()
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return i, errors.Wrapf(err, "cannot convert %q to int", s)
	}
	return 0, coerceError(v.kind, "int")
}

// AsFloat coerces the value to a float.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case Bool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case Int:
		return float64(v.i), nil
	case Float:
		return v.f, nil
	case String, Binary:
		s, _ := v.AsString()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, errors.Wrapf(err, "cannot convert %q to float", s)
	}
	return 0, coerceError(v.kind, "float")
}

// AsBool coerces the value to a boolean. Text follows the usual truthiness
// conventions: "true", "yes", "on" and "1" are true, "false", "no", "off",
// "0" and the empty string are false, anything else is an error. Numbers are
// true when nonzero.
func (v Value) AsBool() (bool, error) {
	switch v.kind {
	case Null:
		return false, nil
	case Bool:
		return v.b, nil
	case Int:
		return v.i != 0, nil
	case Float:
		return v.f != 0, nil
	case String, Binary:
		s, _ := v.AsString()
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0", "":
			return false, nil
		}
		return false, errors.Errorf("cannot convert %q to bool", s)
	}
	return false, coerceError(v.kind, "bool")
}

// AsTime coerces the value to a point in time. Text is parsed with the
// timeLayouts, integers are taken as Unix seconds.
func (v Value) AsTime() (time.Time, error) {
	switch v.kind {
	case Int:
		return time.Unix(v.i, 0).UTC(), nil
	case String, Binary:
		s, _ := v.AsString()
		s = strings.TrimSpace(s)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, errors.Errorf("cannot convert %q to time", s)
	case Time:
		return v.t, nil
	}
	return time.Time{}, coerceError(v.kind, "time")
}

// AsList coerces the value to a list. Null is the empty list and scalars
// become single-element lists; associations have no list form.
func (v Value) AsList() ([]Value, error) {
	switch v.kind {
	case Null:
		return nil, nil
	case List:
		return v.list, nil
	case Assoc:
		return nil, coerceError(v.kind, "list")
	}
	return []Value{v}, nil
}

// AsIP parses the value as an IP address.
func (v Value) AsIP() (net.IP, error) {
	switch v.kind {
	case String, Binary:
		s, _ := v.AsString()
		ip := net.ParseIP(strings.TrimSpace(s))
		if ip == nil {
			return nil, errors.Errorf("cannot convert %q to IP address", s)
		}
		return ip, nil
	}
	return nil, coerceError(v.kind, "IP address")
}

// AsJSON converts the value into a tree of plain Go values that
// encoding/json can marshal. Dates are rendered in RFC 3339 and the
// NeverExpires sentinel as the string "never".
func (v Value) AsJSON() (interface{}, error) {
	switch v.kind {
	case Null:
		return nil, nil
	case Bool:
		return v.b, nil
	case Int:
		return v.i, nil
	case Float:
		return v.f, nil
	case String:
		return v.s, nil
	case Binary:
		return string(v.bin), nil
	case Time:
		if IsNeverExpires(v.t) {
			return "never", nil
		}
		return v.t.UTC().Format(time.RFC3339), nil
	case List:
		list := make([]interface{}, 0, len(v.list))
		for _, e := range v.list {
			j, err := e.AsJSON()
			if err != nil {
				return nil, err
			}
			list = append(list, j)
		}
		return list, nil
	case Assoc:
		m := make(map[string]interface{}, len(v.assoc))
		for _, p := range v.assoc {
			j, err := p.Value.AsJSON()
			if err != nil {
				return nil, err
			}
			m[p.Key] = j
		}
		return m, nil
	}
	return nil, coerceError(v.kind, "JSON")
}
