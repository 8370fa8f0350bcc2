package dbustype

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BusName is the name of a connection on a DBus bus.
//
// Unique names are assigned by the bus and start with a colon, for
// example ":1.42". Well-known names are requested by clients, for
// example "org.freedesktop.NetworkManager".
//
// Both forms consist of at least two dot-separated elements of ASCII
// letters, digits, underscores and hyphens, at most 255 bytes in
// total. Elements of well-known names must not start with a digit.
type BusName struct {
	name string
}

const busNameGrammar = "bus name"

// ValidateBusName reports whether s is a valid bus name.
func ValidateBusName(s string) error {
	if s == "" {
		return grammarErr(busNameGrammar, s, -1, ErrEmpty)
	}
	if err := checkLen(busNameGrammar, s); err != nil {
		return err
	}

	rest, off := s, 0
	chars := nameChars{hyphen: true}
	if strings.HasPrefix(s, ":") {
		rest, off = s[1:], 1
		chars.leadingDigit = true
	}

	parts := strings.Split(rest, ".")
	if len(parts) < 2 {
		return grammarErr(busNameGrammar, s, -1, ErrTooFewElements)
	}
	for _, p := range parts {
		if p == "" {
			return grammarErr(busNameGrammar, s, off, ErrEmptyElement)
		}
		if i, err := scanElement(p, chars); err != nil {
			return grammarErr(busNameGrammar, s, off+i, err)
		}
		off += len(p) + 1
	}
	return nil
}

// ParseBusName parses s as a bus name.
func ParseBusName(s string) (BusName, error) {
	if err := ValidateBusName(s); err != nil {
		return BusName{}, err
	}
	return BusName{s}, nil
}

// MustParseBusName is like [ParseBusName], but panics if s is not a
// valid bus name.
func MustParseBusName(s string) BusName {
	ret, err := ParseBusName(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func (n BusName) String() string { return n.name }

// IsZero reports whether n is the zero BusName.
func (n BusName) IsZero() bool { return n.name == "" }

// IsUnique reports whether n is a unique connection name assigned by
// the bus.
func (n BusName) IsUnique() bool {
	return strings.HasPrefix(n.name, ":")
}

// Elements returns the dot-separated elements of the name, without
// the leading colon of unique names.
func (n BusName) Elements() []string {
	if n.name == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(n.name, ":"), ".")
}

// Hash returns the xxhash64 digest of the name.
func (n BusName) Hash() uint64 {
	return xxhash.Sum64String(n.name)
}
