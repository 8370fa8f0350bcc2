package dbustype

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/creachadair/mds/value"
)

// Interface is a DBus interface name, such as
// "org.freedesktop.DBus.Properties".
//
// An interface name is a sequence of at least two [Element]s
// separated by dots, at most 255 bytes long in total.
//
// Interface values are immutable. [Interface.Append] returns a new
// value and never modifies the receiver.
type Interface struct {
	elems []Element
	// raw is the validated text the Interface was parsed from. It is
	// absent for values assembled from elements, which render on
	// demand.
	raw value.Maybe[string]
}

const interfaceGrammar = "interface name"

// ValidateInterface reports whether s is a valid interface name.
func ValidateInterface(s string) error {
	_, err := ParseInterface(s)
	return err
}

// ParseInterface parses s as an interface name.
func ParseInterface(s string) (Interface, error) {
	if err := checkLen(interfaceGrammar, s); err != nil {
		return Interface{}, err
	}
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		if s == "" {
			return Interface{}, grammarErr(interfaceGrammar, s, -1, ErrEmpty)
		}
		return Interface{}, grammarErr(interfaceGrammar, s, -1, ErrTooFewElements)
	}

	elems := make([]Element, 0, len(parts))
	off := 0
	for _, p := range parts {
		if p == "" {
			return Interface{}, grammarErr(interfaceGrammar, s, off, ErrEmptyElement)
		}
		if i, err := scanElement(p, nameChars{}); err != nil {
			return Interface{}, grammarErr(interfaceGrammar, s, off+i, err)
		}
		elems = append(elems, Element{p})
		off += len(p) + 1
	}

	return Interface{elems, value.Just(s)}, nil
}

// MustParseInterface is like [ParseInterface], but panics if s is not
// a valid interface name.
func MustParseInterface(s string) Interface {
	ret, err := ParseInterface(s)
	if err != nil {
		panic(err)
	}
	return ret
}

// InterfaceOf returns the Interface made of elems.
//
// InterfaceOf returns an error if elems has fewer than two elements,
// if any element is the zero Element, or if the resulting name is
// longer than 255 bytes.
func InterfaceOf(elems ...Element) (Interface, error) {
	ret := Interface{elems: slices.Clone(elems)}
	if err := ret.check(); err != nil {
		return Interface{}, err
	}
	return ret, nil
}

func (f Interface) check() error {
	s := f.String()
	if len(f.elems) < 2 {
		return grammarErr(interfaceGrammar, s, -1, ErrTooFewElements)
	}
	off := 0
	for _, e := range f.elems {
		if e.IsZero() {
			return grammarErr(interfaceGrammar, s, off, ErrEmptyElement)
		}
		off += len(e.name) + 1
	}
	return checkLen(interfaceGrammar, s)
}

// Append returns a copy of f with e added as its last element.
func (f Interface) Append(e Element) (Interface, error) {
	ret := Interface{elems: slices.Concat(f.elems, []Element{e})}
	if err := ret.check(); err != nil {
		return Interface{}, err
	}
	return ret, nil
}

// Elements returns the elements of the interface name.
func (f Interface) Elements() []Element { return slices.Clone(f.elems) }

// Len returns the number of elements in the interface name.
func (f Interface) Len() int { return len(f.elems) }

// At returns the i-th element of the interface name. It panics if i
// is out of range.
func (f Interface) At(i int) Element { return f.elems[i] }

// Last returns the final element of the interface name, or the zero
// Element if f is the zero Interface.
func (f Interface) Last() Element {
	if len(f.elems) == 0 {
		return Element{}
	}
	return f.elems[len(f.elems)-1]
}

// IsZero reports whether f is the zero Interface.
func (f Interface) IsZero() bool { return len(f.elems) == 0 }

// String returns the interface name in dotted form.
func (f Interface) String() string {
	if s, ok := f.raw.GetOK(); ok {
		return s
	}
	var sb strings.Builder
	for i, e := range f.elems {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(e.name)
	}
	return sb.String()
}

// Equal reports whether f and o have the same elements.
func (f Interface) Equal(o Interface) bool {
	return slices.Equal(f.elems, o.elems)
}

// Hash returns a hash of the interface name, consistent with
// [Interface.Equal]. It equals the xxhash64 digest of
// [Interface.String].
func (f Interface) Hash() uint64 {
	return xxhash.Sum64String(f.String())
}
