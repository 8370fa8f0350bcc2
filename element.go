package dbustype

import (
	"unicode/utf8"
)

// An Element is one dot-separated component of an [Interface] name.
//
// An Element is non-empty, starts with an ASCII letter or underscore,
// and otherwise contains only ASCII letters, digits and underscores.
// The zero Element is not valid.
type Element struct {
	name string
}

// ValidateElement reports whether s is a valid [Element].
func ValidateElement(s string) error {
	if off, err := scanElement(s, nameChars{}); err != nil {
		return grammarErr("name element", s, off, err)
	}
	return nil
}

// ParseElement parses s as an [Element].
func ParseElement(s string) (Element, error) {
	if err := ValidateElement(s); err != nil {
		return Element{}, err
	}
	return Element{s}, nil
}

// MustParseElement is like [ParseElement], but panics if s is not a
// valid Element.
func MustParseElement(s string) Element {
	ret, err := ParseElement(s)
	if err != nil {
		panic(err)
	}
	return ret
}

// String returns the element's text.
func (e Element) String() string { return e.name }

// IsZero reports whether e is the zero Element.
func (e Element) IsZero() bool { return e.name == "" }

// nameChars selects the character set of a name element. The zero
// value is the interface and member name grammar.
type nameChars struct {
	// hyphen permits '-', as in bus names.
	hyphen bool
	// leadingDigit permits the element to start with a digit, as in
	// unique bus names.
	leadingDigit bool
}

// scanElement checks s against the element grammar selected by
// chars. On failure, it returns the byte offset of the offending
// character (or -1 for an empty element) and the cause.
func scanElement(s string, chars nameChars) (offset int, err error) {
	if s == "" {
		return -1, ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isLetter(c), c == '_':
		case isDigit(c) && (i > 0 || chars.leadingDigit):
		case c == '-' && chars.hyphen:
		case i == 0:
			return 0, ErrInvalidFirstChar
		default:
			return i, ErrInvalidChar
		}
	}
	return 0, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// charAt returns the scalar that starts at byte offset i of s. Bytes
// that do not start a valid UTF-8 sequence decode as
// [utf8.RuneError].
func charAt(s string, i int) rune {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}
