package dbustype

// Member is the name of a DBus method, signal or property, such as
// "GetAll" or "PropertiesChanged".
//
// Member names follow the same grammar as a single interface
// [Element], and are at most 255 bytes long.
type Member struct {
	name string
}

const memberGrammar = "member name"

// ValidateMember reports whether s is a valid member name.
func ValidateMember(s string) error {
	if err := checkLen(memberGrammar, s); err != nil {
		return err
	}
	if off, err := scanElement(s, nameChars{}); err != nil {
		return grammarErr(memberGrammar, s, off, err)
	}
	return nil
}

// ParseMember parses s as a member name.
func ParseMember(s string) (Member, error) {
	if err := ValidateMember(s); err != nil {
		return Member{}, err
	}
	return Member{s}, nil
}

// MustParseMember is like [ParseMember], but panics if s is not a
// valid member name.
func MustParseMember(s string) Member {
	ret, err := ParseMember(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func (m Member) String() string { return m.name }

// IsZero reports whether m is the zero Member.
func (m Member) IsZero() bool { return m.name == "" }
