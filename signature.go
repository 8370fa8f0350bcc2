package dbustype

import (
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// A Signature is a DBus type signature: a sequence of zero or more
// complete types, such as the argument list of a method.
//
// Signatures are immutable. The zero Signature is the valid, empty
// signature.
type Signature struct {
	types []Type
	str   string
}

const sigGrammar = "type signature"

// maxDepth is the maximum nesting of arrays, and separately of
// structs and dict entries, within a type signature.
const maxDepth = 32

// ValidateSignature reports whether sig is a valid type signature.
func ValidateSignature(sig string) error {
	_, err := ParseSignature(sig)
	return err
}

// ParseSignature parses a DBus type signature string.
func ParseSignature(sig string) (Signature, error) {
	if err := checkLen(sigGrammar, sig); err != nil {
		return Signature{}, err
	}

	var (
		p     = parser{sig}
		rest  = sig
		types []Type
		typ   Type
		err   error
	)
	for rest != "" {
		typ, rest, err = p.parseOne(rest, depth{})
		if err != nil {
			return Signature{}, err
		}
		types = append(types, typ)
	}

	return Signature{types, sig}, nil
}

// MustParseSignature is like [ParseSignature], but panics if sig is
// not a valid type signature.
func MustParseSignature(sig string) Signature {
	ret, err := ParseSignature(sig)
	if err != nil {
		panic(err)
	}
	return ret
}

// SignatureOf returns the Signature made of the given types.
//
// SignatureOf returns an error if the resulting signature is too long
// or too deeply nested. It panics if any of types is the zero Type.
func SignatureOf(types ...Type) (Signature, error) {
	var bs []byte
	for _, t := range types {
		mustBeValid("SignatureOf", t)
		bs = t.appendTo(bs)
	}
	return ParseSignature(string(bs))
}

// String returns the string encoding of the Signature, as described
// in the DBus specification.
func (s Signature) String() string { return s.str }

// IsZero reports whether s is the empty signature.
func (s Signature) IsZero() bool { return len(s.types) == 0 }

// Len returns the number of complete types in s.
func (s Signature) Len() int { return len(s.types) }

// At returns the i-th complete type of s. It panics if i is out of
// range.
func (s Signature) At(i int) Type { return s.types[i] }

// Types returns the complete types that make up s.
func (s Signature) Types() []Type { return slices.Clone(s.types) }

// All returns an iterator over the complete types of s.
func (s Signature) All() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		for _, t := range s.types {
			if !yield(t) {
				return
			}
		}
	}
}

// Equal reports whether s and o describe the same sequence of types.
func (s Signature) Equal(o Signature) bool {
	return slices.EqualFunc(s.types, o.types, Type.Equal)
}

// Hash returns a hash of s, consistent with [Signature.Equal].
func (s Signature) Hash() uint64 {
	return xxhash.Sum64String(s.str)
}

// depth tracks container nesting during parsing.
type depth struct {
	arrays  int
	structs int
}

type parser struct {
	sig string
}

func (p parser) offset(rest string) int {
	return len(p.sig) - len(rest)
}

func (p parser) err(rest string, cause error) *GrammarError {
	return grammarErr(sigGrammar, p.sig, p.offset(rest), cause)
}

// parseOne consumes the first complete type from the front of rest,
// and returns the corresponding Type as well as the remainder of the
// type string.
func (p parser) parseOne(rest string, d depth) (t Type, remainder string, err error) {
	if rest == "" {
		return Type{}, "", p.err(rest, ErrUnexpectedEnd)
	}
	if k, ok := codeToKind[rest[0]]; ok {
		return Type{kind: k}, rest[1:], nil
	}

	switch rest[0] {
	case 'a':
		if d.arrays == maxDepth {
			return Type{}, "", p.err(rest, ErrTooDeep)
		}
		d.arrays++
		if len(rest) > 1 && rest[1] == '{' {
			return p.parseDictEntry(rest[1:], d)
		}
		elem, rest, err := p.parseOne(rest[1:], d)
		if err != nil {
			return Type{}, "", err
		}
		return Type{KindArray, []Type{elem}}, rest, nil
	case '(':
		if d.structs == maxDepth {
			return Type{}, "", p.err(rest, ErrTooDeep)
		}
		d.structs++
		var (
			open   = rest
			fields []Type
			field  Type
			err    error
		)
		rest = rest[1:]
		for rest != "" && rest[0] != ')' {
			field, rest, err = p.parseOne(rest, d)
			if err != nil {
				return Type{}, "", err
			}
			fields = append(fields, field)
		}
		if rest == "" {
			return Type{}, "", p.err(rest, ErrUnterminatedStruct)
		}
		if len(fields) == 0 {
			return Type{}, "", p.err(open, ErrEmptyStruct)
		}
		return Type{KindStruct, fields}, rest[1:], nil
	default:
		return Type{}, "", p.err(rest, ErrInvalidTypeCode)
	}
}

// parseDictEntry parses the dict entry at the front of rest, which
// must start with '{'. The caller has already consumed the enclosing
// array's 'a'.
func (p parser) parseDictEntry(rest string, d depth) (Type, string, error) {
	if d.structs == maxDepth {
		return Type{}, "", p.err(rest, ErrTooDeep)
	}
	d.structs++

	rest = rest[1:]
	keyStart := rest
	key, rest, err := p.parseOne(rest, d)
	if err != nil {
		return Type{}, "", err
	}
	if !key.IsBasic() {
		err := p.err(keyStart, ErrInvalidDictKey)
		err.Detail = "got " + key.String()
		return Type{}, "", err
	}
	val, rest, err := p.parseOne(rest, d)
	if err != nil {
		return Type{}, "", err
	}
	if rest == "" || rest[0] != '}' {
		return Type{}, "", p.err(rest, ErrUnterminatedDict)
	}
	return Type{KindDict, []Type{key, val}}, rest[1:], nil
}
