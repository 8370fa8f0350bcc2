package dbustype

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// A Kind is the specific kind of DBus type that a [Type] represents.
//
// The value of each Kind is the character that begins its encoding
// in a type signature.
type Kind byte

const (
	KindInvalid    Kind = 0
	KindByte       Kind = 'y'
	KindBool       Kind = 'b'
	KindInt16      Kind = 'n'
	KindUint16     Kind = 'q'
	KindInt32      Kind = 'i'
	KindUint32     Kind = 'u'
	KindInt64      Kind = 'x'
	KindUint64     Kind = 't'
	KindDouble     Kind = 'd'
	KindString     Kind = 's'
	KindObjectPath Kind = 'o'
	KindSignature  Kind = 'g'
	KindUnixFD     Kind = 'h'
	KindVariant    Kind = 'v'
	KindArray      Kind = 'a'
	KindStruct     Kind = '('
	KindDict       Kind = '{'
)

// String returns the name the DBus specification uses for k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// IsBasic reports whether k is a basic type, i.e. a fixed-size
// scalar or a string-like type. Only basic types can be dict keys.
func (k Kind) IsBasic() bool { return basicKinds.Has(k) }

// IsContainer reports whether values of kind k contain other values.
func (k Kind) IsContainer() bool { return containerKinds.Has(k) }

// Type is a single complete DBus type, such as "i", "as" or
// "a{sv}".
//
// Types are immutable. The zero Type is invalid.
type Type struct {
	kind Kind
	// elems holds the element type of an array, the key and value
	// types of a dict, or the field types of a struct.
	elems []Type
}

// The DBus types that do not contain other types.
var (
	Byte       = Type{kind: KindByte}
	Bool       = Type{kind: KindBool}
	Int16      = Type{kind: KindInt16}
	Uint16     = Type{kind: KindUint16}
	Int32      = Type{kind: KindInt32}
	Uint32     = Type{kind: KindUint32}
	Int64      = Type{kind: KindInt64}
	Uint64     = Type{kind: KindUint64}
	Double     = Type{kind: KindDouble}
	String     = Type{kind: KindString}
	ObjectPath = Type{kind: KindObjectPath}
	Sig        = Type{kind: KindSignature}
	UnixFD     = Type{kind: KindUnixFD}
	Variant    = Type{kind: KindVariant}
)

// ArrayOf returns the array type with the given element type.
//
// ArrayOf panics if elem is the zero Type.
func ArrayOf(elem Type) Type {
	mustBeValid("ArrayOf", elem)
	return Type{KindArray, []Type{elem}}
}

// StructOf returns the struct type with the given field types.
//
// StructOf returns an error if no fields are given, and panics if
// any field is the zero Type.
func StructOf(fields ...Type) (Type, error) {
	for _, f := range fields {
		mustBeValid("StructOf", f)
	}
	if len(fields) == 0 {
		return Type{}, grammarErr(sigGrammar, "()", -1, ErrEmptyStruct)
	}
	return Type{KindStruct, slices.Clone(fields)}, nil
}

// DictOf returns the dictionary type with the given key and value
// types. A dictionary is an array of key/value dict entries.
//
// DictOf returns an error if key is not a basic type, and panics if
// key or value is the zero Type.
func DictOf(key, value Type) (Type, error) {
	mustBeValid("DictOf", key)
	mustBeValid("DictOf", value)
	ret := Type{KindDict, []Type{key, value}}
	if !key.IsBasic() {
		err := grammarErr(sigGrammar, ret.String(), 2, ErrInvalidDictKey)
		err.Detail = "got " + key.String()
		return Type{}, err
	}
	return ret, nil
}

func mustBeValid(fn string, t Type) {
	if t.kind == KindInvalid {
		panic(fmt.Sprintf("dbustype.%s: invalid Type", fn))
	}
}

// Kind returns the specific kind of t.
func (t Type) Kind() Kind { return t.kind }

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool { return t.kind == KindInvalid }

// IsBasic reports whether t is a basic type.
func (t Type) IsBasic() bool { return t.kind.IsBasic() }

// IsContainer reports whether t is a container type.
func (t Type) IsContainer() bool { return t.kind.IsContainer() }

// Elem returns the element type of an array, or the value type of a
// dict. It panics if t is neither.
func (t Type) Elem() Type {
	switch t.kind {
	case KindArray:
		return t.elems[0]
	case KindDict:
		return t.elems[1]
	}
	panic(fmt.Sprintf("dbustype: Elem of %s type %s", t.kind, t))
}

// Key returns the key type of a dict. It panics if t is not a dict.
func (t Type) Key() Type {
	if t.kind != KindDict {
		panic(fmt.Sprintf("dbustype: Key of %s type %s", t.kind, t))
	}
	return t.elems[0]
}

// Fields returns the field types of a struct. It panics if t is not
// a struct.
func (t Type) Fields() []Type {
	if t.kind != KindStruct {
		panic(fmt.Sprintf("dbustype: Fields of %s type %s", t.kind, t))
	}
	return slices.Clone(t.elems)
}

// NumFields returns the number of fields of a struct. It panics if t
// is not a struct.
func (t Type) NumFields() int {
	if t.kind != KindStruct {
		panic(fmt.Sprintf("dbustype: NumFields of %s type %s", t.kind, t))
	}
	return len(t.elems)
}

// String returns the type signature encoding of t.
func (t Type) String() string {
	return string(t.appendTo(nil))
}

func (t Type) appendTo(bs []byte) []byte {
	switch t.kind {
	case KindInvalid:
		return bs
	case KindArray:
		return t.elems[0].appendTo(append(bs, 'a'))
	case KindDict:
		bs = append(bs, 'a', '{')
		bs = t.elems[0].appendTo(bs)
		bs = t.elems[1].appendTo(bs)
		return append(bs, '}')
	case KindStruct:
		bs = append(bs, '(')
		for _, f := range t.elems {
			bs = f.appendTo(bs)
		}
		return append(bs, ')')
	default:
		return append(bs, byte(t.kind))
	}
}

// Equal reports whether t and o are the same type.
func (t Type) Equal(o Type) bool {
	return t.kind == o.kind && slices.EqualFunc(t.elems, o.elems, Type.Equal)
}

// Hash returns a hash of t, consistent with [Type.Equal].
func (t Type) Hash() uint64 {
	return xxhash.Sum64String(t.String())
}
