package dbustype

import (
	"github.com/creachadair/mds/mapset"
)

var (
	// codeToKind maps the single-character DBus type codes to their
	// Kind. Container codes are handled by the signature parser.
	codeToKind = map[byte]Kind{
		'y': KindByte,
		'b': KindBool,
		'n': KindInt16,
		'q': KindUint16,
		'i': KindInt32,
		'u': KindUint32,
		'x': KindInt64,
		't': KindUint64,
		'd': KindDouble,
		's': KindString,
		'o': KindObjectPath,
		'g': KindSignature,
		'h': KindUnixFD,
		'v': KindVariant,
	}

	// kindNames are the type names used by the DBus specification.
	kindNames = map[Kind]string{
		KindInvalid:    "invalid",
		KindByte:       "byte",
		KindBool:       "boolean",
		KindInt16:      "int16",
		KindUint16:     "uint16",
		KindInt32:      "int32",
		KindUint32:     "uint32",
		KindInt64:      "int64",
		KindUint64:     "uint64",
		KindDouble:     "double",
		KindString:     "string",
		KindObjectPath: "object_path",
		KindSignature:  "signature",
		KindUnixFD:     "unix_fd",
		KindVariant:    "variant",
		KindArray:      "array",
		KindStruct:     "struct",
		KindDict:       "dict",
	}

	// basicKinds is the set of Kinds that can be dict entry keys.
	basicKinds = mapset.New(
		KindByte,
		KindBool,
		KindInt16,
		KindUint16,
		KindInt32,
		KindUint32,
		KindInt64,
		KindUint64,
		KindDouble,
		KindString,
		KindObjectPath,
		KindSignature,
		KindUnixFD,
	)

	// containerKinds is the set of Kinds that hold other values.
	containerKinds = mapset.New(
		KindVariant,
		KindArray,
		KindStruct,
		KindDict,
	)
)
