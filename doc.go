// Package dbustype implements the DBus type signature and name
// grammars.
//
// [ParseSignature] parses a type signature such as "a{sv}" or
// "(ia(ss))" into a [Signature], a sequence of [Type] values that
// can be inspected and re-encoded. Types can also be built directly
// with [ArrayOf], [StructOf] and [DictOf], and assembled into a
// Signature with [SignatureOf]. Every Signature renders back to
// exactly the string it was parsed from.
//
// [ParseInterface], [ParseMember] and [ParseBusName] validate the
// names used to address interfaces, methods and signals, and bus
// connections.
//
// Each parser has a Validate variant that only reports the error,
// and a Must variant that panics, for use with constant inputs. All
// errors are of type [*GrammarError], and wrap one of the Err*
// values in this package describing the violated rule.
//
// All types in this package are immutable values, and safe for
// concurrent use.
package dbustype
