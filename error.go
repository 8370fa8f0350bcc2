package dbustype

import (
	"errors"
	"fmt"
)

// Causes of a [GrammarError]. Use [errors.Is] to test for them.
var (
	ErrEmpty              = errors.New("empty")
	ErrInvalidFirstChar   = errors.New("invalid first character")
	ErrInvalidChar        = errors.New("invalid character")
	ErrTooFewElements     = errors.New("must have at least two elements")
	ErrEmptyElement       = errors.New("empty element")
	ErrTooLong            = errors.New("too long")
	ErrInvalidTypeCode    = errors.New("unknown type code")
	ErrInvalidDictKey     = errors.New("dict entry key must be a basic type")
	ErrEmptyStruct        = errors.New("struct has no fields")
	ErrUnterminatedStruct = errors.New("missing closing ) in struct definition")
	ErrUnterminatedDict   = errors.New("missing closing } in dict entry definition")
	ErrUnexpectedEnd      = errors.New("unexpected end of signature")
	ErrTooDeep            = errors.New("containers nested too deeply")
)

// GrammarError is the error returned when a string does not conform
// to one of the DBus name or type signature grammars.
type GrammarError struct {
	// Grammar is the kind of string being validated, for example
	// "interface name" or "type signature".
	Grammar string
	// Input is the complete string that failed validation.
	Input string
	// Offset is the byte offset in Input at which the violation was
	// found, or -1 if the violation concerns the string as a whole.
	Offset int
	// Char is the offending character at Offset, or 0 if there is
	// none (for example at the end of the input).
	Char rune
	// Detail is additional human-readable context, if any.
	Detail string
	// Err is the underlying cause, one of the Err* values in this
	// package.
	Err error
}

func (e *GrammarError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %v", e.Grammar, e.Input, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Char != 0 {
		msg += fmt.Sprintf(" %q", e.Char)
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	return msg
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

func grammarErr(grammar, input string, offset int, err error) *GrammarError {
	ret := &GrammarError{
		Grammar: grammar,
		Input:   input,
		Offset:  offset,
		Err:     err,
	}
	if offset >= 0 && offset < len(input) {
		ret.Char = charAt(input, offset)
	}
	return ret
}

// maxNameLen is the maximum length in bytes of DBus names and type
// signatures.
const maxNameLen = 255

func checkLen(grammar, s string) error {
	if len(s) > maxNameLen {
		ret := grammarErr(grammar, s, -1, ErrTooLong)
		ret.Detail = fmt.Sprintf("%d bytes, max %d", len(s), maxNameLen)
		return ret
	}
	return nil
}
