package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// indenter writes lines to w, prefixing each with the current
// indentation. The first write error is kept in err, and subsequent
// writes are dropped.
//
// Create indenters with newIndenter.
type indenter struct {
	w          io.Writer
	prefix     string
	indentNext bool
	err        error
}

func newIndenter(w io.Writer) *indenter {
	return &indenter{w: w, indentNext: true}
}

func (i *indenter) v(v any) {
	fmt.Fprintf(i, "%v\n", v)
}

func (i *indenter) s(msg string) {
	io.WriteString(i, msg+"\n")
}

func (i *indenter) f(msg string, args ...any) {
	fmt.Fprintf(i, msg+"\n", args...)
}

func (i *indenter) Write(bs []byte) (int, error) {
	if i.err != nil {
		return 0, i.err
	}
	ret := 0
	for len(bs) > 0 {
		if i.indentNext {
			i.indentNext = false
			if _, err := io.WriteString(i.w, i.prefix); err != nil {
				i.err = err
				return ret, err
			}
		}

		var wr []byte
		idx := bytes.IndexByte(bs, '\n')
		if idx >= 0 {
			i.indentNext = true
			wr, bs = bs[:idx+1], bs[idx+1:]
		} else {
			wr, bs = bs, nil
		}

		n, err := i.w.Write(wr)
		ret += n
		if err != nil {
			i.err = err
			return ret, err
		}
	}
	return ret, nil
}

func (i *indenter) indent(n int) {
	i.prefix = strings.Repeat("  ", n)
}
