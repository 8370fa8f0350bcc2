package main

import (
	"fmt"
	"io"

	"github.com/danderson/dbustype"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// typeNode is the explained form of a dbustype.Type.
type typeNode struct {
	Kind   string     `yaml:"kind"`
	Sig    string     `yaml:"signature"`
	Key    *typeNode  `yaml:"key,omitempty"`
	Elem   *typeNode  `yaml:"elem,omitempty"`
	Fields []typeNode `yaml:"fields,omitempty"`
}

type signatureDoc struct {
	Signature string     `yaml:"signature"`
	Types     []typeNode `yaml:"types"`
}

type interfaceDoc struct {
	Interface string   `yaml:"interface"`
	Elements  []string `yaml:"elements"`
}

type busNameDoc struct {
	BusName  string   `yaml:"bus_name"`
	Unique   bool     `yaml:"unique"`
	Elements []string `yaml:"elements"`
}

func describeType(t dbustype.Type) typeNode {
	ret := typeNode{
		Kind: t.Kind().String(),
		Sig:  t.String(),
	}
	switch t.Kind() {
	case dbustype.KindArray:
		elem := describeType(t.Elem())
		ret.Elem = &elem
	case dbustype.KindDict:
		key, elem := describeType(t.Key()), describeType(t.Elem())
		ret.Key, ret.Elem = &key, &elem
	case dbustype.KindStruct:
		for _, f := range t.Fields() {
			ret.Fields = append(ret.Fields, describeType(f))
		}
	}
	return ret
}

func explainSignature(s string) (any, error) {
	sig, err := dbustype.ParseSignature(s)
	if err != nil {
		return nil, err
	}
	ret := signatureDoc{
		Signature: sig.String(),
		Types:     []typeNode{},
	}
	for t := range sig.All() {
		ret.Types = append(ret.Types, describeType(t))
	}
	return ret, nil
}

func explainInterface(s string) (any, error) {
	iface, err := dbustype.ParseInterface(s)
	if err != nil {
		return nil, err
	}
	ret := interfaceDoc{Interface: iface.String()}
	for _, e := range iface.Elements() {
		ret.Elements = append(ret.Elements, e.String())
	}
	return ret, nil
}

func explainBusName(s string) (any, error) {
	name, err := dbustype.ParseBusName(s)
	if err != nil {
		return nil, err
	}
	return busNameDoc{
		BusName:  name.String(),
		Unique:   name.IsUnique(),
		Elements: name.Elements(),
	}, nil
}

// validateAll reports the validity of each of args to w, and returns
// an error if any were invalid.
func validateAll(w io.Writer, args []string, validate func(string) error) error {
	failed := 0
	for _, arg := range args {
		if err := validate(arg); err != nil {
			failed++
			fmt.Fprintf(w, "%q: %v\n", arg, err)
		} else {
			fmt.Fprintf(w, "%q: ok\n", arg)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d arguments invalid", failed, len(args))
	}
	return nil
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "", "text":
		out := newIndenter(w)
		writeText(out, v)
		return out.err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "go":
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(v))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(out *indenter, v any) {
	switch d := v.(type) {
	case signatureDoc:
		out.f("signature %q:", d.Signature)
		if len(d.Types) == 0 {
			out.indent(1)
			out.s("(empty)")
		}
		for _, t := range d.Types {
			writeType(out, 1, "", t)
		}
		out.indent(0)
	case interfaceDoc:
		out.f("interface %q:", d.Interface)
		out.indent(1)
		for i, e := range d.Elements {
			out.f("%d: %s", i, e)
		}
		out.indent(0)
	case busNameDoc:
		kind := "well-known"
		if d.Unique {
			kind = "unique"
		}
		out.f("%s bus name %q:", kind, d.BusName)
		out.indent(1)
		for i, e := range d.Elements {
			out.f("%d: %s", i, e)
		}
		out.indent(0)
	default:
		out.v(v)
	}
}

func writeType(out *indenter, depth int, label string, t typeNode) {
	out.indent(depth)
	out.f("%s%s %q", label, t.Kind, t.Sig)
	if t.Key != nil {
		writeType(out, depth+1, "key: ", *t.Key)
	}
	if t.Elem != nil {
		label := "elem: "
		if t.Key != nil {
			label = "value: "
		}
		writeType(out, depth+1, label, *t.Elem)
	}
	for i, f := range t.Fields {
		writeType(out, depth+1, fmt.Sprintf("%d: ", i), f)
	}
}
