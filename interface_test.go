package dbustype

import (
	"errors"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
)

func names(elems []Element) []string {
	var ret []string
	for _, e := range elems {
		ret = append(ret, e.String())
	}
	return ret
}

func TestParseInterface(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"org._7_zip.Plugin", []string{"org", "_7_zip", "Plugin"}},
		{"a.b", []string{"a", "b"}},
		{"com.example", []string{"com", "example"}},
		{"com.example.MusicPlayer1", []string{"com", "example", "MusicPlayer1"}},
		{"com.example.MusicPlayer1.Track", []string{"com", "example", "MusicPlayer1", "Track"}},
		{"org.freedesktop.DBus.Properties", []string{"org", "freedesktop", "DBus", "Properties"}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if err := ValidateInterface(tc.in); err != nil {
				t.Fatalf("ValidateInterface(%q) got err %v", tc.in, err)
			}
			got, err := ParseInterface(tc.in)
			if err != nil {
				t.Fatalf("ParseInterface(%q) got err %v", tc.in, err)
			}

			if got.String() != tc.in {
				t.Errorf("ParseInterface(%q).String() = %q", tc.in, got.String())
			}
			if raw, ok := got.raw.GetOK(); !ok || raw != tc.in {
				t.Errorf("ParseInterface(%q) cached string = %q, %v", tc.in, raw, ok)
			}
			if diff := cmp.Diff(names(got.Elements()), tc.want); diff != "" {
				t.Errorf("ParseInterface(%q) wrong elements (-got+want):\n%s", tc.in, diff)
			}
			if got.Len() < 2 || got.Len() != len(tc.want) {
				t.Errorf("ParseInterface(%q).Len() = %d, want %d", tc.in, got.Len(), len(tc.want))
			}
			if got.At(0).String() != tc.want[0] {
				t.Errorf("ParseInterface(%q).At(0) = %q, want %q", tc.in, got.At(0), tc.want[0])
			}

			assembled, err := InterfaceOf(got.Elements()...)
			if err != nil {
				t.Fatalf("InterfaceOf(%q) got err %v", tc.in, err)
			}
			if !assembled.Equal(got) {
				t.Errorf("InterfaceOf(%q elements) not equal to parsed value", tc.in)
			}
			if _, ok := assembled.raw.GetOK(); ok {
				t.Errorf("InterfaceOf(%q elements) has a cached string", tc.in)
			}
			if assembled.String() != tc.in {
				t.Errorf("InterfaceOf(%q elements).String() = %q", tc.in, assembled.String())
			}
			if got.Hash() != xxhash.Sum64String(tc.in) {
				t.Errorf("ParseInterface(%q).Hash() is not the hash of the input", tc.in)
			}
			if assembled.Hash() != got.Hash() {
				t.Errorf("InterfaceOf(%q elements).Hash() = %x, want %x", tc.in, assembled.Hash(), got.Hash())
			}
		})
	}
}

func TestInterfaceAppend(t *testing.T) {
	for _, in := range []string{"org._7_zip.Plugin", "a.b", "com.example.MusicPlayer1.Track"} {
		orig := MustParseInterface(in)
		obj := MustParseElement("Object1")

		mutated, err := orig.Append(obj)
		if err != nil {
			t.Fatalf("%q.Append(%q) got err %v", in, obj, err)
		}
		if _, ok := mutated.raw.GetOK(); ok {
			t.Errorf("%q.Append(%q) kept a cached string", in, obj)
		}
		if mutated.Equal(orig) {
			t.Errorf("%q.Append(%q) is equal to the original", in, obj)
		}
		if mutated.String() == orig.String() {
			t.Errorf("%q.Append(%q).String() = %q, same as original", in, obj, mutated.String())
		}
		if want := in + ".Object1"; mutated.String() != want {
			t.Errorf("%q.Append(%q).String() = %q, want %q", in, obj, mutated.String(), want)
		}
		if mutated.Hash() == orig.Hash() {
			t.Errorf("%q.Append(%q).Hash() is the same as the original", in, obj)
		}
		if mutated.Last() == orig.Last() {
			t.Errorf("%q.Append(%q).Last() = %q, same as original", in, obj, mutated.Last())
		}

		if orig.String() != in || orig.Len() != mutated.Len()-1 {
			t.Errorf("Append modified the original %q, now %q", in, orig)
		}
	}
}

func TestInterfaceAppendNoAliasing(t *testing.T) {
	base, err := InterfaceOf(MustParseElement("a"), MustParseElement("b"), MustParseElement("c"))
	if err != nil {
		t.Fatal(err)
	}
	// Shrink the element slice so it has spare capacity that an
	// append could scribble over.
	base.elems = base.elems[:2]

	x, err := base.Append(MustParseElement("x"))
	if err != nil {
		t.Fatal(err)
	}
	y, err := base.Append(MustParseElement("y"))
	if err != nil {
		t.Fatal(err)
	}
	if got := x.String(); got != "a.b.x" {
		t.Errorf("first Append = %q, want a.b.x", got)
	}
	if got := y.String(); got != "a.b.y" {
		t.Errorf("second Append = %q, want a.b.y", got)
	}
}

func TestInterfaceAppendTooLong(t *testing.T) {
	long := MustParseInterface("a." + strings.Repeat("b", 250))
	if _, err := long.Append(MustParseElement("cdefg")); !errors.Is(err, ErrTooLong) {
		t.Errorf("Append past 255 bytes got err %v, want %v", err, ErrTooLong)
	}
}

func TestParseInterfaceErrors(t *testing.T) {
	tests := []struct {
		in         string
		wantErr    error
		wantOffset int
	}{
		{"org.7-zip.Plugin", ErrInvalidFirstChar, 4},
		{"org.7zip.Plugin", ErrInvalidFirstChar, 4},
		{"org._7-zip.Plugin", ErrInvalidChar, 6},
		{"com.example..MusicPlayer1.Track", ErrEmptyElement, 12},
		{"com.example.MusicPlayer1.Track.", ErrEmptyElement, 31},
		{"com.example.", ErrEmptyElement, 12},
		{"com.example.MusicPlayer1.Track@", ErrInvalidChar, 30},
		{"com.example.MusicPlayer1.Trackñ", ErrInvalidChar, 30},
		{"", ErrEmpty, -1},
		{"/", ErrTooFewElements, -1},
		{".", ErrEmptyElement, 0},
		{"..", ErrEmptyElement, 0},
		{"com", ErrTooFewElements, -1},
		{"com.", ErrEmptyElement, 4},
		{"a.", ErrEmptyElement, 2},
		{".a", ErrEmptyElement, 0},
		{"a.ñ", ErrInvalidFirstChar, 2},
		{"a.😀", ErrInvalidFirstChar, 2},
		{"a.b😀", ErrInvalidChar, 3},
		{"a." + strings.Repeat("b", 254), ErrTooLong, -1},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseInterface(tc.in)
			if err == nil {
				t.Fatalf("ParseInterface(%q) = %q, want error", tc.in, got)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseInterface(%q) got err %v, want %v", tc.in, err, tc.wantErr)
			}
			var gerr *GrammarError
			if !errors.As(err, &gerr) {
				t.Fatalf("ParseInterface(%q) err %T is not a *GrammarError", tc.in, err)
			}
			if gerr.Offset != tc.wantOffset {
				t.Errorf("ParseInterface(%q) err offset = %d, want %d (%v)", tc.in, gerr.Offset, tc.wantOffset, err)
			}
			if !got.IsZero() {
				t.Errorf("ParseInterface(%q) returned partial value %q", tc.in, got)
			}
			if err := ValidateInterface(tc.in); err == nil {
				t.Errorf("ValidateInterface(%q) got nil err", tc.in)
			}
		})
	}
}

func TestInterfaceOfErrors(t *testing.T) {
	if _, err := InterfaceOf(); !errors.Is(err, ErrTooFewElements) {
		t.Errorf("InterfaceOf() got err %v, want %v", err, ErrTooFewElements)
	}
	if _, err := InterfaceOf(MustParseElement("com")); !errors.Is(err, ErrTooFewElements) {
		t.Errorf("InterfaceOf(com) got err %v, want %v", err, ErrTooFewElements)
	}
	if _, err := InterfaceOf(MustParseElement("com"), Element{}); !errors.Is(err, ErrEmptyElement) {
		t.Errorf("InterfaceOf(com, zero) got err %v, want %v", err, ErrEmptyElement)
	}
}

func TestInterfaceEqualHash(t *testing.T) {
	ifaces := []string{"a.b", "a.c", "a.b.c", "org.freedesktop.DBus", "org.freedesktop.DBus.Peer"}
	for _, a := range ifaces {
		for _, b := range ifaces {
			ia, ib := MustParseInterface(a), MustParseInterface(b)
			if got, want := ia.Equal(ib), a == b; got != want {
				t.Errorf("%q.Equal(%q) = %v, want %v", a, b, got, want)
			}
			if ia.Equal(ib) && ia.Hash() != ib.Hash() {
				t.Errorf("%q and %q are equal but hash differently", a, b)
			}
		}
	}
}

func FuzzParseInterface(f *testing.F) {
	for _, s := range []string{"a.b", "org.freedesktop.DBus", "com..x", "a.ñ", "_a._b"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		iface, err := ParseInterface(in)
		if err != nil {
			return
		}
		if iface.Len() < 2 {
			t.Fatalf("ParseInterface(%q) has %d elements", in, iface.Len())
		}
		rebuilt, err := InterfaceOf(iface.Elements()...)
		if err != nil {
			t.Fatalf("InterfaceOf(ParseInterface(%q)) got err %v", in, err)
		}
		if got := rebuilt.String(); got != in {
			t.Fatalf("InterfaceOf(ParseInterface(%q)) = %q", in, got)
		}
	})
}
