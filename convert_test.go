package korowa

import (
	"testing"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"dec-bin", "dec bin 342", "101010110"},
		{"colon", "dec:bin 342", "101010110"},
		{"colons", "dec:bin:342", "101010110"},
		{"upper-base", "DEC HEX 255", "ff"},
		{"hex-upper", "hex dec FF", "255"},
		{"hex-mixed", "hex bin aF", "10101111"},
		{"oct", "oct dec 777", "511"},
		{"same", "dec dec 0042", "42"},
		{"zero", "bin hex 0", "0"},
		{"spaces", "  dec   bin   5  ", "101"},
		{"max", "hex dec ffffffffffffffff", "18446744073709551615"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := Convert(c.in)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.in, err)
			}
			if out != c.out {
				t.Errorf("wrong conversion of %q: want %q, got %q", c.in, c.out, out)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		kind ErrorKind
		msg  string
	}{
		{"expr", "2+2", Parsing, "Not enough arguments: [2+2]"},
		{"two", "dec bin", Parsing, "Not enough arguments: [dec, bin]"},
		{"empty", "", Parsing, "Not enough arguments: []"},
		{"base", "dec tri 5", Parsing, "Unknown base: [tri]"},
		{"from", "x = 2 + 3", Parsing, "Unknown base: [x]"},
		{"digit", "bin dec 102", Converting, "Invalid binary digit [2]"},
		{"octal", "oct dec 78", Converting, "Invalid octal digit [8]"},
		{"decimal", "dec hex 1a", Converting, "Invalid decimal digit [a]"},
		{"hex", "hex dec fg", Converting, "Invalid hexadecimal digit [g]"},
		{"sign", "dec bin -5", Converting, "Invalid decimal digit [-]"},
		{"inner-space", "dec bin 1 0", Converting, "Invalid decimal digit [ ]"},
		{"large", "dec hex 18446744073709551616", Converting, "Number too large [18446744073709551616]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := Convert(c.in)
			if out != "" {
				t.Errorf("%q converted to %q", c.in, out)
			}
			if err == nil {
				t.Fatalf("%q gave no error", c.in)
			}
			if k := KindOf(err); k != c.kind {
				t.Errorf("wrong kind from %q: want %v, got %v", c.in, c.kind, k)
			}
			if err.Error() != c.msg {
				t.Errorf("wrong message from %q: want %q, got %q", c.in, c.msg, err.Error())
			}
		})
	}
}
