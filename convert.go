package korowa

import (
	"errors"
	"strconv"
	"strings"
)

var bases = map[string]int{
	"bin": 2,
	"oct": 8,
	"dec": 10,
	"hex": 16,
}

var baseNames = map[int]string{
	2:  "binary",
	8:  "octal",
	10: "decimal",
	16: "hexadecimal",
}

// Convert converts an unsigned integer between bases. The input has the form
// "from to number", where from and to are each one of bin, oct, dec, or hex,
// and the first two separators may be spaces or colons: "dec:bin 342" gives
// "101010110". Output digits are lowercase with no prefix.
//
// Input that does not have the shape of a conversion gives a Parsing error,
// so callers can fall back to evaluating it as an expression. Invalid digits
// or numbers that overflow 64 bits give a Converting error.
func Convert(input string) (string, error) {
	f := conversionFields(strings.TrimSpace(input))
	if len(f) != 3 {
		return "", &SyntaxError{
			Kind:    Parsing,
			Message: "Not enough arguments: [" + strings.Join(f, ", ") + "]",
			Params:  f,
			Index:   -1,
		}
	}
	from, ok := bases[strings.ToLower(f[0])]
	if !ok {
		return "", unknownBase(f[0])
	}
	to, ok := bases[strings.ToLower(f[1])]
	if !ok {
		return "", unknownBase(f[1])
	}
	num := strings.TrimSpace(f[2])
	for _, r := range num {
		if digitValue(r) >= from {
			return "", converting("Invalid "+baseNames[from]+" digit ["+string(r)+"]", num)
		}
	}
	v, err := strconv.ParseUint(num, from, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return "", converting("Number too large ["+num+"]", num)
		}
		return "", converting("Invalid input ["+num+"]", num)
	}
	return strconv.FormatUint(v, to), nil
}

// conversionFields splits off the first two fields of a conversion. A field
// ends at a space, or at a colon that is not its first character. Runs of
// spaces count as one separator.
func conversionFields(s string) []string {
	var f []string
	var cur strings.Builder
	for _, r := range s {
		if len(f) < 2 && (r == ' ' || (r == ':' && cur.Len() > 0)) {
			if cur.Len() > 0 {
				f = append(f, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		f = append(f, cur.String())
	}
	return f
}

// digitValue returns the value of a digit in base 16 or less, or 16 if r is
// not a digit.
func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10
	}
	return 16
}

func unknownBase(b string) error {
	return &SyntaxError{Kind: Parsing, Message: "Unknown base: [" + b + "]", Params: []string{b}, Index: -1}
}

func converting(msg, num string) error {
	return &SyntaxError{Kind: Converting, Message: msg, Params: []string{num}, Index: -1}
}
