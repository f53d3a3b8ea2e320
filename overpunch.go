package rbf

import "strings"

// Signed-overpunch support for legacy numeric fields. Mainframe feeds encode
// the sign of a number by "overpunching" one digit: '{' through 'I' carry a
// positive sign, '}' and 'J' through 'R' a negative one.

var overpunchDigits = map[byte]byte{
	'{': '0', 'A': '1', 'B': '2', 'C': '3', 'D': '4',
	'E': '5', 'F': '6', 'G': '7', 'H': '8', 'I': '9',
	'}': '0', 'J': '1', 'K': '2', 'L': '3', 'M': '4',
	'N': '5', 'O': '6', 'P': '7', 'Q': '8', 'R': '9',
}

// OverpunchSign reports the sign encoded in s: 1 if it contains a positive
// overpunch character, -1 if a negative one, 0 if s is not overpunched.
func OverpunchSign(s string) int {
	if strings.ContainsAny(s, "{ABCDEFGHI") {
		return 1
	}
	if strings.ContainsAny(s, "}JKLMNOPQR") {
		return -1
	}
	return 0
}

// DecodeOverpunch translates every overpunch character in s to its digit and
// prefixes a '-' when the encoded sign is negative. Strings without
// overpunch characters are returned unchanged.
func DecodeOverpunch(s string) string {
	sign := OverpunchSign(s)
	if sign == 0 {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if d, ok := overpunchDigits[c]; ok {
			b[i] = d
		}
	}
	if sign < 0 {
		return "-" + string(b)
	}
	return string(b)
}

// ApplyOverpunch rewrites every DECIMAL and INTEGER field of rec whose value
// is overpunched, in place. Other fields are left untouched.
func ApplyOverpunch(rec *Record) {
	for _, f := range rec.Fields() {
		switch f.Type().DataType() {
		case Decimal, Integer:
			if OverpunchSign(f.Value()) != 0 {
				f.SetValue(DecodeOverpunch(f.Value()))
			}
		}
	}
}
