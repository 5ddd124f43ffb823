// Package seg7 provides the 7-segment character encoding used by the TM1628 driver.
//
// Codes use the conventional bit order: bit 0 drives segment a through bit 6
// segment g. Bytes without a glyph map to 0 and render as a blank digit.
package seg7

// Code is a 7-segment pattern. Bit 0 lights segment a, bit 6 segment g;
// the top bit is unused.
type Code uint8

// Segment bits, in the conventional labeling:
//
//	 aaa
//	f   b
//	f   b
//	 ggg
//	e   c
//	e   c
//	 ddd
const (
	SegA Code = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

// Char returns the pattern for c. Control bytes, DEL and anything outside
// ASCII have no glyph and return 0.
func Char(c byte) Code {
	if c < ' ' || c > '~' {
		return 0
	}
	return alphanum[c-' ']
}

// alphanum covers ASCII 0x20..0x7E, following the Linux console alphanumeric
// map: letters keep their case where a 7-segment glyph can express it, symbols
// are best-effort approximations. Space stays zero.
var alphanum = [95]Code{
	'!' - ' ':  SegE | SegF,
	'"' - ' ':  SegB | SegF,
	'#' - ' ':  SegB | SegC | SegE | SegF,
	'$' - ' ':  SegA | SegC | SegD | SegF | SegG,
	'%' - ' ':  SegC | SegF,
	'&' - ' ':  SegA | SegC | SegD | SegE | SegF | SegG,
	'\'' - ' ': SegF,
	'(' - ' ':  SegA | SegD | SegE | SegF,
	')' - ' ':  SegA | SegB | SegC | SegD,
	'*' - ' ':  SegB | SegC | SegE | SegF | SegG,
	'+' - ' ':  SegB | SegC | SegG,
	',' - ' ':  SegE,
	'-' - ' ':  SegG,
	'.' - ' ':  SegE,
	'/' - ' ':  SegB | SegE | SegG,
	'0' - ' ':  SegA | SegB | SegC | SegD | SegE | SegF,
	'1' - ' ':  SegB | SegC,
	'2' - ' ':  SegA | SegB | SegD | SegE | SegG,
	'3' - ' ':  SegA | SegB | SegC | SegD | SegG,
	'4' - ' ':  SegB | SegC | SegF | SegG,
	'5' - ' ':  SegA | SegC | SegD | SegF | SegG,
	'6' - ' ':  SegA | SegC | SegD | SegE | SegF | SegG,
	'7' - ' ':  SegA | SegB | SegC,
	'8' - ' ':  SegA | SegB | SegC | SegD | SegE | SegF | SegG,
	'9' - ' ':  SegA | SegB | SegC | SegD | SegF | SegG,
	':' - ' ':  SegD | SegG,
	';' - ' ':  SegD | SegG,
	'<' - ' ':  SegA | SegF | SegG,
	'=' - ' ':  SegD | SegG,
	'>' - ' ':  SegA | SegB | SegG,
	'?' - ' ':  SegA | SegB | SegC | SegF,
	'@' - ' ':  SegA | SegB | SegD | SegE | SegF | SegG,
	'A' - ' ':  SegA | SegB | SegC | SegE | SegF | SegG,
	'B' - ' ':  SegC | SegD | SegE | SegF | SegG, // lowercase glyph
	'C' - ' ':  SegA | SegD | SegE | SegF,
	'D' - ' ':  SegB | SegC | SegD | SegE | SegG, // lowercase glyph
	'E' - ' ':  SegA | SegD | SegE | SegF | SegG,
	'F' - ' ':  SegA | SegE | SegF | SegG,
	'G' - ' ':  SegA | SegB | SegC | SegD | SegF | SegG,
	'H' - ' ':  SegB | SegC | SegE | SegF | SegG,
	'I' - ' ':  SegB | SegC,
	'J' - ' ':  SegB | SegC | SegD,
	'K' - ' ':  SegB | SegC | SegE | SegF | SegG,
	'L' - ' ':  SegD | SegE | SegF,
	'M' - ' ':  SegA | SegB | SegC | SegE | SegF,
	'N' - ' ':  SegA | SegB | SegC | SegE | SegF,
	'O' - ' ':  SegA | SegB | SegC | SegD | SegE | SegF,
	'P' - ' ':  SegA | SegB | SegE | SegF | SegG,
	'Q' - ' ':  SegA | SegB | SegC | SegD | SegE | SegF | SegG,
	'R' - ' ':  SegA | SegB | SegE | SegF,
	'S' - ' ':  SegA | SegC | SegD | SegF | SegG,
	'T' - ' ':  SegD | SegE | SegF | SegG,
	'U' - ' ':  SegB | SegC | SegD | SegE | SegF,
	'V' - ' ':  SegB | SegC | SegD | SegE | SegF,
	'W' - ' ':  SegB | SegC | SegD | SegE | SegF | SegG,
	'X' - ' ':  SegB | SegC | SegE | SegF | SegG,
	'Y' - ' ':  SegB | SegC | SegD | SegF | SegG,
	'Z' - ' ':  SegA | SegB | SegD | SegE | SegG,
	'[' - ' ':  SegA | SegD | SegE | SegF,
	'\\' - ' ': SegC | SegF | SegG,
	']' - ' ':  SegA | SegB | SegC | SegD,
	'^' - ' ':  SegA | SegB | SegF,
	'_' - ' ':  SegD,
	'`' - ' ':  SegB,
	'a' - ' ':  SegA | SegB | SegC | SegE | SegF | SegG,
	'b' - ' ':  SegC | SegD | SegE | SegF | SegG,
	'c' - ' ':  SegD | SegE | SegG,
	'd' - ' ':  SegB | SegC | SegD | SegE | SegG,
	'e' - ' ':  SegA | SegD | SegE | SegF | SegG,
	'f' - ' ':  SegA | SegE | SegF | SegG,
	'g' - ' ':  SegA | SegB | SegC | SegD | SegF | SegG,
	'h' - ' ':  SegC | SegE | SegF | SegG,
	'i' - ' ':  SegC,
	'j' - ' ':  SegC | SegD,
	'k' - ' ':  SegC | SegE | SegF | SegG,
	'l' - ' ':  SegD | SegE | SegF,
	'm' - ' ':  SegA | SegB | SegC | SegE | SegF,
	'n' - ' ':  SegC | SegE | SegG,
	'o' - ' ':  SegC | SegD | SegE | SegG,
	'p' - ' ':  SegA | SegB | SegE | SegF | SegG,
	'q' - ' ':  SegA | SegB | SegC | SegF | SegG,
	'r' - ' ':  SegE | SegG,
	's' - ' ':  SegA | SegC | SegD | SegF | SegG,
	't' - ' ':  SegD | SegE | SegF | SegG,
	'u' - ' ':  SegC | SegD | SegE,
	'v' - ' ':  SegC | SegD | SegE,
	'w' - ' ':  SegB | SegC | SegD | SegE | SegF | SegG,
	'x' - ' ':  SegB | SegC | SegE | SegF | SegG,
	'y' - ' ':  SegB | SegC | SegD | SegF | SegG,
	'z' - ' ':  SegA | SegB | SegD | SegE | SegG,
	'{' - ' ':  SegA | SegD | SegE | SegF,
	'|' - ' ':  SegE | SegF,
	'}' - ' ':  SegA | SegB | SegC | SegD,
	'~' - ' ':  SegA,
}
