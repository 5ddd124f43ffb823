// Package seg7 provides the ASCII to 7-segment encoding for the TM1628 display driver.
//
// A 7-segment digit is made of seven bars labeled a through g:
//
//	 aaa
//	f   b
//	f   b
//	 ggg
//	e   c
//	e   c
//	 ddd
//
// A Code packs those bars into one byte, bit 0 = a through bit 6 = g. '1'
// lights b and c, so Char('1') == SegB|SegC == 0x06; '8' lights everything,
// so Char('8') == 0x7F.
//
// The table covers the printable ASCII range and matches the alphanumeric map
// used by Linux console 7-segment displays: digits and uppercase hex letters
// have their familiar glyphs, the rest are approximations (an 'M' and an 'N'
// are the same three-bar shape, 'v' reuses 'u'). Anything without an entry is
// blank, not an error — callers render unknown bytes as an empty digit.
//
// Codes are device independent. Translating a Code to the physical bits of a
// particular board (which output pin is wired to which bar) is the display
// driver's job, not this package's.
//
// Example usage:
//
//	code := seg7.Char('3')
//	if code&seg7.SegG != 0 {
//		// the middle bar is lit
//	}
package seg7
