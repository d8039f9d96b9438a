/*
File    : interp/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"unicode"
)

// isWhitespace reports whether c is a space, tab, newline, carriage
// return, form feed or vertical tab.
func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseInt converts a scanned integer literal to its int64 value.
func parseInt(lit string) (int64, error) {
	return strconv.ParseInt(lit, 10, 64)
}

// parseFloat converts a scanned float literal to its float64 value.
func parseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}
