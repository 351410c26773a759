package lz77

import (
	"fmt"
	"strconv"
)

// A Token is the basic unit of LZ77 compression. It describes Length+1
// output symbols: a copy of Length symbols starting Offset symbols back
// from the current end of the output, followed by the literal Indicator.
//
// A Token with Length 0 is a pure literal and has Offset 0.
type Token[S comparable] struct {
	Offset    int // how far back in the output to copy from
	Length    int // the number of symbols to copy
	Indicator S   // the literal symbol that follows the copy
}

// Literal returns the token that emits sym with no copy.
func Literal[S comparable](sym S) Token[S] {
	return Token[S]{Indicator: sym}
}

// Span returns the number of output symbols t describes.
func (t Token[S]) Span() int {
	return t.Length + 1
}

// Validate reports whether t is well-formed on its own, without regard
// to how much output precedes it.
func (t Token[S]) Validate() error {
	switch {
	case t.Offset < 0 || t.Length < 0:
		return &InvalidTokenError{Offset: t.Offset, Length: t.Length, Reason: "negative field"}
	case t.Length == 0 && t.Offset != 0:
		return &InvalidTokenError{Offset: t.Offset, Length: t.Length, Reason: "offset without a copy"}
	case t.Length > 0 && t.Offset == 0:
		return &InvalidTokenError{Offset: t.Offset, Length: t.Length, Reason: "copy with zero offset"}
	}
	return nil
}

// String returns the canonical form "(offset, length, indicator)".
// Byte and rune indicators are printed as characters.
func (t Token[S]) String() string {
	return "(" + strconv.Itoa(t.Offset) + ", " + strconv.Itoa(t.Length) + ", " + symbolString(t.Indicator) + ")"
}

func symbolString(sym any) string {
	switch s := sym.(type) {
	case byte:
		if s < 0x20 || s >= 0x7f {
			return fmt.Sprintf("\\x%02x", s)
		}
		return string(rune(s))
	case rune:
		if !strconv.IsPrint(s) {
			return strconv.QuoteRuneToASCII(s)
		}
		return string(s)
	case string:
		return s
	}
	return fmt.Sprint(sym)
}
