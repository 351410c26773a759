package lz77

import "strconv"

// A TextEncoder is a Format that produces a human-readable representation
// of the LZ77 compression. Literal bytes are copied through, and copies
// are replaced with <Length,Distance> symbols.
type TextEncoder struct{}

func (t TextEncoder) Reset() {}

func (t TextEncoder) Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte {
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = append(dst, src[pos:pos+m.Unmatched]...)
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = append(dst, '<')
			dst = strconv.AppendInt(dst, int64(m.Length), 10)
			dst = append(dst, ',')
			dst = strconv.AppendInt(dst, int64(m.Distance), 10)
			dst = append(dst, '>')
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = append(dst, src[pos:]...)
	}
	return dst
}

// AppendTokenText appends the canonical form of each token to dst, one
// per line, and returns dst.
func AppendTokenText[S comparable](dst []byte, tokens []Token[S]) []byte {
	for _, t := range tokens {
		dst = append(dst, t.String()...)
		dst = append(dst, '\n')
	}
	return dst
}
