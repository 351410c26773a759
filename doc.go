// Package lz77 implements sliding-window dictionary compression in the
// style of Lempel and Ziv's 1977 algorithm.
//
// Encode turns a sequence of symbols into a sequence of tokens. Each Token
// says "copy Length symbols starting Offset symbols back, then append
// Indicator". Decode replays the tokens to rebuild the input exactly:
//
//	cfg := lz77.DefaultConfig() // window 13, lookahead 6
//	tokens, err := lz77.Encode([]byte("cabracadabrarrarrad"), cfg)
//	// (0, 0, c) (0, 0, a) (0, 0, b) (0, 0, r) (3, 1, c) (2, 1, d) (7, 4, r) (3, 5, d)
//	out, err := lz77.Decode(tokens)
//
// Symbols may be any comparable type: bytes, runes, or anything else that
// can be tested for equality.
//
// The token stream is not a serialized format. For byte streams, the
// package also defines an intermediate representation (Match) and the
// interfaces (MatchFinder, Format) that let the tokens be written in
// existing container formats; see the snappy and lz4 subpackages, and
// Writer for the streaming glue.
package lz77
