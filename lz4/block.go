// Package lz4 writes LZ77 token streams in the LZ4 block and frame
// formats.
package lz4

import (
	"encoding/binary"

	"github.com/andybalholm/lz77"
)

// Format limits that matter to the match finder.
const (
	MinMatch    = 4
	MaxDistance = 65535
)

// A BlockEncoder implements the lz77.Format interface, writing in the LZ4
// block format.
type BlockEncoder struct{}

func (BlockEncoder) Reset() {}

// Encode appends one LZ4 block to dst. Every copy in matches must be at
// least MinMatch bytes long and no more than MaxDistance bytes back.
func (BlockEncoder) Encode(dst []byte, src []byte, matches []lz77.Match, lastBlock bool) []byte {
	// The block must end with at least 5 literal bytes,
	// and the last match must start at least 12 bytes before the end.
	trailingLiterals := 0
	for len(matches) > 0 && (trailingLiterals < 5 || trailingLiterals+matches[len(matches)-1].Length < 12) {
		lastMatch := matches[len(matches)-1]
		matches = matches[:len(matches)-1]
		trailingLiterals += lastMatch.Unmatched + lastMatch.Length
	}

	pos := 0
	for _, m := range matches {
		token := byte(0)
		if m.Unmatched > 14 {
			token |= 0xf0
		} else {
			token |= byte(m.Unmatched << 4)
		}
		if m.Length > 18 {
			token |= 0x0f
		} else {
			token |= byte(m.Length - MinMatch)
		}
		dst = append(dst, token)

		if m.Unmatched > 14 {
			dst = appendInt(dst, m.Unmatched-15)
		}
		dst = append(dst, src[pos:pos+m.Unmatched]...)

		dst = binary.LittleEndian.AppendUint16(dst, uint16(m.Distance))
		if m.Length > 18 {
			dst = appendInt(dst, m.Length-19)
		}

		pos += m.Unmatched + m.Length
	}

	// The final sequence is literals only.
	token := byte(0)
	if trailingLiterals > 14 {
		token |= 0xf0
	} else {
		token |= byte(trailingLiterals << 4)
	}
	dst = append(dst, token)
	if trailingLiterals > 14 {
		dst = appendInt(dst, trailingLiterals-15)
	}
	dst = append(dst, src[pos:]...)

	return dst
}

// appendInt appends n to dst in LZ4's variable-length integer format.
func appendInt(dst []byte, n int) []byte {
	for n >= 255 {
		dst = append(dst, 255)
		n -= 255
	}
	return append(dst, byte(n))
}

// NewMatchFinder returns a TokenMatchFinder whose output the LZ4 encoders
// can express.
func NewMatchFinder(cfg lz77.Config) *lz77.TokenMatchFinder {
	return &lz77.TokenMatchFinder{
		Config:      cfg,
		MinLength:   MinMatch,
		MaxDistance: MaxDistance,
	}
}
