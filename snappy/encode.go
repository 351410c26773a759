// Package snappy writes LZ77 token streams in the Snappy framing format.
package snappy

import (
	"hash/crc32"
	"io"

	"github.com/andybalholm/lz77"
)

// MaxBlockSize is the largest block an Encoder accepts.
const MaxBlockSize = 65536

// An Encoder implements the lz77.Format interface, writing the Snappy
// framing format.
type Encoder struct {
	wroteHeader bool
}

var magicChunk = []byte("\xff\x06\x00\x00sNaPpY")

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// crc implements the checksum specified in section 3 of
// https://github.com/google/snappy/blob/master/framing_format.txt
func crc(b []byte) uint32 {
	c := crc32.Update(0, crcTable, b)
	return uint32(c>>15|c<<17) + 0xa282ead8
}

func (e *Encoder) Reset() {
	e.wroteHeader = false
}

// Encode appends a chunk holding src to dst. Every copy in matches must be
// at least 4 bytes long.
func (e *Encoder) Encode(dst []byte, src []byte, matches []lz77.Match, lastBlock bool) []byte {
	if len(src) > MaxBlockSize {
		panic("block too large")
	}

	if !e.wroteHeader {
		dst = append(dst, magicChunk...)
		e.wroteHeader = true
	}
	if len(src) == 0 {
		return dst
	}

	start := len(dst)
	checksum := crc(src)

	dst = append(dst,
		0,       // chunk type: compressed data
		0, 0, 0, // placeholder for compressed length
		byte(checksum), byte(checksum>>8), byte(checksum>>16), byte(checksum>>24),
	)
	dataStart := len(dst)

	dst = appendUvarint(dst, uint64(len(src)))

	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = appendLiteral(dst, src[pos:pos+m.Unmatched])
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = appendCopy(dst, m.Length, m.Distance)
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = appendLiteral(dst, src[pos:])
	}

	dataLen := len(dst) - dataStart
	if dataLen >= len(src)-len(src)/8 {
		// Not saving even 12.5%; store the block uncompressed.
		dst = append(dst[:dataStart], src...)
		dst[start] = 1 // chunk type: uncompressed data
		dataLen = len(src)
	}

	chunkLen := dataLen + 4
	dst[start+1] = byte(chunkLen)
	dst[start+2] = byte(chunkLen >> 8)
	dst[start+3] = byte(chunkLen >> 16)

	return dst
}

const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
)

func appendLiteral(dst, lit []byte) []byte {
	n := len(lit) - 1
	switch {
	case n < 60:
		dst = append(dst, byte(n)<<2|tagLiteral)
	case n < 1<<8:
		dst = append(dst, 60<<2|tagLiteral, byte(n))
	default:
		dst = append(dst, 61<<2|tagLiteral, byte(n), byte(n>>8))
	}
	return append(dst, lit...)
}

// appendCopy emits a copy of length bytes (at least 4) from offset bytes
// back. Copies of 68 bytes or more are split into 64-byte pieces; a
// leftover of 65..67 is split 60 + rest so that the rest still fits a
// 2-byte tagCopy1.
func appendCopy(dst []byte, length, offset int) []byte {
	for length >= 68 {
		dst = append(dst,
			63<<2|tagCopy2,
			byte(offset),
			byte(offset>>8),
		)
		length -= 64
	}
	if length > 64 {
		dst = append(dst,
			59<<2|tagCopy2,
			byte(offset),
			byte(offset>>8),
		)
		length -= 60
	}
	if length >= 12 || offset >= 2048 {
		return append(dst,
			byte(length-1)<<2|tagCopy2,
			byte(offset),
			byte(offset>>8),
		)
	}
	return append(dst,
		byte(offset>>8)<<5|byte(length-4)<<2|tagCopy1,
		byte(offset),
	)
}

// appendUvarint appends x to dst in varint format.
func appendUvarint(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// NewMatchFinder returns a TokenMatchFinder whose output the Encoder can
// express: copies of at least 4 bytes within a 64 KiB block.
func NewMatchFinder(cfg lz77.Config) *lz77.TokenMatchFinder {
	return &lz77.TokenMatchFinder{
		Config:      cfg,
		MinLength:   4,
		MaxDistance: MaxBlockSize - 1,
	}
}

// NewWriter returns an lz77.Writer that compresses to dst in the Snappy
// framing format, finding matches with cfg.
func NewWriter(dst io.Writer, cfg lz77.Config) *lz77.Writer {
	return &lz77.Writer{
		Dest:        dst,
		MatchFinder: NewMatchFinder(cfg),
		Encoder:     &Encoder{},
		BlockSize:   MaxBlockSize,
	}
}
