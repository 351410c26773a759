package lz4

import (
	"encoding/binary"
	"hash"
	"io"

	"github.com/andybalholm/lz77"
	"github.com/pierrec/xxHash/xxHash32"
)

const frameMagic = 0x184D2204

// A FrameEncoder implements the lz77.Format interface,
// writing in the LZ4 frame format.
type FrameEncoder struct {
	hasher      hash.Hash32
	blockBuffer []byte
}

func (f *FrameEncoder) Reset() {
	f.hasher = nil
}

func (f *FrameEncoder) Encode(dst []byte, src []byte, matches []lz77.Match, lastBlock bool) []byte {
	if f.hasher == nil {
		f.hasher = xxHash32.New(0)
		dst = binary.LittleEndian.AppendUint32(dst, frameMagic)
		// Frame header for content checksum enabled, and 4-MB blocks.
		dst = append(dst, 0x44, 0x70, 0x1d)
	}

	if len(src) > 0 {
		var be BlockEncoder
		f.blockBuffer = be.Encode(f.blockBuffer[:0], src, matches, lastBlock)
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(f.blockBuffer)))
		dst = append(dst, f.blockBuffer...)

		f.hasher.Write(src)
	}

	if lastBlock {
		dst = append(dst, 0, 0, 0, 0)
		dst = binary.LittleEndian.AppendUint32(dst, f.hasher.Sum32())
	}

	return dst
}

// NewWriter returns an lz77.Writer that compresses to dst in the LZ4
// frame format, finding matches with cfg.
func NewWriter(dst io.Writer, cfg lz77.Config) *lz77.Writer {
	return &lz77.Writer{
		Dest:        dst,
		MatchFinder: NewMatchFinder(cfg),
		Encoder:     &FrameEncoder{},
		BlockSize:   1 << 16,
	}
}
