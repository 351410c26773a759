package lz77

import "io"

// A Writer uses a MatchFinder and a Format to compress data written to it.
// Data is collected into blocks of BlockSize bytes; each full block is
// compressed and written to Dest.
type Writer struct {
	Dest        io.Writer
	MatchFinder MatchFinder
	Encoder     Format
	BlockSize   int // the default is 65536

	inBuf   []byte
	outBuf  []byte
	matches []Match
	err     error
}

func (w *Writer) blockSize() int {
	if w.BlockSize <= 0 {
		return 1 << 16
	}
	return w.BlockSize
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}

	for len(p) > 0 {
		free := w.blockSize() - len(w.inBuf)
		if free > len(p) {
			free = len(p)
		}
		w.inBuf = append(w.inBuf, p[:free]...)
		p = p[free:]
		n += free

		if len(w.inBuf) == w.blockSize() && len(p) > 0 {
			// Only flush when there is more to come, so that Close can
			// mark the final block.
			if err := w.writeBlock(false); err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

func (w *Writer) writeBlock(lastBlock bool) error {
	w.matches = w.MatchFinder.FindMatches(w.matches[:0], w.inBuf)
	w.outBuf = w.Encoder.Encode(w.outBuf[:0], w.inBuf, w.matches, lastBlock)
	_, w.err = w.Dest.Write(w.outBuf)
	w.inBuf = w.inBuf[:0]
	return w.err
}

// Close compresses any buffered data as the last block. It does not close
// Dest.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.writeBlock(true); err != nil {
		return err
	}
	w.err = errClosed
	return nil
}

// Reset discards the Writer's state and makes it write to dst, as if it
// had just been created.
func (w *Writer) Reset(dst io.Writer) {
	w.MatchFinder.Reset()
	w.Encoder.Reset()
	w.err = nil
	w.inBuf = w.inBuf[:0]
	w.outBuf = w.outBuf[:0]
	w.matches = w.matches[:0]
	w.Dest = dst
}
