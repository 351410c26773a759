package lz77

// Decode rebuilds the symbol sequence described by tokens. It returns an
// *InvalidTokenError, and no output, if any token refers to output that
// does not exist.
func Decode[S comparable](tokens []Token[S]) ([]S, error) {
	out, err := AppendDecoded(nil, tokens)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendDecoded decodes tokens onto the end of dst and returns the
// extended slice. Offsets are measured from the end of dst, so a stream
// encoded in chunks with Encoder.AppendTokens can be decoded in the same
// chunks. On error, dst is returned with its original length.
func AppendDecoded[S comparable](dst []S, tokens []Token[S]) ([]S, error) {
	start := len(dst)
	out := dst

	for i, t := range tokens {
		if err := t.Validate(); err != nil {
			e := err.(*InvalidTokenError)
			e.Index = i
			e.Available = len(out)
			return dst[:start], e
		}
		if t.Offset > len(out) {
			return dst[:start], &InvalidTokenError{
				Index:     i,
				Offset:    t.Offset,
				Length:    t.Length,
				Available: len(out),
				Reason:    "offset before start of output",
			}
		}

		from := len(out) - t.Offset
		if t.Offset >= t.Length {
			out = append(out, out[from:from+t.Length]...)
		} else {
			// The copy overlaps its own output, so each symbol must be
			// in place before it is read.
			for k := 0; k < t.Length; k++ {
				out = append(out, out[from+k])
			}
		}
		out = append(out, t.Indicator)
	}

	return out, nil
}
