package lz77

// Tokens are convenient for reasoning about LZ77, but container formats
// such as Snappy and LZ4 think in terms of runs of literal bytes followed
// by copies. The types in this file are that intermediate representation,
// and the interfaces that let match finding and output encoding be mixed
// and matched.

// A Match is a run of literal bytes followed by a copy.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the LZ77 stage of compression, looking for matches.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	FindMatches(dst []Match, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

// A Format encodes the data in its final format.
type Format interface {
	// Encode appends the encoded format of src to dst, using the match
	// information from matches.
	Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte

	// Reset clears any internal state, preparing the Format to be used with
	// a new stream.
	Reset()
}
