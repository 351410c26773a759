package lz77

// AppendMatches converts a byte token stream to Matches, appends them to
// dst, and returns dst.
//
// Copies shorter than minLength, or farther back than maxDistance (if it
// is positive), are turned into literals, since most formats cannot
// express them. Each token's indicator becomes one unmatched byte. The
// last Match has Length 0 if the stream ends in literals.
func AppendMatches(dst []Match, tokens []Token[byte], minLength, maxDistance int) []Match {
	unmatched := 0

	for _, t := range tokens {
		usable := t.Length > 0 && t.Length >= minLength &&
			(maxDistance <= 0 || t.Offset <= maxDistance)
		if !usable {
			unmatched += t.Span()
			continue
		}
		dst = append(dst, Match{
			Unmatched: unmatched,
			Length:    t.Length,
			Distance:  t.Offset,
		})
		unmatched = 1
	}

	if unmatched > 0 {
		dst = append(dst, Match{
			Unmatched: unmatched,
		})
	}
	return dst
}

// A TokenMatchFinder implements MatchFinder with the greedy sliding-window
// Encoder. Each block passed to FindMatches is encoded independently.
type TokenMatchFinder struct {
	// Config is the window configuration. The zero value means
	// DefaultConfig.
	Config Config

	// MinLength is the shortest copy to report. Shorter copies become
	// literals.
	MinLength int

	// MaxDistance is the farthest copy to report, if it is positive.
	MaxDistance int

	enc    *Encoder[byte]
	tokens []Token[byte]
}

func (q *TokenMatchFinder) Reset() {
	if q.enc != nil {
		q.enc.Reset()
	}
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
// It panics if q.Config is invalid.
func (q *TokenMatchFinder) FindMatches(dst []Match, src []byte) []Match {
	if q.enc == nil {
		cfg := q.Config
		if cfg == (Config{}) {
			cfg = DefaultConfig()
		}
		enc, err := NewEncoder[byte](cfg)
		if err != nil {
			panic(err)
		}
		q.enc = enc
	}
	q.enc.Reset()

	var err error
	q.tokens, err = q.enc.AppendTokens(q.tokens[:0], src)
	if err != nil {
		panic(err)
	}
	return AppendMatches(dst, q.tokens, q.MinLength, q.MaxDistance)
}
