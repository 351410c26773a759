package lz77

// FindToken returns the token that best describes the start of input,
// using history as the source of copies.
//
// Every position in history is tried, oldest first, and the longest match
// wins. On a tie the later candidate (the smaller offset) wins. A match
// may run past the end of history into the symbols it has already
// matched, so a run like "aaaa" after a single "a" produces a token whose
// Length exceeds its Offset.
//
// A match never covers the last symbol of input, which becomes the
// indicator. If maxLength > 0, matches are also limited to maxLength
// symbols.
func FindToken[S comparable](input []S, history *Window[S], maxLength int) (Token[S], error) {
	if len(input) == 0 {
		return Token[S]{}, ErrEmptyInput
	}

	limit := len(input) - 1
	if maxLength > 0 && maxLength < limit {
		limit = maxLength
	}

	var best Token[S]
	n := history.Len()
	if limit > 0 {
		for i := 0; i < n; i++ {
			if history.At(i) != input[0] {
				continue
			}
			length := extendMatch(input, history, i, limit)
			if length > 0 && length >= best.Length {
				best.Offset = n - i
				best.Length = length
			}
		}
	}

	best.Indicator = input[best.Length]
	return best, nil
}

// extendMatch returns how many symbols of input match the sequence that
// starts at history position start, up to limit. Positions past the end
// of history continue into input itself, which by then has already been
// matched.
func extendMatch[S comparable](input []S, history *Window[S], start, limit int) int {
	n := history.Len()
	length := 0
	for length < limit {
		var s S
		if p := start + length; p < n {
			s = history.At(p)
		} else {
			s = input[p-n]
		}
		if s != input[length] {
			break
		}
		length++
	}
	return length
}
