package lz77

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the match finder is asked for a token
// with no input left. Encode never triggers it; it returns an empty token
// stream for empty input.
var ErrEmptyInput = errors.New("lz77: empty input")

// EmptyInputError is an alias kept for callers that match on the name
// used in the algorithm's description.
var EmptyInputError = ErrEmptyInput

// A ConfigError reports a window/lookahead combination that cannot be
// used for encoding.
type ConfigError struct {
	WindowSize     int
	LookaheadSize  int
	MaxMatchLength int
	Reason         string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("lz77: invalid config (window %d, lookahead %d, max match %d): %s",
		e.WindowSize, e.LookaheadSize, e.MaxMatchLength, e.Reason)
}

// An InvalidTokenError reports a token that cannot be decoded against the
// output produced before it.
type InvalidTokenError struct {
	Index     int // position of the token in the stream
	Offset    int
	Length    int
	Available int // output length when the token was reached
	Reason    string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("lz77: invalid token %d (%d, %d) with %d symbols of output: %s",
		e.Index, e.Offset, e.Length, e.Available, e.Reason)
}

var errClosed = errors.New("lz77: writer is closed")
