package lz77

// An Encoder turns symbols into tokens. It keeps its search buffer
// between calls to AppendTokens, so a long input can be encoded in
// chunks; no token spans two chunks.
//
// An Encoder is not safe for concurrent use.
type Encoder[S comparable] struct {
	cfg     Config
	history *Window[S]
}

// NewEncoder returns an Encoder using cfg.
func NewEncoder[S comparable](cfg Config) (*Encoder[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Encoder[S]{
		cfg:     cfg,
		history: NewWindow[S](cfg.SearchCapacity()),
	}, nil
}

// Config returns the configuration e was created with.
func (e *Encoder[S]) Config() Config {
	return e.cfg
}

// Reset clears the search buffer, preparing e to be used with a new
// stream.
func (e *Encoder[S]) Reset() {
	e.history.Reset()
}

// AppendTokens encodes input, appends the tokens to dst, and returns dst.
func (e *Encoder[S]) AppendTokens(dst []Token[S], input []S) ([]Token[S], error) {
	pos := 0
	for pos < len(input) {
		t, err := FindToken(input[pos:], e.history, e.cfg.MaxMatchLength)
		if err != nil {
			return dst, err
		}
		next := pos + t.Span()
		e.history.Append(input[pos:next]...)
		pos = next
		dst = append(dst, t)
	}
	return dst, nil
}

// Encode returns the token stream for input. Empty input gives an empty
// stream.
func Encode[S comparable](input []S, cfg Config) ([]Token[S], error) {
	e, err := NewEncoder[S](cfg)
	if err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, nil
	}
	return e.AppendTokens(make([]Token[S], 0, len(input)/4+1), input)
}
