package lz77

// Default window geometry. They are small enough to make token streams
// easy to read by hand; callers compressing real data will want a much
// larger window.
const (
	DefaultWindowSize    = 13
	DefaultLookaheadSize = 6
)

// Config describes the sliding window used by the encoder.
type Config struct {
	// WindowSize is the total size of the sliding window: search buffer
	// plus lookahead buffer.
	WindowSize int `yaml:"window_size"`

	// LookaheadSize is the part of the window reserved for pending input.
	// It must not exceed WindowSize.
	LookaheadSize int `yaml:"lookahead_size"`

	// MaxMatchLength limits the length of a single copy. If it is 0,
	// a copy may extend up to the symbol before the end of the input.
	MaxMatchLength int `yaml:"max_match_length"`
}

// DefaultConfig returns a Config with DefaultWindowSize and
// DefaultLookaheadSize.
func DefaultConfig() Config {
	return Config{
		WindowSize:    DefaultWindowSize,
		LookaheadSize: DefaultLookaheadSize,
	}
}

// NewConfig returns a validated Config with the given sizes.
func NewConfig(windowSize, lookaheadSize int) (Config, error) {
	c := Config{
		WindowSize:    windowSize,
		LookaheadSize: lookaheadSize,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate returns a *ConfigError if c cannot be used for encoding.
func (c Config) Validate() error {
	var reason string
	switch {
	case c.WindowSize < 0:
		reason = "negative window size"
	case c.LookaheadSize < 0:
		reason = "negative lookahead size"
	case c.LookaheadSize > c.WindowSize:
		reason = "lookahead larger than window"
	case c.MaxMatchLength < 0:
		reason = "negative max match length"
	default:
		return nil
	}
	return &ConfigError{
		WindowSize:     c.WindowSize,
		LookaheadSize:  c.LookaheadSize,
		MaxMatchLength: c.MaxMatchLength,
		Reason:         reason,
	}
}

// SearchCapacity returns how many already-encoded symbols the encoder
// keeps as copy sources.
func (c Config) SearchCapacity() int {
	return c.WindowSize - c.LookaheadSize
}
