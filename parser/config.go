package parser

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 1000

// Config controls optional parser behavior.
type Config struct {
	// AllowTrailingCommas permits a comma before the closing bracket of
	// parameter lists, argument lists and array literals.
	AllowTrailingCommas bool

	// MaxRecursionDepth bounds how deeply constructs may nest. Deeper input
	// fails with a TooMuchRecursion error instead of exhausting the stack.
	MaxRecursionDepth int
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		AllowTrailingCommas: true,
		MaxRecursionDepth:   DefaultMaxDepth,
	}
}

// Option is a configuration function for a Parser.
type Option func(*Config)

// WithTrailingCommas sets whether trailing commas are accepted in lists.
func WithTrailingCommas(allow bool) Option {
	return func(c *Config) {
		c.AllowTrailingCommas = allow
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxRecursionDepth = depth
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func buildConfig(options []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
