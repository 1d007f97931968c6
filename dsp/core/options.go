package core

// DefaultPeriod is the signal period assumed by callers that have no better value.
const DefaultPeriod = 1.0

// Config defines the numeric resolution shared by analysis and resynthesis.
type Config struct {
	// Step is the trapezoid width used by quadrature.
	Step float64
	// SampleStep is the time step between resynthesized curve samples.
	SampleStep float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the resolution used when no options are given.
func DefaultConfig() Config {
	return Config{
		Step:       0.01,
		SampleStep: 0.1,
	}
}

// WithStep sets the quadrature step.
func WithStep(step float64) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.Step = step
		}
	}
}

// WithSampleStep sets the resynthesis sample step.
func WithSampleStep(dt float64) Option {
	return func(cfg *Config) {
		if dt > 0 {
			cfg.SampleStep = dt
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
