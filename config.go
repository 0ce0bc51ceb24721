package libevents

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config tunes an Emitter.
type Config struct {
	// MaxListeners is the number of listeners per event above which a leak warning
	// is logged. Zero disables the warning.
	MaxListeners int  `env:"LIBEVENTS_MAX_LISTENERS" envDefault:"0"`
	Debug        bool `env:"LIBEVENTS_DEBUG"         envDefault:"false"`
}

// LoadConfigFromEnv reads Config from LIBEVENTS_* environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if cfg.MaxListeners < 0 {
		cfg.MaxListeners = 0
	}
	return cfg, nil
}

type (
	options struct {
		logger Logger
		config Config
	}

	// Option configures NewEmitter.
	Option func(*options)
)

func newOptions(opts ...Option) options {
	o := options{logger: NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewNoopLogger()
	}
	return o
}

// WithConfig replaces the emitter configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets the logger leak warnings and debug traces go to.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxListeners sets the per-event listener count above which a leak warning is
// logged. Zero disables it.
func WithMaxListeners(n int) Option {
	return func(o *options) {
		o.config.MaxListeners = n
	}
}

// WithDebug turns on debug traces of registrations and emits.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.config.Debug = debug
	}
}
