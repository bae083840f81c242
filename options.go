package plltrainer

import (
	"go.uber.org/zap"

	"github.com/SeamusWaldron/pll_trainer/internal/config"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
)

// Option configures a Trainer.
type Option func(*options)

type options struct {
	target     config.TargetParameters
	worstCases int
	logger     *zap.Logger
}

func defaultOptions() *options {
	return &options{
		target:     config.DefaultTargetParameters(),
		worstCases: stats.DefaultWorstCases,
		logger:     zap.NewNop(),
	}
}

// WithTargetParameters sets the speed attempts are compared against.
// New fails if either parameter is not positive.
func WithTargetParameters(target config.TargetParameters) Option {
	return func(o *options) {
		o.target = target
	}
}

// WithWorstCases sets how many cases WorstCases returns.
func WithWorstCases(n int) Option {
	return func(o *options) {
		o.worstCases = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies the target parameters and worst case count of a loaded
// configuration.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.target = cfg.Target
		o.worstCases = cfg.WorstCases
	}
}
