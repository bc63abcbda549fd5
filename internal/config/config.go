// Package config loads the solver's configuration from environment
// variables (struct tags parsed by caarlos0/env), to be overridden by
// explicit CLI flags in cmd/tsplk.
package config

import "github.com/caarlos0/env/v10"

// CandidateKind mirrors candidate.Type as a string so it round-trips
// through environment variables and flags without importing the
// candidate package here.
type CandidateKind string

const (
	CandidateAll            CandidateKind = "all"
	CandidateNearest        CandidateKind = "nearest"
	CandidateAlpha          CandidateKind = "alpha"
	CandidateOptimizedAlpha CandidateKind = "optimized-alpha"
)

// Config is the full set of knobs the CLI exposes, loadable from
// environment variables with TSPLK_ prefixed names and sane defaults.
type Config struct {
	ProblemPath string `env:"TSPLK_PROBLEM_PATH"`

	CandidateKind CandidateKind `env:"TSPLK_CANDIDATE_KIND" envDefault:"optimized-alpha"`
	CandidateK    int           `env:"TSPLK_CANDIDATE_K" envDefault:"5"`

	Trials          int     `env:"TSPLK_TRIALS" envDefault:"10"`
	OptimumLength   int     `env:"TSPLK_OPTIMUM_LENGTH" envDefault:"0"`
	AcceptableError float64 `env:"TSPLK_ACCEPTABLE_ERROR" envDefault:"0.0"`
	Seed            int64   `env:"TSPLK_SEED" envDefault:"0"`

	LogLevel  string `env:"TSPLK_LOG_LEVEL" envDefault:"info"`
	LogJSON   bool   `env:"TSPLK_LOG_JSON" envDefault:"false"`
	Verbose   bool   `env:"TSPLK_VERBOSE" envDefault:"false"`
	MetricsAddr string `env:"TSPLK_METRICS_ADDR" envDefault:""`
}

// Load reads a Config from the environment, applying the envDefault
// tags above for anything unset.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
