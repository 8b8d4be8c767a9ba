package qsim

type Config struct {
	// Epsilon bounds how far a state's norm may drift from 1 before
	// collapse logs it as unnormalized.
	Epsilon float64
	// Seed is used only when Deterministic is set.
	Seed          uint64
	Deterministic bool
}

func NewConfig() *Config {
	return &Config{
		Epsilon: 1e-9,
	}
}

// Option configures a QuantumComputer
type Option func(*QuantumComputer)

// WithConfig replaces the default configuration.
func WithConfig(config *Config) Option {
	return func(qc *QuantumComputer) {
		qc.config = config
	}
}

// WithSource injects the randomness used by Collapse.
func WithSource(source Source) Option {
	return func(qc *QuantumComputer) {
		qc.source = source
	}
}

// WithSeed makes collapse reproducible.
func WithSeed(seed uint64) Option {
	return func(qc *QuantumComputer) {
		qc.config.Seed = seed
		qc.config.Deterministic = true
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(qc *QuantumComputer) {
		qc.config.Epsilon = epsilon
	}
}
