package pinset

import "math/rand"

// config is the resolved state every generator reads; Option mutates it.
type config struct {
	rng *rand.Rand
}

// Option customizes a generator's RNG before it runs.
type Option func(*config)

// WithSeed seeds the generator's RNG deterministically. Without it,
// RandomSparse falls back to a fixed default seed (never time-based), so
// pinset never introduces non-determinism on its own — spec.md §5 requires
// the whole system to be deterministic.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG, for callers that want to share one
// source across several generator calls.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pinset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

const defaultSeed = 1

func newConfig(opts ...Option) config {
	cfg := config{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
