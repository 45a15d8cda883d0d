package generator

// DefaultMaxAttempts caps the whole-chain retries before the fallback puzzle is returned.
const DefaultMaxAttempts = 10000

// ChainGenerator builds puzzles as random operation chains bounded by a profile.
type ChainGenerator struct {
	MaxAttempts int
}

// NewChainGenerator wires a generator with the given attempt cap (<= 0 means DefaultMaxAttempts).
func NewChainGenerator(maxAttempts int) *ChainGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &ChainGenerator{MaxAttempts: maxAttempts}
}

// Note: Generate and GenerateFrom live in chain.go, sampling helpers in weighted.go.
