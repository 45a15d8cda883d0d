package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/ports"
)

var (
	plainKinds = []domain.OpKind{domain.Add, domain.Subtract}
	allKinds   = []domain.OpKind{domain.Add, domain.Subtract, domain.Multiply, domain.Divide}
)

// Generate creates a puzzle for profile from a private source seeded with seed.
func (g *ChainGenerator) Generate(ctx context.Context, seed int64, profile domain.Profile) (*domain.Puzzle, ports.Stats, error) {
	rng := rand.New(rand.NewSource(seed))
	p, st, err := g.GenerateFrom(ctx, rng, profile)
	if err != nil {
		return nil, st, err
	}
	p.Seed = seed
	return p, st, nil
}

// GenerateFrom creates a puzzle drawing all randomness from src.
// A failed step discards the whole attempt; after MaxAttempts the fallback
// puzzle is returned. The context is checked between attempts.
func (g *ChainGenerator) GenerateFrom(ctx context.Context, src Source, profile domain.Profile) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := profile.Check(); err != nil {
		return nil, ports.Stats{}, err
	}
	maxAttempts := g.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Attempts: attempt - 1, Duration: time.Since(start)}, err
		}
		startValue := weightedChoice(src, 1, profile.ValueLimit)
		ops, result, ok := buildChain(src, profile, startValue)
		if !ok {
			continue
		}
		p := &domain.Puzzle{
			Profile:    profile,
			Start:      startValue,
			Operations: ops,
			Result:     result,
			CreatedAt:  time.Now().UnixNano(),
		}
		return p, ports.Stats{Attempts: attempt, Duration: time.Since(start)}, nil
	}

	p := domain.FallbackPuzzle(profile)
	p.CreatedAt = time.Now().UnixNano()
	return p, ports.Stats{Attempts: maxAttempts, Fallback: true, Duration: time.Since(start)}, nil
}

// buildChain runs one attempt from startValue. ok is false when any step
// has no legal operand.
func buildChain(src Source, profile domain.Profile, startValue int) ([]domain.Operation, int, bool) {
	length := domain.MinSteps + src.Intn(domain.MaxSteps-domain.MinSteps+1)
	ops := make([]domain.Operation, 0, length)
	running := startValue
	prevScaling := false

	for len(ops) < length {
		kinds := allKinds
		if prevScaling {
			kinds = plainKinds
		}
		kind := kinds[src.Intn(len(kinds))]

		operand, next, ok := step(src, profile, kind, running)
		if !ok {
			return nil, 0, false
		}
		ops = append(ops, domain.Operation{Kind: kind, Operand: operand})
		running = next
		prevScaling = kind.Scaling()
	}
	return ops, running, true
}

// step picks an operand for kind and applies it to running.
func step(src Source, profile domain.Profile, kind domain.OpKind, running int) (operand, next int, ok bool) {
	limit := profile.ValueLimit
	switch kind {
	case domain.Add:
		room := limit - running
		if room <= 0 {
			return 0, 0, false
		}
		operand = weightedChoice(src, 1, room)
		return operand, running + operand, true

	case domain.Subtract:
		if running <= 0 {
			return 0, 0, false
		}
		operand = 1 + src.Intn(running)
		return operand, running - operand, true

	case domain.Multiply:
		if running <= 0 {
			return 0, 0, false
		}
		maxFactor := limit / running
		if maxFactor <= 1 {
			return 0, 0, false
		}
		operand = weightedChoice(src, 2, maxFactor)
		return operand, running * operand, true

	case domain.Divide:
		divisors := exactDivisors(running, profile)
		if len(divisors) == 0 {
			return 0, 0, false
		}
		operand = divisors[src.Intn(len(divisors))]
		return operand, running / operand, true
	}
	return 0, 0, false
}

// exactDivisors lists d in [2, min(running, divisorLimit)] dividing running
// with a quotient inside the value limit.
func exactDivisors(running int, profile domain.Profile) []int {
	hi := min(running, profile.DivisorLimit)
	var out []int
	for d := 2; d <= hi; d++ {
		if running%d == 0 && running/d <= profile.ValueLimit {
			out = append(out, d)
		}
	}
	return out
}
