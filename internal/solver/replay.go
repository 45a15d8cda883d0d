package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/ports"
)

// ReplaySolver folds a puzzle's operations over its start value with exact
// integer arithmetic.
type ReplaySolver struct{}

func NewReplaySolver() *ReplaySolver { return &ReplaySolver{} }

// Solve returns the running value after every step. It fails on operands a
// generated puzzle can never contain: non-positive values, inexact division.
func (s *ReplaySolver) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if p == nil {
		return nil, ports.Stats{}, errors.New("nil puzzle")
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	trace, err := Replay(p.Start, p.Operations)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	return &domain.Solution{Trace: trace, Result: trace[len(trace)-1]}, ports.Stats{Duration: time.Since(start)}, nil
}

// Replay returns [start, r1, ..., rn].
func Replay(start int, ops []domain.Operation) ([]int, error) {
	trace := make([]int, 0, len(ops)+1)
	trace = append(trace, start)
	running := start
	for i, op := range ops {
		next, err := Apply(running, op)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, domain.Describe(op), err)
		}
		running = next
		trace = append(trace, running)
	}
	return trace, nil
}

// Apply performs one operation on running.
func Apply(running int, op domain.Operation) (int, error) {
	if op.Operand <= 0 {
		return 0, fmt.Errorf("operand %d is not positive", op.Operand)
	}
	switch op.Kind {
	case domain.Add:
		return running + op.Operand, nil
	case domain.Subtract:
		return running - op.Operand, nil
	case domain.Multiply:
		return running * op.Operand, nil
	case domain.Divide:
		if running%op.Operand != 0 {
			return 0, fmt.Errorf("%d is not divisible by %d", running, op.Operand)
		}
		return running / op.Operand, nil
	}
	return 0, fmt.Errorf("unknown operation kind %d", int(op.Kind))
}
