package validator

import (
	"context"
	"fmt"

	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/solver"
)

// Rule names reported in violations.
const (
	RuleProfile     = "profile"
	RuleLength      = "length"
	RuleStart       = "start"
	RuleOperand     = "operand"
	RuleBounds      = "bounds"
	RuleExact       = "exact-division"
	RuleDivisor     = "divisor-limit"
	RuleConsecutive = "consecutive-scaling"
	RuleResult      = "result"
)

type PuzzleValidator struct{}

func New() *PuzzleValidator { return &PuzzleValidator{} }

// Validate walks the chain once and collects every broken rule. The exact
// fallback puzzle is accepted as-is.
func (v *PuzzleValidator) Validate(ctx context.Context, p *domain.Puzzle) (bool, []domain.Violation, error) {
	if p == nil {
		return false, nil, fmt.Errorf("%w: nil puzzle", domain.ErrInvalidPuzzle)
	}
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	if domain.IsFallback(p) {
		return true, nil, nil
	}
	conf := make([]domain.Violation, 0, 4)
	add := func(step int, rule, format string, args ...any) {
		conf = append(conf, domain.Violation{Step: step, Rule: rule, Message: fmt.Sprintf(format, args...)})
	}

	prof := p.Profile
	if err := prof.Check(); err != nil {
		add(0, RuleProfile, "%v", err)
		return false, conf, nil
	}
	limit := prof.ValueLimit

	// shape
	if n := len(p.Operations); n < domain.MinSteps || n > domain.MaxSteps {
		add(0, RuleLength, "%d operations, want %d..%d", n, domain.MinSteps, domain.MaxSteps)
	}
	if p.Start < 1 || p.Start > limit {
		add(0, RuleStart, "start %d outside [1,%d]", p.Start, limit)
	}

	// steps
	running := p.Start
	for i, op := range p.Operations {
		step := i + 1
		if i > 0 && op.Kind.Scaling() && p.Operations[i-1].Kind.Scaling() {
			add(step, RuleConsecutive, "%s follows %s", op.Kind, p.Operations[i-1].Kind)
		}
		switch op.Kind {
		case domain.Multiply:
			if op.Operand < 2 {
				add(step, RuleOperand, "multiply factor %d < 2", op.Operand)
			}
		case domain.Divide:
			if op.Operand < 2 || op.Operand > prof.DivisorLimit {
				add(step, RuleDivisor, "divisor %d outside [2,%d]", op.Operand, prof.DivisorLimit)
			}
			if op.Operand > 0 && running%op.Operand != 0 {
				add(step, RuleExact, "%d is not divisible by %d", running, op.Operand)
				return false, conf, nil
			}
		}
		next, err := solver.Apply(running, op)
		if err != nil {
			add(step, RuleOperand, "%v", err)
			return false, conf, nil
		}
		if next < 0 || next > limit {
			add(step, RuleBounds, "running value %d outside [0,%d]", next, limit)
		}
		running = next
	}

	// result
	if running != p.Result {
		add(0, RuleResult, "replay gives %d, puzzle says %d", running, p.Result)
	}
	return len(conf) == 0, conf, nil
}
