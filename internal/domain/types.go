package domain

import (
	"fmt"
	"time"
)

// Profile bounds generated values. StepDurationMs is only read by presenters.
type Profile struct {
	ValueLimit     int `json:"valueLimit"`
	DivisorLimit   int `json:"divisorLimit"`
	StepDurationMs int `json:"stepDurationMs,omitempty"`
}

// StepDuration is how long each step stays on screen.
func (p Profile) StepDuration() time.Duration {
	return time.Duration(p.StepDurationMs) * time.Millisecond
}

// Check rejects profiles the generator cannot work with.
func (p Profile) Check() error {
	if p.ValueLimit < 1 {
		return fmt.Errorf("%w: valueLimit %d < 1", ErrInvalidProfile, p.ValueLimit)
	}
	if p.DivisorLimit < 2 {
		return fmt.Errorf("%w: divisorLimit %d < 2", ErrInvalidProfile, p.DivisorLimit)
	}
	return nil
}

// Operation is a single step applied to the running value.
type Operation struct {
	Kind    OpKind `json:"kind"`
	Operand int    `json:"operand"`
}

// Describe renders the operation the way it is shown to the player.
func Describe(op Operation) string {
	switch op.Kind {
	case Add:
		return fmt.Sprintf("Add %d", op.Operand)
	case Subtract:
		return fmt.Sprintf("Subtract %d", op.Operand)
	case Multiply:
		return fmt.Sprintf("Multiply by %d", op.Operand)
	case Divide:
		return fmt.Sprintf("Divide by %d", op.Operand)
	default:
		return fmt.Sprintf("%s %d", op.Kind, op.Operand)
	}
}

func (op Operation) String() string { return Describe(op) }

// Puzzle is a start value plus the ordered operations the player applies.
// Fallback marks the trivial puzzle returned when the attempt cap is hit.
type Puzzle struct {
	ID         string      `json:"id,omitempty"`
	Seed       int64       `json:"seed,omitempty"`
	Difficulty Difficulty  `json:"difficulty"`
	Profile    Profile     `json:"profile"`
	Start      int         `json:"start"`
	Operations []Operation `json:"operations"`
	Result     int         `json:"result"`
	Fallback   bool        `json:"fallback,omitempty"`
	CreatedAt  int64       `json:"createdAt,omitempty"`
	Name       string      `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Steps      int        `json:"steps"`
	CreatedAt  int64      `json:"createdAt"`
}

// Solution is the replay of a puzzle: Trace[0] is the start value and
// Trace[i] the running value after the i-th operation.
type Solution struct {
	Trace  []int `json:"trace"`
	Result int   `json:"result"`
}

// Violation names one broken puzzle rule. Step is the 1-based operation
// index, or 0 when the rule concerns the puzzle as a whole.
type Violation struct {
	Step    int    `json:"step"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Step == 0 {
		return v.Rule + ": " + v.Message
	}
	return fmt.Sprintf("step %d %s: %s", v.Step, v.Rule, v.Message)
}
