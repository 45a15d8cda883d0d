package domain

import "errors"

var (
	// ErrInvalidProfile is returned for profiles with valueLimit < 1 or divisorLimit < 2.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrInvalidPuzzle wraps validation failures of stored or supplied puzzles.
	ErrInvalidPuzzle = errors.New("invalid puzzle")
)

const (
	MinSteps = 10
	MaxSteps = 15
)

var presets = map[Difficulty]Profile{
	Easy:   {ValueLimit: 50, DivisorLimit: 10, StepDurationMs: 1500},
	Medium: {ValueLimit: 199, DivisorLimit: 20, StepDurationMs: 2000},
	Hard:   {ValueLimit: 499, DivisorLimit: 40, StepDurationMs: 2500},
}

// Levels lists the named presets in ascending order.
func Levels() []Difficulty { return []Difficulty{Easy, Medium, Hard} }

// ProfileFor returns the preset for d. Custom has no preset.
func ProfileFor(d Difficulty) (Profile, bool) {
	p, ok := presets[d]
	return p, ok
}

// FallbackPuzzle is returned when generation gives up: 1, Add 1, result 2.
func FallbackPuzzle(p Profile) *Puzzle {
	return &Puzzle{
		Profile:    p,
		Start:      1,
		Operations: []Operation{{Kind: Add, Operand: 1}},
		Result:     2,
		Fallback:   true,
	}
}

// IsFallback reports whether pz is exactly the fallback puzzle.
func IsFallback(pz *Puzzle) bool {
	return pz != nil && pz.Fallback && pz.Start == 1 && pz.Result == 2 &&
		len(pz.Operations) == 1 && pz.Operations[0] == Operation{Kind: Add, Operand: 1}
}
