package ports

import (
	"context"
	"time"

	"svw.info/braincruncher/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Attempts int
	Fallback bool
	Duration time.Duration
}

// Generator creates new puzzles within a difficulty profile.
type Generator interface {
	Generate(ctx context.Context, seed int64, profile domain.Profile) (*domain.Puzzle, Stats, error)
}

// Solver replays a puzzle and reports every running value.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, Stats, error)
}

// Validator checks a puzzle against its profile (bounds, exact division, ordering).
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) (ok bool, violations []domain.Violation, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
