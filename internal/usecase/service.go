package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage
	Logger    *slog.Logger
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, st ports.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Solver: s, Generator: g, Validator: v, Storage: st, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Generate builds a puzzle for a named difficulty. seed 0 picks a time-based seed.
func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	profile, ok := domain.ProfileFor(d)
	if !ok {
		return nil, ports.Stats{}, fmt.Errorf("%w: no preset for difficulty %s", domain.ErrInvalidProfile, d)
	}
	p, st, err := u.GenerateProfile(ctx, seed, profile)
	if err != nil {
		return nil, st, err
	}
	p.Difficulty = d
	return p, st, nil
}

// GenerateProfile builds a puzzle for explicit limits.
func (u *Service) GenerateProfile(ctx context.Context, seed int64, profile domain.Profile) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := u.Generator.Generate(ctx, seed, profile)
	if err != nil {
		return nil, st, err
	}
	if st.Fallback {
		u.Logger.Warn("generation hit attempt cap, using fallback puzzle",
			"seed", seed, "valueLimit", profile.ValueLimit, "attempts", st.Attempts)
	} else {
		u.Logger.Debug("generated puzzle",
			"seed", seed, "start", p.Start, "steps", len(p.Operations),
			"attempts", st.Attempts, "dur", st.Duration)
	}
	return p, st, nil
}

func (u *Service) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, p)
}

func (u *Service) Validate(ctx context.Context, p *domain.Puzzle) (bool, []domain.Violation, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, p)
}

// Persistence

// Save assigns an ID and creation time when missing and stores p.
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p == nil {
		return fmt.Errorf("%w: nil puzzle", domain.ErrInvalidPuzzle)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := u.Storage.Save(ctx, p); err != nil {
		return err
	}
	u.Logger.Debug("saved puzzle", "id", p.ID, "difficulty", p.Difficulty)
	return nil
}

// Load fetches a stored puzzle and rejects it when it breaks any puzzle rule.
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	p, err := u.Storage.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Validator != nil {
		ok, violations, err := u.Validator.Validate(ctx, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			msgs := make([]string, len(violations))
			for i, v := range violations {
				msgs[i] = v.String()
			}
			return nil, fmt.Errorf("%w %s: %s", domain.ErrInvalidPuzzle, id, strings.Join(msgs, "; "))
		}
	}
	return p, nil
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
