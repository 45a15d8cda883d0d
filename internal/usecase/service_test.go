package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/generator"
	"svw.info/braincruncher/internal/infrastructure/storage"
	"svw.info/braincruncher/internal/solver"
	"svw.info/braincruncher/internal/usecase"
	"svw.info/braincruncher/internal/validator"
)

func newService(t *testing.T) *usecase.Service {
	t.Helper()
	st, err := storage.NewFS(t.TempDir(), 8)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewService(solver.NewReplaySolver(), generator.NewChainGenerator(0), validator.New(), st, logger)
}

func TestService_GenerateSolveValidate(t *testing.T) {
	uc := newService(t)
	ctx := context.Background()

	p, st, err := uc.Generate(ctx, 2024, domain.Hard)
	require.NoError(t, err)
	assert.Equal(t, domain.Hard, p.Difficulty)
	assert.Equal(t, int64(2024), p.Seed)
	assert.GreaterOrEqual(t, st.Attempts, 1)

	sol, _, err := uc.Solve(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p.Result, sol.Result)
	assert.Len(t, sol.Trace, len(p.Operations)+1)

	ok, violations, err := uc.Validate(ctx, p)
	require.NoError(t, err)
	assert.True(t, ok, "violations: %v", violations)
}

func TestService_GenerateZeroSeedPicksOne(t *testing.T) {
	p, _, err := newService(t).Generate(context.Background(), 0, domain.Easy)
	require.NoError(t, err)
	assert.NotZero(t, p.Seed)
}

func TestService_GenerateCustomNeedsProfile(t *testing.T) {
	_, _, err := newService(t).Generate(context.Background(), 1, domain.Custom)
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)

	_, _, err = newService(t).GenerateProfile(context.Background(), 1, domain.Profile{ValueLimit: 0, DivisorLimit: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}

func TestService_SaveLoadList(t *testing.T) {
	uc := newService(t)
	ctx := context.Background()

	p, _, err := uc.Generate(ctx, 7, domain.Medium)
	require.NoError(t, err)
	p.CreatedAt = 0
	require.NoError(t, uc.Save(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.NotZero(t, p.CreatedAt)

	got, err := uc.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Operations, got.Operations)
	assert.Equal(t, p.Result, got.Result)

	metas, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, p.ID, metas[0].ID)
}

func TestService_LoadRejectsTamperedPuzzle(t *testing.T) {
	uc := newService(t)
	ctx := context.Background()

	p, _, err := uc.Generate(ctx, 11, domain.Easy)
	require.NoError(t, err)
	p.Result++
	require.NoError(t, uc.Save(ctx, p))

	_, err = uc.Load(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidPuzzle)
}

func TestService_NotConfigured(t *testing.T) {
	uc := usecase.NewService(nil, nil, nil, nil, nil)
	ctx := context.Background()
	_, _, err := uc.Generate(ctx, 1, domain.Easy)
	assert.Error(t, err)
	_, _, err = uc.Solve(ctx, &domain.Puzzle{})
	assert.Error(t, err)
	_, err = uc.List(ctx)
	assert.Error(t, err)
}
