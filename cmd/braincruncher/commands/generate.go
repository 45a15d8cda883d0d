package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/braincruncher/internal/adapters/terminal"
	"svw.info/braincruncher/internal/domain"
)

// puzzleFlags select how a new puzzle is built. Any explicit limit turns the
// chosen preset into a custom profile.
type puzzleFlags struct {
	difficulty   string
	seed         int64
	valueLimit   int
	divisorLimit int
	stepMs       int
}

func (f *puzzleFlags) register(cmd *cobra.Command, defaultDifficulty string) {
	cmd.Flags().StringVarP(&f.difficulty, "difficulty", "d", defaultDifficulty, "easy|medium|hard")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().IntVar(&f.valueLimit, "value-limit", 0, "override the preset's value limit")
	cmd.Flags().IntVar(&f.divisorLimit, "divisor-limit", 0, "override the preset's divisor limit")
	cmd.Flags().IntVar(&f.stepMs, "step-ms", 0, "override the preset's step duration in milliseconds")
}

func (a *app) newPuzzle(ctx context.Context, f puzzleFlags) (*domain.Puzzle, error) {
	d, err := domain.ParseDifficulty(f.difficulty)
	if err != nil {
		return nil, err
	}
	if f.valueLimit == 0 && f.divisorLimit == 0 && f.stepMs == 0 {
		p, _, err := a.uc.Generate(ctx, f.seed, d)
		return p, err
	}

	profile, _ := domain.ProfileFor(d)
	if f.valueLimit != 0 {
		profile.ValueLimit = f.valueLimit
	}
	if f.divisorLimit != 0 {
		profile.DivisorLimit = f.divisorLimit
	}
	if f.stepMs != 0 {
		profile.StepDurationMs = f.stepMs
	}
	p, _, err := a.uc.GenerateProfile(ctx, f.seed, profile)
	if err != nil {
		return nil, err
	}
	p.Difficulty = domain.Custom
	return p, nil
}

func (a *app) generateCmd() *cobra.Command {
	var (
		flags  puzzleFlags
		save   bool
		asJSON bool
		name   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle and print it with its worked steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := a.newPuzzle(ctx, flags)
			if err != nil {
				return err
			}
			p.Name = name
			if save {
				if err := a.uc.Save(ctx, p); err != nil {
					return fmt.Errorf("save puzzle: %w", err)
				}
			}
			return a.printPuzzle(cmd, p, asJSON)
		},
	}
	flags.register(cmd, a.cfg.Difficulty)
	cmd.Flags().BoolVar(&save, "save", false, "save the puzzle under --data-dir")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	cmd.Flags().StringVar(&name, "name", "", "optional name stored with the puzzle")
	return cmd
}

func (a *app) printPuzzle(cmd *cobra.Command, p *domain.Puzzle, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	sol, _, err := a.uc.Solve(cmd.Context(), p)
	if err != nil {
		return err
	}
	terminal.New(cmd.OutOrStdout(), cmd.InOrStdin()).Puzzle(p, sol)
	return nil
}
