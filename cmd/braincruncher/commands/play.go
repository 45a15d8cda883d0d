package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/braincruncher/internal/adapters/terminal"
	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/session"
)

func (a *app) playCmd() *cobra.Command {
	var (
		flags       puzzleFlags
		id          string
		save        bool
		noCountdown bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Reveal a puzzle step by step, then check your answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var p *domain.Puzzle
			var err error
			if id != "" {
				p, err = a.uc.Load(ctx, id)
			} else {
				p, err = a.newPuzzle(ctx, flags)
			}
			if err != nil {
				return err
			}
			if save && id == "" {
				if err := a.uc.Save(ctx, p); err != nil {
					return fmt.Errorf("save puzzle: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved as %s\n", p.ID)
			}

			s, err := session.New(p.Difficulty, p)
			if err != nil {
				return err
			}
			s.SkipCountdown = noCountdown

			pres := terminal.New(cmd.OutOrStdout(), cmd.InOrStdin())
			events := s.Timeline()
			if err := session.NewRunner(a.clock, a.cfg.ProgressTicks).Run(ctx, events, pres); err != nil {
				return err
			}
			a.logger.Debug("reveal finished", "steps", len(p.Operations), "elapsed", s.Total())

			prompt := events[len(events)-1]
			for {
				answer, err := pres.ReadAnswer()
				if err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				o := s.Check(answer)
				if o.Verdict == session.Invalid {
					pres.Outcome(o, p, nil)
					pres.Show(prompt)
					continue
				}
				sol, _, err := a.uc.Solve(ctx, p)
				if err != nil {
					return err
				}
				pres.Outcome(o, p, sol)
				return nil
			}
		},
	}
	flags.register(cmd, a.cfg.Difficulty)
	cmd.Flags().StringVar(&id, "id", "", "replay a saved puzzle instead of generating one")
	cmd.Flags().BoolVar(&save, "save", false, "save the generated puzzle before playing")
	cmd.Flags().BoolVar(&noCountdown, "no-countdown", false, "skip the Get Ready countdown")
	return cmd
}
