package commands

import (
	"github.com/spf13/cobra"

	"svw.info/braincruncher/internal/adapters/terminal"
)

func (a *app) showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a saved puzzle with its worked steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.uc.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printPuzzle(cmd, p, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metas, err := a.uc.List(cmd.Context())
			if err != nil {
				return err
			}
			terminal.New(cmd.OutOrStdout(), cmd.InOrStdin()).List(metas)
			return nil
		},
	}
}

func (a *app) profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Print the difficulty presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			terminal.New(cmd.OutOrStdout(), cmd.InOrStdin()).Profiles()
			return nil
		},
	}
}
