package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"svw.info/braincruncher/internal/config"
	"svw.info/braincruncher/internal/generator"
	"svw.info/braincruncher/internal/infrastructure/storage"
	"svw.info/braincruncher/internal/session"
	"svw.info/braincruncher/internal/solver"
	"svw.info/braincruncher/internal/usecase"
	"svw.info/braincruncher/internal/validator"
)

// app is the state shared by every subcommand once the root has wired it.
type app struct {
	cfg    config.Config
	clock  session.Clock
	logger *slog.Logger
	uc     *usecase.Service
}

func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd(cfg, session.RealClock).ExecuteContext(ctx)
}

func newRootCmd(cfg config.Config, clock session.Clock) *cobra.Command {
	a := &app{cfg: cfg, clock: clock}

	root := &cobra.Command{
		Use:          "braincruncher",
		Short:        "Mental arithmetic recall game",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.wire(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfg.DataDir, "data-dir", cfg.DataDir, "directory for saved puzzles")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")

	root.AddCommand(a.playCmd(), a.generateCmd(), a.showCmd(), a.listCmd(), a.profilesCmd())
	return root
}

// wire providers → use cases
func (a *app) wire(cmd *cobra.Command) error {
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: config.ParseLevel(a.cfg.LogLevel)}))

	st, err := storage.NewFS(a.cfg.DataDir, a.cfg.CacheSize)
	if err != nil {
		return err
	}
	g := generator.NewChainGenerator(a.cfg.MaxAttempts)
	a.uc = usecase.NewService(solver.NewReplaySolver(), g, validator.New(), st, a.logger)
	a.logger.Debug("wired", "dataDir", a.cfg.DataDir, "maxAttempts", g.MaxAttempts)
	return nil
}
