package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/almanac/internal/command"
	"github.com/cory-johannsen/almanac/internal/render"
	"github.com/cory-johannsen/almanac/internal/repl"
	"github.com/cory-johannsen/almanac/internal/seed"
	"github.com/cory-johannsen/almanac/internal/server"
	"github.com/cory-johannsen/almanac/internal/storage/migrations"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "almanac",
		Short: "Villager almanac",
		Long: `almanac keeps a catalog of villagers: their birthday, favourite gift and
whether they can marry the player. Run without arguments for the interactive prompt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(configPath)
			if err != nil {
				return err
			}
			defer a.close()
			return a.runPrompt(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	rootCmd.AddCommand(newMigrateCmd(&configPath), newSeedCmd(&configPath))
	return rootCmd
}

// runPrompt prepares the store and runs the prompt until quit or end of input.
func (a *app) runPrompt(ctx context.Context, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	if _, err := a.migrate(migrations.Up, 0); err != nil {
		return err
	}
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if a.cfg.Seed.Enabled {
		roster, err := seed.Load(a.cfg.Seed.File)
		if err != nil {
			return fmt.Errorf("loading roster: %w", err)
		}
		if _, err := seed.Apply(ctx, st, roster, a.logger); err != nil {
			return err
		}
	}

	registry := command.DefaultRegistry()
	dispatcher := command.NewDispatcher(registry, st, a.logger)

	reader, err := a.newReader(in, out, registry)
	if err != nil {
		return err
	}
	session := repl.NewSession(reader, dispatcher, render.NewPrinter(out), a.logger)

	lc := server.NewLifecycle(a.logger)
	lc.Add("prompt", session)
	if h, ok := st.(healthChecker); ok && a.cfg.REPL.HealthInterval > 0 {
		lc.Add("store-health", a.healthTicker(h))
	}

	a.logger.Info("prompt ready",
		zap.String("session", session.ID()),
		zap.String("driver", a.cfg.Store.Driver),
		zap.Duration("startup", time.Since(start)),
	)
	return lc.Run(ctx)
}

// newReader uses the line editor when both ends are terminals and a plain line
// scanner otherwise.
func (a *app) newReader(in io.Reader, out io.Writer, registry *command.Registry) (repl.LineReader, error) {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK && repl.IsTerminal(inFile) && repl.IsTerminal(outFile) {
		return repl.NewTerminalReader(a.cfg.REPL.Prompt, a.cfg.REPL.HistoryFile, repl.Completer(registry))
	}
	return repl.NewPipeReader(in, out, a.cfg.REPL.Prompt), nil
}
