package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/almanac/internal/storage/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back the characters schema",
		Long: `migrate moves the configured database's schema up (the default) or down.
--steps limits the number of migrations applied; 0 applies all of them.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(migrations.Up), string(migrations.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := migrations.Up
			if len(args) == 1 {
				d, err := migrations.ParseDirection(args[0])
				if err != nil {
					return err
				}
				direction = d
			}

			start := time.Now()
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			rep, err := a.migrate(direction, steps)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			if !rep.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "no changes (version=%d dirty=%v) [%s]\n", rep.Version, rep.Dirty, elapsed)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s to version=%d dirty=%v [%s]\n", direction, rep.Version, rep.Dirty, elapsed)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of steps (0 = all)")
	return cmd
}
