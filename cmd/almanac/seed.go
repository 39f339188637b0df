package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/almanac/internal/seed"
	"github.com/cory-johannsen/almanac/internal/storage/migrations"
)

func newSeedCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the initial villager roster",
		Long: `seed inserts every villager of a roster that is not already in the catalog.
Without --file it uses the configured roster, or the built-in one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if file == "" {
				file = a.cfg.Seed.File
			}
			roster, err := seed.Load(file)
			if err != nil {
				return fmt.Errorf("loading roster: %w", err)
			}

			if _, err := a.migrate(migrations.Up, 0); err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			rep, err := seed.Apply(cmd.Context(), st, roster, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d characters (%d already present)\n", rep.Inserted, rep.Existing)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML roster to seed from")
	return cmd
}
