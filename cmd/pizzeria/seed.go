package main

import (
	"github.com/deppfellow/pizzeria/internal/database"
	"github.com/spf13/cobra"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample restaurants and pizzas into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loggerService, log, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			db, err := database.New(cfg, &log, loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			seeded, err := db.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if !seeded {
				log.Info().Msg("nothing to seed")
			}
			return nil
		},
	}
}
