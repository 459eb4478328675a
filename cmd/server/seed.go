package main

import (
	"github.com/spf13/cobra"

	"ems/internal/platform/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed default departments and the admin user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pool, err := db.Connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		return db.Seed(cmd.Context(), pool, cfg)
	},
}
