package main

import (
	"github.com/spf13/cobra"

	"ems/internal/platform/db"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "Apply database migrations",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "roll back the latest migration")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return db.Migrate(cmd.Context(), pool, migrateRollback)
}
