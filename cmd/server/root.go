package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ems/internal/platform/config"
	"ems/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ems",
	Short: "Employee management service",
	Long:  `HR backend for employees, departments, attendance, salary records and reports.`,
	RunE:  runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and installs the process logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Environment)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
