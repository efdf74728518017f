package cmd

import (
	"context"
	"fmt"
	"os"

	"stockledger/internal/core/logger"
	"stockledger/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply catalog database migrations.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbURL := os.Getenv("DATABASE_URL")
		migrationDir, _ := cmd.Flags().GetString("dir")

		if err := migration.Migrate(dbURL, fmt.Sprintf("file://%s", migrationDir), logger.NewLogger()); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "stockledger",
		Short: "Stock ledger service",
	}
	migrateCmd.Flags().String("dir", "migrations", "Directory containing the migration files")
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
