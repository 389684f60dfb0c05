package cmd

import (
	"fmt"

	"toolbank-sync/core/config"
	"toolbank-sync/core/database"
	"toolbank-sync/feature/history"

	"github.com/spf13/cobra"
)

var runsLimit int

// runsCmd lists recent entries from the run history ledger.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent synchronization runs",
	Long: `Reads the run history ledger from the database. Only available when
run history is enabled (DATABASE_ENABLED=true).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if !cfg.Database.Enabled {
			return fmt.Errorf("run history is disabled (set DATABASE_ENABLED=true)")
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		rows, err := history.NewRepository(db).Recent(ctx, runsLimit)
		if err != nil {
			return fmt.Errorf("failed to read run history: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Println("=== Recent Runs ===")
		for _, run := range rows {
			fmt.Printf("%s  %s  %-9s  total=%d new=%d existing=%d discontinued=%d  %s\n",
				run.StartedAt.Format("2006-01-02 15:04:05"),
				run.RunID,
				run.Status,
				run.ProductCount,
				run.NewCount,
				run.ExistingCount,
				run.DiscontinuedCount,
				run.OutputPath,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "Maximum number of runs to list")

	RootCmd.AddCommand(runsCmd)
}
