package cmd

import (
	"fmt"

	"toolbank-sync/core/config"
	"toolbank-sync/core/logger"
	"toolbank-sync/core/transfer"
	"toolbank-sync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCmd downloads the feed files without reconciling them.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the feed files without reconciling",
	Long: `Fetches the pricing, product and availability tables into the work
directory and stops. Useful for inspecting a feed before a run, or for
preparing a later 'sync --offline'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		client, err := transfer.NewClient(ctx, cfg.Transfer)
		if err != nil {
			return fmt.Errorf("failed to connect to feed host: %w", err)
		}
		defer client.Close()

		svc := sync.NewService(cfg.Sync, cfg.Transfer, client, nil, nil, l)
		if err := svc.Download(ctx); err != nil {
			return err
		}

		l.Info("Feed files downloaded", zap.String("dir", cfg.Sync.WorkDir))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)
}
