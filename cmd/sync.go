package cmd

import (
	"fmt"

	"toolbank-sync/core/archive"
	"toolbank-sync/core/config"
	"toolbank-sync/core/database"
	"toolbank-sync/core/logger"
	"toolbank-sync/core/transfer"
	"toolbank-sync/feature/history"
	"toolbank-sync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	offlineSync bool
	dryRunSync  bool
)

// syncCmd runs the full synchronization pipeline.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a full feed synchronization",
	Long: `Fetch the supplier's pricing, product and availability tables, reconcile
them against the persisted SKU baseline and write the Matrixify import file.

New SKUs become MERGE rows (with price and a New-Import tag), known SKUs
become UPDATE rows, discontinued products become DELETE rows. The baseline
is rewritten only after the import file has been produced.

Examples:
  # Full run: download, reconcile, write
  toolbank-sync sync

  # Reuse feed files already present in the work dir
  toolbank-sync sync --offline

  # Report what a run would produce without writing anything
  toolbank-sync sync --offline --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&offlineSync, "offline", false, "Skip the download and use feed files already in the work dir")
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Reconcile and report without writing the import file or baseline")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	// Connect to the feed host unless we run offline
	var client transfer.Client
	if !offlineSync {
		client, err = transfer.NewClient(ctx, cfg.Transfer)
		if err != nil {
			return fmt.Errorf("failed to connect to feed host: %w", err)
		}
		defer client.Close()
	}

	// Artifact retention (optional)
	var uploader *archive.Uploader
	if cfg.Archive.Enabled {
		if store, err := archive.NewClient(cfg.Archive); err != nil {
			l.Warn("Optional archive client failed", zap.Error(err))
		} else {
			uploader = archive.NewUploader(store, cfg.Archive.Bucket, l)
		}
	}

	// Run history ledger (optional)
	var runs *history.Repository
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Optional database connection failed", zap.Error(err))
		} else {
			runs = history.NewRepository(db)
			if err := runs.Migrate(); err != nil {
				l.Warn("Failed to migrate run history schema", zap.Error(err))
				runs = nil
			}
		}
	}

	svc := sync.NewService(cfg.Sync, cfg.Transfer, client, uploader, runs, l)
	report, err := svc.Run(ctx, sync.Options{Offline: offlineSync, DryRun: dryRunSync})
	if err != nil {
		return err
	}

	printSyncReport(report, dryRunSync)
	return nil
}

// printSyncReport prints the final human-readable run summary.
func printSyncReport(report *sync.Report, dryRun bool) {
	fmt.Println("\n=== Sync Report ===")
	fmt.Printf("Run ID: %s\n", report.RunID)
	fmt.Printf("Total Rows: %d\n", report.Summary.Total)
	fmt.Printf("New: %d\n", report.Summary.New)
	fmt.Printf("Existing: %d\n", report.Summary.Existing)
	fmt.Printf("Discontinued: %d\n", report.Summary.Discontinued)
	if report.Summary.Skipped > 0 {
		fmt.Printf("Skipped (no SKU): %d\n", report.Summary.Skipped)
	}
	fmt.Printf("Execution Time: %s\n", report.Finished.Sub(report.Started).String())
	if dryRun {
		fmt.Println("Dry-run: no files were written")
	} else {
		fmt.Printf("Import File: %s\n", report.OutputPath)
	}
}
