package sync

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"toolbank-sync/core/archive"
	"toolbank-sync/core/logger"
	"toolbank-sync/core/transfer"
	"toolbank-sync/feature/baseline"
	"toolbank-sync/feature/feed"
	"toolbank-sync/feature/history"
	"toolbank-sync/feature/matrixify"
	"toolbank-sync/feature/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options toggles per-invocation behavior of a run.
type Options struct {
	// Offline skips the transfer step and parses files already present
	// in the work directory.
	Offline bool
	// DryRun reconciles and reports without writing the import file or
	// the baseline.
	DryRun bool
}

// Report summarizes a completed run.
type Report struct {
	// RunID correlates log lines, archived artifacts and ledger rows.
	RunID string
	// Summary carries the classification counts.
	Summary reconcile.Summary
	// OutputPath is where the import file was written; empty on dry runs.
	OutputPath string
	// Started and Finished bound the run.
	Started  time.Time
	Finished time.Time
}

// Service orchestrates one full feed sync: fetch, parse, reconcile,
// write, persist baseline, then optional retention and history.
type Service struct {
	cfg      Config
	feeds    transfer.Config
	transfer transfer.Client
	archive  *archive.Uploader
	history  *history.Repository
	logger   *zap.Logger
}

// NewService creates a sync service. The transfer client may be nil for
// offline runs; archive and history may be nil when those optional
// steps are disabled.
func NewService(cfg Config, feeds transfer.Config, client transfer.Client, uploader *archive.Uploader, runs *history.Repository, l *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		feeds:    feeds,
		transfer: client,
		archive:  uploader,
		history:  runs,
		logger:   l,
	}
}

// Run executes the pipeline strictly in sequence. A transfer failure
// aborts before anything is parsed; the baseline is saved only after
// the import file has been written.
//
// When the ledger is enabled, failed runs are recorded too so the run
// history shows gaps as failures rather than silence. Dry runs are
// never recorded.
func (s *Service) Run(ctx context.Context, opts Options) (_ *Report, err error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
	}
	log := logger.WithRunID(s.logger, report.RunID)

	defer func() {
		if err == nil || opts.DryRun || s.history == nil {
			return
		}
		report.Finished = time.Now()
		row := s.ledgerRow(report)
		row.Status = history.StatusFailed
		if recErr := s.history.Record(ctx, row); recErr != nil {
			log.Warn("Failed to record run history", zap.Error(recErr))
		}
	}()

	store := baseline.NewStore(s.cfg.BaselinePath)
	known, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}
	log.Info("Loaded baseline", zap.Int("skus", known.Len()))

	if opts.Offline {
		log.Info("Offline run, parsing files already in work dir", zap.String("dir", s.cfg.WorkDir))
	} else {
		if err := s.Download(ctx); err != nil {
			return nil, err
		}
	}

	products, err := feed.ParseProducts(s.localPath(s.feeds.ProductsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse product table: %w", err)
	}
	pricing, err := feed.ParsePricing(s.localPath(s.feeds.PricingPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pricing table: %w", err)
	}
	stock, err := feed.ParseAvailability(s.localPath(s.feeds.AvailabilityPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse availability table: %w", err)
	}
	log.Info("Parsed feed tables",
		zap.Int("products", len(products)),
		zap.Int("pricing", len(pricing)),
		zap.Int("stock", len(stock)),
	)

	plan := reconcile.Build(reconcile.Input{
		Products: products,
		Pricing:  pricing,
		Stock:    stock,
		Baseline: known,
	}, reconcile.Options{
		ImageBaseURL:   s.cfg.ImageBaseURL,
		ImageExtension: s.cfg.ImageExtension,
	})
	report.Summary = plan.Summary

	log.Info("Reconciled feed against baseline",
		zap.Int("rows", plan.Summary.Total),
		zap.Int("new", plan.Summary.New),
		zap.Int("existing", plan.Summary.Existing),
		zap.Int("discontinued", plan.Summary.Discontinued),
		zap.Int("skipped", plan.Summary.Skipped),
	)

	if opts.DryRun {
		log.Info("Dry-run: import file and baseline untouched")
		report.Finished = time.Now()
		return report, nil
	}

	if err := matrixify.WriteFile(s.cfg.OutputFile, plan.Rows); err != nil {
		return nil, fmt.Errorf("failed to write import file: %w", err)
	}
	report.OutputPath = s.cfg.OutputFile

	// Baseline lands only after the import file did.
	if err := store.Save(plan.Baseline); err != nil {
		return nil, fmt.Errorf("failed to save baseline: %w", err)
	}
	log.Info("Wrote import file and baseline",
		zap.String("output", s.cfg.OutputFile),
		zap.Int("baseline_skus", plan.Baseline.Len()),
	)

	if s.archive != nil {
		if err := s.archive.Store(ctx, report.RunID, s.cfg.OutputFile, s.cfg.BaselinePath); err != nil {
			log.Warn("Failed to archive run artifacts", zap.Error(err))
		}
	}

	report.Finished = time.Now()

	if s.history != nil {
		if err := s.history.Record(ctx, s.ledgerRow(report)); err != nil {
			log.Warn("Failed to record run history", zap.Error(err))
		}
	}

	return report, nil
}

// Download fetches the three feed tables into the work directory. Any
// failure is fatal for a run: no partial feed is ever parsed.
func (s *Service) Download(ctx context.Context) error {
	if s.transfer == nil {
		return fmt.Errorf("transfer client is not configured")
	}

	remotes := []string{
		s.feeds.PricingPath,
		s.feeds.ProductsPath,
		s.feeds.AvailabilityPath,
	}
	for _, remote := range remotes {
		local := s.localPath(remote)
		s.logger.Info("Fetching feed file",
			zap.String("remote", remote),
			zap.String("local", local),
		)
		if err := s.transfer.Fetch(ctx, remote, local); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", remote, err)
		}
	}

	return nil
}

// localPath maps a remote feed path to its download location.
func (s *Service) localPath(remote string) string {
	return filepath.Join(s.cfg.WorkDir, filepath.Base(remote))
}

func (s *Service) ledgerRow(report *Report) *history.Run {
	return &history.Run{
		RunID:             report.RunID,
		StartedAt:         report.Started,
		FinishedAt:        report.Finished,
		Status:            history.StatusSucceeded,
		ProductCount:      report.Summary.Total,
		NewCount:          report.Summary.New,
		ExistingCount:     report.Summary.Existing,
		DiscontinuedCount: report.Summary.Discontinued,
		OutputPath:        report.OutputPath,
	}
}
