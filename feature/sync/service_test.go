package sync

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"toolbank-sync/core/transfer"
	"toolbank-sync/core/transfer/mocks"
	"toolbank-sync/feature/baseline"
	"toolbank-sync/feature/history"
	"toolbank-sync/feature/matrixify"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// writeFeedFixtures drops a small but complete feed into dir: two live
// SKUs (one with an RRP, one falling back to list price) and one
// discontinued SKU.
func writeFeedFixtures(t *testing.T, dir string) {
	t.Helper()

	products := "StockCode,Product Name,ProductDescription,Brand_Name,RetailerBarcode,Weight,BrandPartNumber,ImageRef,DiscontinuedFlag,CurrentListPrice,TradeDiscount,ClassAName,ClassBName,ClassCName,PackQTY\n" +
		"ABC1,Claw Hammer,Forged steel head,Stanley,5035048012345,0.75,1-51-031,ABC1_main,0,11.50,40,Tools,Hand Tools,Hammers,6\n" +
		"XYZ9,Old Saw,,Irwin,5035048099999,0.4,IRW-99,,1,8.00,40,Tools,Hand Tools,Saws,1\n" +
		"DEF2,Cordless Drill,18V combi,DeWalt,5035048054321,1.6,DCD778,DEF2_main,0,120.00,35,Power Tools,Drills,Combi Drills,1\n"

	pricing := "stock_no,price,rrp,sell_dis_1,nett_price,rebate_flg,prom_no,prom_end_date\n" +
		"ABC1,6.90,9.99,40,5.75,N,,\n" +
		"DEF2,84.00,0,35,70.00,N,,\n"

	availability := "stock_no,cstock\n" +
		"ABC1,12\n" +
		"DEF2,5\n"

	files := map[string]string{
		"products.csv":     products,
		"pricing.csv":      pricing,
		"availability.csv": availability,
	}
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		assert.NoError(t, err)
	}
}

func testService(dir string, client transfer.Client) *Service {
	cfg := Config{
		WorkDir:        dir,
		OutputFile:     filepath.Join(dir, "toolbank_import.csv"),
		BaselinePath:   filepath.Join(dir, "known_skus.json"),
		ImageBaseURL:   "https://www.toolbank.com/productimages/",
		ImageExtension: ".jpg",
	}
	feeds := transfer.Config{
		PricingPath:      "pricing.csv",
		ProductsPath:     "products.csv",
		AvailabilityPath: "availability.csv",
	}
	return NewService(cfg, feeds, client, nil, nil, zap.NewNop())
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	return rows
}

func TestRun_OfflineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFeedFixtures(t, dir)
	svc := testService(dir, nil)

	report, err := svc.Run(context.Background(), Options{Offline: true})
	assert.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, svc.cfg.OutputFile, report.OutputPath)
	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.New)
	assert.Equal(t, 0, report.Summary.Existing)
	assert.Equal(t, 1, report.Summary.Discontinued)

	// Import file keeps feed order.
	skus, err := matrixify.ReadSKUs(svc.cfg.OutputFile)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ABC1", "XYZ9", "DEF2"}, skus)

	rows := readRows(t, svc.cfg.OutputFile)
	assert.Len(t, rows, 4)
	assert.Equal(t, matrixify.CommandMerge, rows[1][0])
	assert.Equal(t, "Tools, Hand Tools, Hammers, Toolbank, New-Import", rows[1][6])
	assert.Equal(t, "9.99", rows[1][13])
	assert.Equal(t, "12", rows[1][21])
	assert.Equal(t, matrixify.CommandDelete, rows[2][0])
	assert.Equal(t, matrixify.StatusArchived, rows[2][20])
	assert.Equal(t, "120.00", rows[3][13], "zero RRP falls back to list price")

	// Baseline keeps only the live SKUs.
	known, err := baseline.NewStore(svc.cfg.BaselinePath).Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"ABC1", "DEF2"}, known.SKUs())
}

func TestRun_SecondRunClassifiesExisting(t *testing.T) {
	dir := t.TempDir()
	writeFeedFixtures(t, dir)
	svc := testService(dir, nil)

	_, err := svc.Run(context.Background(), Options{Offline: true})
	assert.NoError(t, err)

	report, err := svc.Run(context.Background(), Options{Offline: true})
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Summary.New)
	assert.Equal(t, 2, report.Summary.Existing)
	assert.Equal(t, 1, report.Summary.Discontinued)

	rows := readRows(t, svc.cfg.OutputFile)
	assert.Equal(t, matrixify.CommandUpdate, rows[1][0])
	assert.Empty(t, rows[1][13], "existing rows must not touch the live price")
	assert.NotContains(t, rows[1][6], "New-Import")
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFeedFixtures(t, dir)
	svc := testService(dir, nil)

	report, err := svc.Run(context.Background(), Options{Offline: true, DryRun: true})
	assert.NoError(t, err)
	assert.Empty(t, report.OutputPath)
	assert.Equal(t, 3, report.Summary.Total)

	assert.NoFileExists(t, svc.cfg.OutputFile)
	assert.NoFileExists(t, svc.cfg.BaselinePath)
}

func TestRun_TransferFailureAborts(t *testing.T) {
	dir := t.TempDir()

	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, "pricing.csv", mock.Anything).Return(assert.AnError)

	svc := testService(dir, client)
	_, err := svc.Run(context.Background(), Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch pricing.csv")

	assert.NoFileExists(t, svc.cfg.OutputFile)
	assert.NoFileExists(t, svc.cfg.BaselinePath)
	client.AssertExpectations(t)
}

func TestRun_MissingTransferClient(t *testing.T) {
	svc := testService(t.TempDir(), nil)

	_, err := svc.Run(context.Background(), Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transfer client is not configured")
}

func TestRun_MissingFeedFileAborts(t *testing.T) {
	// Offline run against an empty work dir: parse fails, nothing is written.
	svc := testService(t.TempDir(), nil)

	_, err := svc.Run(context.Background(), Options{Offline: true})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse product table")
	assert.NoFileExists(t, svc.cfg.BaselinePath)
}

func setupLedger(t *testing.T) (*history.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return history.NewRepository(gormDB), mock
}

func TestRun_RecordsLedgerRow(t *testing.T) {
	dir := t.TempDir()
	writeFeedFixtures(t, dir)

	repo, mock := setupLedger(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), history.StatusSucceeded, 3, 2, 0, 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc := testService(dir, nil)
	svc.history = repo

	_, err := svc.Run(context.Background(), Options{Offline: true})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_RecordsFailedRun(t *testing.T) {
	repo, mock := setupLedger(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), history.StatusFailed, 0, 0, 0, 0, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Empty work dir: the parse step fails, and the failure lands in
	// the ledger.
	svc := testService(t.TempDir(), nil)
	svc.history = repo

	_, err := svc.Run(context.Background(), Options{Offline: true})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownload_FetchesEveryTable(t *testing.T) {
	dir := t.TempDir()

	client := new(mocks.Client)
	for _, name := range []string{"pricing.csv", "products.csv", "availability.csv"} {
		client.On("Fetch", mock.Anything, name, filepath.Join(dir, name)).Return(nil)
	}

	svc := testService(dir, client)
	assert.NoError(t, svc.Download(context.Background()))
	client.AssertExpectations(t)
}
